package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jkimani/safarihub/internal/api"
	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/view"
)

// adminAPI is the slice of the api client the admin dashboard needs;
// an interface so load tests can substitute fakes per fetch.
type adminAPI interface {
	AdminDashboard(ctx context.Context, token string) (models.AdminDashboard, error)
	ListUsers(ctx context.Context, token string, opts *api.ListOptions) ([]models.User, error)
	ListAllBookings(ctx context.Context, token string, opts *api.ListOptions) ([]models.Booking, error)
	ListDestinations(ctx context.Context, token string) ([]models.Destination, error)
}

// adminData is the admin dashboard's state: an overview block and
// three collections, each loaded by an independent fetch.
type adminData struct {
	stats        models.AdminDashboard
	users        *view.List[models.User]
	bookings     *view.List[models.Booking]
	destinations []models.Destination
}

// loadAdminData fans out the four admin fetches concurrently. Each
// fetch fails independently: a failed slot keeps its zero value (empty
// stats, empty list) and contributes one error, while the others still
// land. The dashboard renders with whatever arrived.
func loadAdminData(ctx context.Context, c adminAPI, token string) (*adminData, []error) {
	data := &adminData{
		users:    view.NewList(func(u models.User) int64 { return u.ID }),
		bookings: view.NewList(func(b models.Booking) int64 { return b.ID }),
	}

	var users []models.User
	var bookings []models.Booking

	errs := view.FetchAll(ctx, []view.Task{
		{Name: "dashboard stats", Run: func(ctx context.Context) error {
			stats, err := c.AdminDashboard(ctx, token)
			if err != nil {
				return err
			}
			data.stats = stats
			return nil
		}},
		{Name: "users", Run: func(ctx context.Context) error {
			var err error
			users, err = c.ListUsers(ctx, token, nil)
			return err
		}},
		{Name: "bookings", Run: func(ctx context.Context) error {
			var err error
			bookings, err = c.ListAllBookings(ctx, token, nil)
			return err
		}},
		{Name: "destinations", Run: func(ctx context.Context) error {
			dests, err := c.ListDestinations(ctx, token)
			if err != nil {
				return err
			}
			data.destinations = dests
			return nil
		}},
	})

	data.users.Reset(users)
	data.bookings.Reset(bookings)
	return data, errs
}

func (a *App) adminDashboard(ctx context.Context) error {
	data, errs := loadAdminData(ctx, a.api, a.session.Token())
	a.adminState = data

	for _, err := range errs {
		fmt.Println("Warning:", err)
	}
	a.renderAdmin()
	return nil
}

func (a *App) renderAdmin() {
	data := a.adminState

	fmt.Println("== Admin Dashboard ==")
	fmt.Printf("Users: %d  Bookings: %d  Destinations: %d\n",
		data.stats.TotalUsers, data.stats.TotalBookings, data.stats.TotalDestinations)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tNAME\tEMAIL\tROLE")
	for _, u := range data.users.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.FullName, u.Email, u.Role)
	}
	fmt.Fprintln(w, "\nBOOKING ID\tDESTINATION\tTRAVELER\tDATE\tSTATUS\tCOST")
	for _, b := range data.bookings.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\n",
			b.ID, b.DestinationName, b.TravelerName, b.BookingDate, b.Status, b.TotalCost)
	}
	fmt.Fprintln(w, "\nDESTINATION\tLOCATION\tPRICE")
	for _, d := range data.destinations {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", d.Name, d.Location, d.Price)
	}
	w.Flush()
}

// RemoveUser deletes a user and removes it from the rendered list
// without a refetch; the next dashboard load reconciles.
func (a *App) RemoveUser(ctx context.Context) error {
	if a.adminState == nil {
		return fmt.Errorf("load the dashboard first")
	}
	id, err := GetInt(a.reader, "User id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.api.DeleteUser(ctx, a.session.Token(), id); err != nil {
		return err
	}
	a.adminState.users.Remove(id)
	fmt.Printf("User %d deleted (%d users remain)\n", id, a.adminState.users.Len())
	return nil
}

// RemoveBooking deletes a booking with the same optimistic local
// update as RemoveUser.
func (a *App) RemoveBooking(ctx context.Context) error {
	if a.adminState == nil {
		return fmt.Errorf("load the dashboard first")
	}
	id, err := GetInt(a.reader, "Booking id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.api.DeleteBooking(ctx, a.session.Token(), id); err != nil {
		return err
	}
	a.adminState.bookings.Remove(id)
	fmt.Printf("Booking %d deleted (%d bookings remain)\n", id, a.adminState.bookings.Len())
	return nil
}
