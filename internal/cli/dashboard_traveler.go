package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/view"
)

type travelerData struct {
	profile  models.Profile
	bookings []models.Booking
}

func (a *App) travelerDashboard(ctx context.Context) error {
	token := a.session.Token()
	data := &travelerData{}

	errs := view.FetchAll(ctx, []view.Task{
		{Name: "profile", Run: func(ctx context.Context) error {
			p, err := a.api.TravelerProfile(ctx, token)
			if err != nil {
				return err
			}
			data.profile = p
			return nil
		}},
		{Name: "bookings", Run: func(ctx context.Context) error {
			bookings, err := a.api.ListTravelerBookings(ctx, token, nil)
			if err != nil {
				return err
			}
			data.bookings = bookings
			return nil
		}},
	})
	a.travelerState = data

	for _, err := range errs {
		fmt.Println("Warning:", err)
	}

	fmt.Println("== Traveler Dashboard ==")
	fmt.Printf("%s <%s>\n", data.profile.FullName, data.profile.Email)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BOOKING ID\tDESTINATION\tDATE\tSTATUS\tCOST")
	for _, b := range data.bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n",
			b.ID, b.DestinationName, b.BookingDate, b.Status, b.TotalCost)
	}
	w.Flush()
	return nil
}
