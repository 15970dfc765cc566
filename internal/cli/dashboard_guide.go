package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/view"
)

type guideData struct {
	stats    models.GuideDashboard
	bookings []models.Booking
}

func (a *App) guideDashboard(ctx context.Context) error {
	token := a.session.Token()
	data := &guideData{}

	errs := view.FetchAll(ctx, []view.Task{
		{Name: "dashboard stats", Run: func(ctx context.Context) error {
			stats, err := a.api.GuideDashboard(ctx, token)
			if err != nil {
				return err
			}
			data.stats = stats
			return nil
		}},
		{Name: "bookings", Run: func(ctx context.Context) error {
			bookings, err := a.api.ListGuideBookings(ctx, token, nil)
			if err != nil {
				return err
			}
			data.bookings = bookings
			return nil
		}},
	})
	a.guideState = data

	for _, err := range errs {
		fmt.Println("Warning:", err)
	}

	fmt.Println("== Guide Dashboard ==")
	fmt.Printf("Bookings: %d  Active tours: %d  Rating: %.1f\n",
		data.stats.TotalBookings, data.stats.ActiveTours, data.stats.AverageRating)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BOOKING ID\tDESTINATION\tTRAVELER\tDATE\tSTATUS")
	for _, b := range data.bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			b.ID, b.DestinationName, b.TravelerName, b.BookingDate, b.Status)
	}
	w.Flush()
	return nil
}

// SetBookingStatus confirms or cancels a booking. The updated record
// from the backend replaces the local row immediately; the next
// dashboard load is still authoritative.
func (a *App) SetBookingStatus(ctx context.Context) error {
	if a.guideState == nil {
		return fmt.Errorf("load the dashboard first")
	}
	id, err := GetInt(a.reader, "Booking id", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "New status (confirmed/cancelled)", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateBookingStatus(ctx, a.session.Token(), id, status)
	if err != nil {
		return err
	}
	for i, b := range a.guideState.bookings {
		if b.ID == id {
			a.guideState.bookings[i] = updated
			break
		}
	}
	fmt.Printf("Booking %d is now %s\n", updated.ID, updated.Status)
	return nil
}
