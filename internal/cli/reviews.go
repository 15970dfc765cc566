package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jkimani/safarihub/internal/models"
)

// Reviews lists the reviews of a destination. This works logged out
// too; the token, when present, is simply sent along.
func (a *App) Reviews(ctx context.Context) error {
	destID, err := GetInt(a.reader, "Destination id", os.Stdout)
	if err != nil {
		return err
	}

	reviews, err := a.api.ListDestinationReviews(ctx, a.session.Token(), destID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RATING\tTRAVELER\tCOMMENT")
	for _, r := range reviews {
		fmt.Fprintf(w, "%d/5\t%s\t%s\n", r.Rating, r.TravelerName, r.Comment)
	}
	w.Flush()
	return nil
}

// AddReview posts a review for a destination.
func (a *App) AddReview(ctx context.Context) error {
	destID, err := GetInt(a.reader, "Destination id", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := GetInt(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	comment, err := getSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	review, err := a.api.CreateReview(ctx, a.session.Token(), destID, models.ReviewInput{
		Rating:  int(rating),
		Comment: comment,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Review %d posted.\n", review.ID)
	return nil
}
