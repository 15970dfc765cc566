package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jkimani/safarihub/internal/models"
)

// ListDestinationReviews fetches the reviews of a destination. This is
// the one public read in the API surface: no token is required, and one
// supplied anyway is still sent.
func (c *Client) ListDestinationReviews(ctx context.Context, token string, destinationID int64) ([]models.Review, error) {
	var out []models.Review
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/destinations/%d/reviews", destinationID),
		token:    token,
		fallback: "failed to fetch reviews",
	}, &out)
	return out, err
}

// CreateReview posts a review for a destination.
func (c *Client) CreateReview(ctx context.Context, token string, destinationID int64, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/destinations/%d/reviews", destinationID),
		token:    token,
		needAuth: true,
		body:     in,
		fallback: "failed to create review",
	}, &out)
	return out, err
}

// UpdateReview patches an existing review.
func (c *Client) UpdateReview(ctx context.Context, token string, reviewID int64, in models.ReviewInput) (models.Review, error) {
	var out models.Review
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/reviews/%d", reviewID),
		token:    token,
		needAuth: true,
		body:     in,
		fallback: "failed to update review",
	}, &out)
	return out, err
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, token string, reviewID int64) (models.DeleteResult, error) {
	var out models.DeleteResult
	err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/reviews/%d", reviewID),
		token:    token,
		needAuth: true,
		fallback: "failed to delete review",
	}, &out)
	return out, err
}
