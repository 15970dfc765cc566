package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jkimani/safarihub/internal/models"
)

// GuideDashboard fetches the guide overview stats.
func (c *Client) GuideDashboard(ctx context.Context, token string) (models.GuideDashboard, error) {
	var out models.GuideDashboard
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/guide/dashboard",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch guide dashboard",
	}, &out)
	return out, err
}

// GuideProfile fetches the guide's own profile.
func (c *Client) GuideProfile(ctx context.Context, token string) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/guide/profile",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch guide profile",
	}, &out)
	return out, err
}

// UpdateGuideProfile patches the guide's profile.
func (c *Client) UpdateGuideProfile(ctx context.Context, token string, p models.Profile) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/guide/profile",
		token:    token,
		needAuth: true,
		body:     p,
		fallback: "failed to update guide profile",
	}, &out)
	return out, err
}

// ListGuideBookings fetches the bookings assigned to the guide.
func (c *Client) ListGuideBookings(ctx context.Context, token string, opts *ListOptions) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/guide/bookings",
		token:    token,
		needAuth: true,
		params:   opts,
		fallback: "failed to fetch guide bookings",
	}, &out)
	return out, err
}

// UpdateBookingStatus transitions a booking (confirm, cancel) and
// returns the updated record.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, id int64, status string) (models.Booking, error) {
	var out models.Booking
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/guide/bookings/%d", id),
		token:    token,
		needAuth: true,
		body:     models.BookingStatusUpdate{Status: status},
		fallback: "failed to update booking status",
	}, &out)
	return out, err
}
