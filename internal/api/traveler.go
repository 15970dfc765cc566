package api

import (
	"context"
	"net/http"

	"github.com/jkimani/safarihub/internal/models"
)

// TravelerProfile fetches the traveler's own profile.
func (c *Client) TravelerProfile(ctx context.Context, token string) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/traveler/profile",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch profile",
	}, &out)
	return out, err
}

// UpdateTravelerProfile replaces the traveler's profile. The backend
// accepts this as a POST rather than a PATCH.
func (c *Client) UpdateTravelerProfile(ctx context.Context, token string, p models.Profile) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/traveler/profile",
		token:    token,
		needAuth: true,
		body:     p,
		fallback: "failed to update profile",
	}, &out)
	return out, err
}

// ListTravelerBookings fetches the traveler's own bookings.
func (c *Client) ListTravelerBookings(ctx context.Context, token string, opts *ListOptions) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/traveler/bookings",
		token:    token,
		needAuth: true,
		params:   opts,
		fallback: "failed to fetch bookings",
	}, &out)
	return out, err
}
