package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jkimani/safarihub/internal/models"
)

// ListOptions are optional query parameters accepted by the collection
// endpoints. Zero fields are omitted from the query string.
type ListOptions struct {
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	Status  string `url:"status,omitempty"`
}

// AdminDashboard fetches the admin overview stats.
func (c *Client) AdminDashboard(ctx context.Context, token string) (models.AdminDashboard, error) {
	var out models.AdminDashboard
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/admin/dashboard",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch admin dashboard",
	}, &out)
	return out, err
}

// ListUsers fetches all platform users.
func (c *Client) ListUsers(ctx context.Context, token string, opts *ListOptions) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/admin/users",
		token:    token,
		needAuth: true,
		params:   opts,
		fallback: "failed to fetch users",
	}, &out)
	return out, err
}

// UpdateUser patches a user record by id and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, payload models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     fmt.Sprintf("/admin/users/%d", id),
		token:    token,
		needAuth: true,
		body:     payload,
		fallback: "failed to update user",
	}, &out)
	return out, err
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) (models.DeleteResult, error) {
	var out models.DeleteResult
	err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/admin/users/%d", id),
		token:    token,
		needAuth: true,
		fallback: "failed to delete user",
	}, &out)
	return out, err
}

// ListAllBookings fetches every booking on the platform.
func (c *Client) ListAllBookings(ctx context.Context, token string, opts *ListOptions) ([]models.Booking, error) {
	var out []models.Booking
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/admin/bookings",
		token:    token,
		needAuth: true,
		params:   opts,
		fallback: "failed to fetch bookings",
	}, &out)
	return out, err
}

// DeleteBooking removes a booking.
func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) (models.DeleteResult, error) {
	var out models.DeleteResult
	err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/admin/bookings/%d", id),
		token:    token,
		needAuth: true,
		fallback: "failed to delete booking",
	}, &out)
	return out, err
}

// ListDestinations fetches all destinations.
func (c *Client) ListDestinations(ctx context.Context, token string) ([]models.Destination, error) {
	var out []models.Destination
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/admin/destinations",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch destinations",
	}, &out)
	return out, err
}

// AdminProfile fetches the admin's own profile.
func (c *Client) AdminProfile(ctx context.Context, token string) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/admin/profile",
		token:    token,
		needAuth: true,
		fallback: "failed to fetch admin profile",
	}, &out)
	return out, err
}

// UpdateAdminProfile replaces the admin's profile. The backend accepts
// this as a POST rather than a PATCH.
func (c *Client) UpdateAdminProfile(ctx context.Context, token string, p models.Profile) (models.Profile, error) {
	var out models.Profile
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/admin/profile",
		token:    token,
		needAuth: true,
		body:     p,
		fallback: "failed to update admin profile",
	}, &out)
	return out, err
}
