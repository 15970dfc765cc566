package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimani/safarihub/internal/api"
	"github.com/jkimani/safarihub/internal/models"
)

type fakeAdminAPI struct {
	dashboard    models.AdminDashboard
	dashboardErr error

	users    []models.User
	usersErr error

	bookings    []models.Booking
	bookingsErr error

	destinations    []models.Destination
	destinationsErr error

	lastToken string
}

func (f *fakeAdminAPI) AdminDashboard(_ context.Context, token string) (models.AdminDashboard, error) {
	f.lastToken = token
	return f.dashboard, f.dashboardErr
}

func (f *fakeAdminAPI) ListUsers(_ context.Context, token string, _ *api.ListOptions) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeAdminAPI) ListAllBookings(_ context.Context, token string, _ *api.ListOptions) ([]models.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeAdminAPI) ListDestinations(_ context.Context, token string) ([]models.Destination, error) {
	return f.destinations, f.destinationsErr
}

func TestLoadAdminData_AllFetchesSucceed(t *testing.T) {
	fake := &fakeAdminAPI{
		dashboard:    models.AdminDashboard{TotalUsers: 3, TotalBookings: 5, TotalDestinations: 2},
		users:        []models.User{{ID: 1}, {ID: 2}, {ID: 3}},
		bookings:     []models.Booking{{ID: 10}, {ID: 11}},
		destinations: []models.Destination{{ID: 20, Name: "Mara"}},
	}

	data, errs := loadAdminData(context.Background(), fake, "tok")
	assert.Empty(t, errs)
	assert.Equal(t, 3, data.stats.TotalUsers)
	assert.Equal(t, 3, data.users.Len())
	assert.Equal(t, 2, data.bookings.Len())
	assert.Len(t, data.destinations, 1)
	assert.Equal(t, "tok", fake.lastToken)
}

func TestLoadAdminData_OneFetchFails(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeAdminAPI{
		dashboard:    models.AdminDashboard{TotalUsers: 3},
		users:        []models.User{{ID: 1}},
		bookingsErr:  boom,
		destinations: []models.Destination{{ID: 20}},
	}

	data, errs := loadAdminData(context.Background(), fake, "tok")

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)

	// Successful slots landed; the failed one degrades to empty.
	assert.Equal(t, 3, data.stats.TotalUsers)
	assert.Equal(t, 1, data.users.Len())
	assert.Zero(t, data.bookings.Len())
	assert.Len(t, data.destinations, 1)
}

func TestLoadAdminData_StatsFailureDegradesToZero(t *testing.T) {
	fake := &fakeAdminAPI{
		dashboardErr: errors.New("stats down"),
		users:        []models.User{{ID: 1}},
	}

	data, errs := loadAdminData(context.Background(), fake, "tok")
	require.Len(t, errs, 1)
	assert.Zero(t, data.stats.TotalUsers)
	assert.Zero(t, data.stats.TotalBookings)
	assert.Equal(t, 1, data.users.Len())
}
