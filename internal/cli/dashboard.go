package cli

import (
	"context"
	"fmt"

	"github.com/jkimani/safarihub/internal/view"
)

// Dashboard routes to the dashboard variant for the current session's
// role and renders it.
func (a *App) Dashboard(ctx context.Context) error {
	switch view.Route(a.session.User()) {
	case view.AdminView:
		return a.adminDashboard(ctx)
	case view.GuideView:
		return a.guideDashboard(ctx)
	case view.TravelerView:
		return a.travelerDashboard(ctx)
	default:
		fmt.Println("Please log in to view your dashboard.")
		return nil
	}
}
