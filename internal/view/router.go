// Package view holds the presentation-independent pieces the terminal
// front end is built on: role-based view selection, optimistic list
// state, and concurrent fetch fan-out.
package view

import "github.com/jkimani/safarihub/internal/models"

// Variant names a dashboard variant a caller should present.
type Variant string

const (
	AdminView    Variant = "admin"
	GuideView    Variant = "guide"
	TravelerView Variant = "traveler"
	LoginPrompt  Variant = "login"
)

// Route selects the variant for the current session: LoginPrompt when
// nobody is logged in, the role's own view otherwise. Unrecognized
// roles get the traveler view; that is a deliberate fallback, not an
// error, so new backend roles degrade to the least privileged screen.
func Route(user *models.User) Variant {
	if user == nil {
		return LoginPrompt
	}
	return RouteRole(user.Role)
}

// RouteRole maps a role to its dashboard variant.
func RouteRole(role models.Role) Variant {
	switch role {
	case models.RoleAdmin:
		return AdminView
	case models.RoleGuide:
		return GuideView
	case models.RoleTraveler:
		return TravelerView
	default:
		return TravelerView
	}
}
