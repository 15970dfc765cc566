// Package models defines the typed shapes of records exchanged with the
// SafariHub backend. The backend is authoritative for all of them; the
// client never validates these beyond JSON decoding, and fields absent
// from a response keep their zero values.
package models

// Role classifies an account and decides which part of the API surface
// (and which dashboard) the account may reach.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleGuide    Role = "guide"
	RoleTraveler Role = "traveler"
)

// User is the account record returned by login, registration and the
// profile endpoints. Role is immutable from the client's point of view.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
}

// Credentials is the payload submitted to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload submitted to the register endpoint.
// Registration alone does not yield a token; a login with the same
// email/password follows it.
type Registration struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
}

// AuthResult is the successful login response: an opaque bearer token
// plus the authenticated user's record.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
