// Package credentials persists the durable half of a session: the
// bearer token and the serialized user record, stored under fixed keys
// in a local SQLite database. The two entries are always written and
// cleared together; a token without a user (or the reverse) is an
// invalid state this package never produces.
package credentials

import "context"

// Keys under which the pair is stored.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Pair is a persisted session credential: the opaque bearer token and
// the user record as JSON text, exactly as the backend sent it.
type Pair struct {
	Token string
	User  []byte
}

// Repository stores at most one credential pair.
type Repository interface {
	// Load returns the stored pair, or nil when either entry is
	// missing.
	Load(ctx context.Context) (*Pair, error)

	// Save writes both entries atomically, replacing any previous pair.
	Save(ctx context.Context, p *Pair) error

	// Clear removes both entries atomically. Clearing an empty store
	// is not an error.
	Clear(ctx context.Context) error
}
