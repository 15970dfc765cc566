// Package cli is the terminal front end: a small REPL with
// role-routed dashboards built on the api client and the session
// store. It owns presentation only; every error it shows was
// classified further down.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/jkimani/safarihub/internal/api"
	"github.com/jkimani/safarihub/internal/config"
	"github.com/jkimani/safarihub/internal/logging"
	"github.com/jkimani/safarihub/internal/session"
	"github.com/jkimani/safarihub/internal/session/credentials"
)

// App wires the client together for interactive use.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader

	// Last loaded dashboard state, nil until the dashboard command
	// runs. Mutation commands operate on these and apply their
	// optimistic updates here.
	adminState    *adminData
	guideState    *guideData
	travelerState *travelerData
}

// NewApp opens the credentials database, builds the API client and the
// session store, and restores any persisted session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.Open(ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(cfg.BaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	)

	store := session.New(apiClient, credentials.NewSQLiteRepository(db), log)
	if err := store.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		api:     apiClient,
		session: store,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if u := a.session.User(); u != nil {
		fmt.Printf("Welcome back, %s (%s)\n", u.FullName, u.Role)
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the credentials database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// status renders the prompt suffix, e.g. "(jane@example.com admin)".
func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}
