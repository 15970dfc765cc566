package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jkimani/safarihub/internal/models"
	"github.com/jkimani/safarihub/internal/session"
)

// input helpers are indirected so command tests can script them.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and authenticates through the session
// store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Role)
	return nil
}

// Register prompts for account details, registers, and relies on the
// session store's automatic follow-up login. When registration worked
// but the login step did not, the user is told the account exists so
// they do not register twice.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, models.Registration{
		FullName: name,
		Email:    email,
		Password: password,
		Role:     models.RoleTraveler,
	})
	if err != nil {
		if errors.Is(err, session.ErrRegisteredLoginFailed) {
			fmt.Println("Account created, but logging in failed. Try 'login'.")
		}
		return err
	}
	fmt.Printf("Welcome, %s!\n", user.FullName)
	return nil
}

// Logout clears the session; it cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", u.FullName, u.Email, u.Role)
	return nil
}
