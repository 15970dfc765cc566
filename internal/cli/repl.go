package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App
// satisfies it; tests can substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	RemoveUser(ctx context.Context) error
	RemoveBooking(ctx context.Context) error
	SetBookingStatus(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadPicture(ctx context.Context) error
	Reviews(ctx context.Context) error
	AddReview(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them. Handler
// errors are printed, never fatal: every failure here is recoverable
// by retrying the command. The loop ends on EOF, "exit"/"quit", or
// context cancellation.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Printf("safarihub %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, rmuser, rmbooking, setstatus, profile, edit, upload, reviews, addreview, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, reviews, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "register":
			err = a.Register(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "dashboard", "d":
			err = a.Dashboard(ctx)
		case "rmuser":
			err = a.RemoveUser(ctx)
		case "rmbooking":
			err = a.RemoveBooking(ctx)
		case "setstatus":
			err = a.SetBookingStatus(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "edit":
			err = a.EditProfile(ctx)
		case "upload":
			err = a.UploadPicture(ctx)
		case "reviews":
			err = a.Reviews(ctx)
		case "addreview":
			err = a.AddReview(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command %q (type 'help')", cmd))
		}

		if err != nil {
			printlnFn("Error: " + err.Error())
		}
	}
}
