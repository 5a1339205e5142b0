package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"sportsdeck/internal/shared"
)

// demoAccounts are remote accounts known to work against the demo identity
// provider, printed by `auth login --demo`.
var demoAccounts = [][2]string{
	{"emilys", "emilyspass"},
	{"michaelw", "michaelwpass"},
	{"sophiab", "sophiabpass"},
}

// AuthLogin authenticates with the local directory first, falling back to the remote API.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("demo") {
		r.writePlainHeader("Demo accounts")
		for _, account := range demoAccounts {
			r.writePlain("%-12s %s\n", account[0], account[1])
		}
		return nil
	}

	username := cmd.StringArg("username")
	password := cmd.StringArg("password")
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", shared.ErrMissingArgument)
	}

	session, err := r.app.Sessions.Login(ctx, username, password)
	if err != nil {
		r.writePlain("✗ Login failed: %v\n", err)
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(session.User, true)
	}

	return r.writePlain("✓ Logged in as %s\n", session.User.DisplayName())
}

// AuthRegister creates a local account. Registration does not log the user in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	email := cmd.StringArg("email")
	password := cmd.StringArg("password")
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email, and password are required", shared.ErrMissingArgument)
	}

	account, err := r.app.Sessions.Register(ctx, username, email, password)
	if err != nil {
		r.writePlain("✗ Registration failed: %v\n", err)
		return err
	}

	r.writePlain("✓ Account created for %s\n", account.Username)
	return r.writePlain("Log in with: sportsdeck auth login %s <password>\n", account.Username)
}

// AuthLogout clears the session and the saved favourites.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.app.Sessions.Logout(ctx)
	return r.writePlain("✓ Logged out\n")
}

// AuthWhoami shows the active session, if any.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	session, ok := r.app.Sessions.Session()
	if !ok {
		r.writePlain("Not logged in (%s)\n", r.app.Sessions.Status())
		if reason := r.app.Sessions.FailureReason(); reason != "" {
			r.writePlain("Last failure: %s\n", reason)
		}
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(session.User, true)
	}

	r.writePlain("Logged in as %s\n", session.User.DisplayName())
	if session.User.Email != "" {
		r.writePlain("Email: %s\n", session.User.Email)
	}
	return nil
}
