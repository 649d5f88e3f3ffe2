package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/appointo/internal/client/models"
	"github.com/dmitrijs2005/appointo/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// userMessage maps service errors to the text shown at the prompt.
func userMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, services.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, services.ErrSuperseded):
		return "Request cancelled by a newer login, register or logout"
	case errors.Is(err, ErrLoginRequired):
		return "Please log in first"
	case errors.Is(err, ErrAdminRequired):
		return "Admin access required"
	}
	return "Something went wrong, please try again"
}

func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Debug(ctx, op+" failed", "error", err)
	fmt.Fprintln(a.out, userMessage(err))
	return err
}

// Login prompts for an email and password and authenticates through the
// session service. The in-memory user is replaced only on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	fmt.Fprintln(a.out, "Signing in...")
	sess, err := a.session.Login(ctx, models.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.user = &sess.Account
	fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.Account.Name)
	return nil
}

// Register prompts for name, email, password and its confirmation, then
// creates an account and signs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	fmt.Fprintln(a.out, "Creating account...")
	sess, err := a.session.Register(ctx, models.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return a.fail(ctx, "register", err)
	}

	a.user = &sess.Account
	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.Account.Name)
	return nil
}

// Logout ends the session. It never waits on the simulated latency.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the signed-in account.
func (a *App) Whoami(ctx context.Context) error {
	if a.user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	u := a.user
	fmt.Fprintf(a.out, "ID:    %s\nName:  %s\nEmail: %s\nRole:  %s\n", u.ID, u.Name, u.Email, u.Role)
	if u.Avatar != nil {
		fmt.Fprintf(a.out, "Avatar: %s\n", *u.Avatar)
	}
	return nil
}

// Token prints the persisted session token.
func (a *App) Token(ctx context.Context) error {
	tok, err := a.session.Token(ctx)
	if err != nil {
		return a.fail(ctx, "token", err)
	}
	if tok == "" {
		fmt.Fprintln(a.out, "No token")
		return nil
	}
	fmt.Fprintln(a.out, tok)

	if a.claims == nil {
		return nil
	}
	c, err := a.claims.Parse(tok)
	if err != nil {
		a.logger.Debug(ctx, "token parse failed", "error", err)
		fmt.Fprintln(a.out, "Token is not valid for the configured secret")
		return nil
	}
	fmt.Fprintf(a.out, "Subject: %s\nEmail:   %s\nRole:    %s\nJTI:     %s\n", c.Subject, c.Email, c.Role, c.ID)
	if c.IssuedAt != nil {
		fmt.Fprintf(a.out, "Issued:  %s\n", c.IssuedAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// Reset wipes all locally stored client data and signs out.
func (a *App) Reset(ctx context.Context) error {
	keys, err := a.session.Reset(ctx)
	if err != nil {
		return a.fail(ctx, "reset", err)
	}
	a.user = nil
	fmt.Fprintf(a.out, "Local data cleared (%d entries)\n", len(keys))
	return nil
}

// Status reports whether a session token is persisted.
func (a *App) Status(ctx context.Context) error {
	ok, err := a.session.IsAuthenticated(ctx)
	if err != nil {
		return a.fail(ctx, "status", err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Anonymous")
		return nil
	}
	if a.user != nil {
		fmt.Fprintf(a.out, "Authenticated as %s\n", a.user.Email)
		return nil
	}
	fmt.Fprintln(a.out, "Authenticated")
	return nil
}
