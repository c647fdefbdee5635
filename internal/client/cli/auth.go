package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/folio/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections swapped in
// tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for credentials and starts a session. The password buffer is
// cleared before returning.
func (a *App) Login(ctx context.Context) error {
	a.nav.Navigate(common.LoginPath)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if !a.auth.Login(ctx, email, string(password)) {
		return errors.New(a.auth.Error())
	}

	a.nav.Navigate(HomePage)
	printlnFn("Logged in as", a.auth.User().Email)
	return nil
}

// Register creates an account and starts a session with it. The name is
// optional.
func (a *App) Register(ctx context.Context) error {
	a.nav.Navigate(common.RegisterPath)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if !a.auth.Register(ctx, email, string(password), name) {
		return errors.New(a.auth.Error())
	}

	a.nav.Navigate(HomePage)
	printlnFn("Registered and logged in as", a.auth.User().Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.nav.Navigate(common.LoginPath)
	printlnFn("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	if !a.auth.IsAuthenticated(ctx) {
		printlnFn("Not logged in.")
		return nil
	}
	u := a.auth.User()
	if u.Name != "" {
		printlnFn(u.Name, "<"+u.Email+">")
	} else {
		printlnFn(u.Email)
	}
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	a.nav.Navigate(common.ForgotPasswordPath)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	msg, ok := a.auth.ForgotPassword(ctx, email)
	if !ok {
		return errors.New(msg)
	}
	printlnFn(msg)
	return nil
}

// ResetPassword asks for the token from the reset email and a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	a.nav.Navigate(common.ResetPasswordPath)

	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	msg, ok := a.auth.ResetPassword(ctx, token, string(password))
	if !ok {
		return errors.New(msg)
	}
	a.nav.Navigate(common.LoginPath)
	printlnFn(msg)
	return nil
}
