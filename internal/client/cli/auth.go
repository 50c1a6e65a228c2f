package cli

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// SignUp creates an account and signs the user in.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	var s models.Session
	err = a.do(ctx, func(ctx context.Context) error {
		s, err = a.sessions.SignUp(ctx, email, string(password), phone)
		return err
	})
	if err != nil {
		return a.fail(ctx, "Sign up", err)
	}

	a.session = s
	a.notifier.Success("Sign up", "welcome to Hoopa Connect")
	a.land(ctx)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var s models.Session
	err = a.do(ctx, func(ctx context.Context) error {
		s, err = a.sessions.SignIn(ctx, email, string(password))
		return err
	})
	if err != nil {
		return a.fail(ctx, "Login", err)
	}

	a.session = s
	a.notifier.Success("Login", "signed in as "+email)
	a.land(ctx)
	return nil
}

// Logout forgets the session locally even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.sessions.SignOut(ctx)
	a.session = models.Anonymous()
	a.role = models.RoleUser
	a.screen = models.ScreenWelcome
	if err != nil {
		a.logger.Warn(ctx, "sign out was not confirmed by the server", "error", err)
	}
	a.notifier.Success("Logout", "signed out")
	return nil
}

// RequestReset sends a password reset email.
func (a *App) RequestReset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	err = a.do(ctx, func(ctx context.Context) error {
		return a.sessions.RequestPasswordReset(ctx, email)
	})
	if err != nil {
		return a.fail(ctx, "Password reset", err)
	}
	a.notifier.Success("Password reset", "if the address is registered, a reset code is on its way")
	return nil
}

// ResetPassword completes a reset with the emailed code.
func (a *App) ResetPassword(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter reset code", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if code == "" {
		return a.fail(ctx, "Password reset", &common.ValidationError{Field: "code", Reason: "required"})
	}
	if len(password) == 0 {
		return a.fail(ctx, "Password reset", &common.ValidationError{Field: "password", Reason: "required"})
	}

	err = a.do(ctx, func(ctx context.Context) error {
		return a.portal.ResetPassword(ctx, code, string(password))
	})
	if err != nil {
		return a.fail(ctx, "Password reset", common.Remote("ResetPassword", err))
	}
	a.notifier.Success("Password reset", "password changed, please log in")
	return nil
}
