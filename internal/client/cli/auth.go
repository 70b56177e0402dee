package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Register prompts for email, full name and password, creates the account
// and logs in with it. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Register(ctx, email, password, fullName)
	if err != nil {
		if u != nil {
			fmt.Fprintln(a.out, warningStyle.Render(fmt.Sprintf("Account %s created; login failed. Try 'login'.", u.Email)))
		}
		return err
	}

	a.setUserName(u.Email)
	a.success(fmt.Sprintf("Welcome, %s!", u.DisplayName()))
	return nil
}

// Login prompts for credentials and stores the returned credential.
// A failed login never writes a credential.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		return err
	}

	name, _ := a.authService.UserName(ctx)
	a.setUserName(name)
	a.success("Login successful")
	return nil
}

// Logout erases the credential. Logging out twice is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setUserName("")
	a.success("Logged out")
	return nil
}

// WhoAmI shows the account behind the credential and when it expires.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", titleStyle.Render(u.DisplayName()), u.Email)
	if u.IsAdmin {
		fmt.Fprintln(a.out, "role:    admin")
	}
	if since, err := a.authService.LoggedInSince(ctx); err == nil && !since.IsZero() {
		fmt.Fprintf(a.out, "since:   %s\n", since.Local().Format(time.DateTime))
	}
	if claims, err := a.authService.Claims(); err == nil && !claims.ExpiresAt.IsZero() {
		left := time.Until(claims.ExpiresAt).Round(time.Minute)
		fmt.Fprintf(a.out, "expires: %s (in %s)\n", claims.ExpiresAt.Local().Format(time.DateTime), left)
	}
	return nil
}
