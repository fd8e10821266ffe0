package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

func (a *App) Register(ctx context.Context, args []string) error {
	var data models.RegisterRequest
	var err error

	prompts := []struct {
		prompt string
		dst    *string
	}{
		{"Enter email", &data.Email},
		{"Enter user name", &data.Username},
		{"Enter first name (optional)", &data.FirstName},
		{"Enter last name (optional)", &data.LastName},
		{"Enter role: job_seeker or recruiter (optional)", &data.Role},
	}
	for _, p := range prompts {
		if *p.dst, err = GetSimpleText(a.reader, p.prompt, a.out); err != nil {
			return a.fail(ctx, err)
		}
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Repeat password", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(confirm)

	data.Password, data.Password2 = string(password), string(confirm)

	loggedIn, err := a.authService.Register(ctx, data)
	if err != nil {
		return a.fail(ctx, err)
	}

	if loggedIn {
		a.setLoggedIn(data.Email)
		a.println("Registration successful, you are logged in.")
	} else {
		a.println("Registration successful. Check your e-mail to verify the account, then log in.")
	}
	return nil
}

func (a *App) Login(ctx context.Context, args []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		return a.fail(ctx, err)
	}

	a.setLoggedIn(email)
	a.println("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context, args []string) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.setLoggedOut()
	a.println("Logged out")
	return nil
}

// WhoAmI describes the stored session without contacting the backend.
func (a *App) WhoAmI(ctx context.Context, args []string) error {
	info, err := a.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			a.println("Not logged in.")
			return nil
		}
		return a.fail(ctx, err)
	}

	a.printf("User: %s\n", info.UserID)
	switch {
	case info.ExpiresAt.IsZero():
	case info.Expired:
		a.printf("Access token expired at %s; it will be refreshed on the next request.\n", info.ExpiresAt.Format(time.RFC3339))
	default:
		a.printf("Access token valid until %s\n", info.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

func (a *App) VerifyEmail(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter verification token")
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.authService.VerifyEmail(ctx, token); err != nil {
		return a.fail(ctx, err)
	}
	a.println("E-mail verified. You can log in now.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return a.fail(ctx, err)
	}
	if err := a.authService.RequestPasswordReset(ctx, email); err != nil {
		return a.fail(ctx, err)
	}
	a.println("If the account exists, a reset link has been sent.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter reset token")
	if err != nil {
		return a.fail(ctx, err)
	}

	password, err := GetPassword("Enter new password", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Repeat new password", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	defer common.WipeByteArray(confirm)

	data := models.PasswordResetConfirm{Token: token, Password: string(password), Password2: string(confirm)}
	if err := a.authService.ResetPassword(ctx, data); err != nil {
		return a.fail(ctx, err)
	}
	a.println("Password changed. You can log in now.")
	return nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}
