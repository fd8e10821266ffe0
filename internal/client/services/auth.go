// Package services contains application services for the job-board client.
// Each service is a thin typed layer over client.Client; the client owns
// authentication and token refresh.
package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
)

const (
	verifyEmailPath  = "/auth/verify-email/"
	resetRequestPath = "/auth/request-password-reset/"
	resetConfirmPath = "/auth/reset-password-confirm/"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Login / Register: authenticate and persist the token pair.
//   - Logout: forget the stored tokens.
//   - VerifyEmail, RequestPasswordReset, ResetPassword: public account flows.
//   - Session: describe the stored access token without contacting the server.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, data models.RegisterRequest) (loggedIn bool, err error)
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, data models.PasswordResetConfirm) error
	Session(ctx context.Context) (*session.Info, error)
}

type authService struct {
	client client.Client
	store  session.Store
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client.
// store is only read, to describe the current session.
func NewAuthService(c client.Client, store session.Store) AuthService {
	return &authService{client: c, store: store, now: time.Now}
}

func (a *authService) Login(ctx context.Context, email, password string) error {
	_, err := a.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	return err
}

// Register reports whether the backend logged the new user in.
func (a *authService) Register(ctx context.Context, data models.RegisterRequest) (bool, error) {
	pair, err := a.client.Register(ctx, data)
	if err != nil {
		return false, err
	}
	return pair.Access != "", nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}

func (a *authService) VerifyEmail(ctx context.Context, token string) error {
	return a.public(ctx, verifyEmailPath, map[string]string{"token": token})
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.public(ctx, resetRequestPath, map[string]string{"email": email})
}

func (a *authService) ResetPassword(ctx context.Context, data models.PasswordResetConfirm) error {
	return a.public(ctx, resetConfirmPath, data)
}

// Session returns session.ErrNoSession when no access token is stored.
func (a *authService) Session(ctx context.Context) (*session.Info, error) {
	creds, err := a.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if creds.AccessToken == "" {
		return nil, session.ErrNoSession
	}
	return session.Inspect(creds.AccessToken, a.now())
}

// public posts body to an unauthenticated account endpoint. A 400 is
// reported as *client.ValidationError.
func (a *authService) public(ctx context.Context, path string, body any) error {
	req, err := client.NewJSONRequest(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	req.Public = true

	if _, err := a.client.Do(ctx, req); err != nil {
		return client.AsValidation(err)
	}
	return nil
}
