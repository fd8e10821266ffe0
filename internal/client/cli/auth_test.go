package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	stubPasswords(t, "pw")
	a := newTestApp("u@example.com")

	require.NoError(t, a.Login(context.Background(), nil))

	assert.Equal(t, "u@example.com", a.auth.loginEmail)
	assert.Equal(t, "pw", a.auth.loginPassword)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(u@example.com)", a.getStatus())
	assert.Contains(t, a.out.String(), "Login successful")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubPasswords(t, "bad")
	a := newTestApp("u@example.com")
	a.auth.loginErr = client.ErrInvalidCredentials

	err := a.Login(context.Background(), nil)

	require.ErrorIs(t, err, client.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, a.out.String(), "Invalid email or password.")
}

func TestRegister_PromptsAndReportsValidation(t *testing.T) {
	stubPasswords(t, "pw1", "pw2")
	a := newTestApp("u@example.com", "user", "Ann", "", "job_seeker")
	a.auth.registerErr = &client.ValidationError{Fields: map[string][]string{
		"password": {"Password fields didn't match."},
		"email":    {"user with this email already exists."},
	}}

	err := a.Register(context.Background(), nil)

	require.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, models.RegisterRequest{
		Email: "u@example.com", Username: "user", FirstName: "Ann", Role: "job_seeker",
		Password: "pw1", Password2: "pw2",
	}, a.auth.registered)

	out := a.out.String()
	assert.Contains(t, out, "  email: user with this email already exists.")
	assert.Contains(t, out, "  password: Password fields didn't match.")
	assert.Less(t, indexOf(out, "  email:"), indexOf(out, "  password:"))
}

func TestRegister_LoggedInWhenTokensReturned(t *testing.T) {
	stubPasswords(t, "pw")
	a := newTestApp("u@example.com", "user", "", "", "")
	a.auth.registerIn = true

	require.NoError(t, a.Register(context.Background(), nil))
	assert.True(t, a.isLoggedIn())
}

func TestReaderFromLines_KeepsTrailingBlankAnswers(t *testing.T) {
	in := readerFromLines("u@example.com", "", "")

	for _, want := range []string{"u@example.com", "", ""} {
		got, err := GetSimpleText(in, "Answer", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRegister_NeedsVerification(t *testing.T) {
	stubPasswords(t, "pw")
	a := newTestApp("u@example.com", "user", "", "", "")

	require.NoError(t, a.Register(context.Background(), nil))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, a.out.String(), "verify")
}

func TestLogout(t *testing.T) {
	a := newTestApp()
	a.setLoggedIn("u@example.com")

	require.NoError(t, a.Logout(context.Background(), nil))
	assert.True(t, a.auth.loggedOut)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(guest)", a.getStatus())
}

func TestWhoAmI(t *testing.T) {
	ctx := context.Background()

	a := newTestApp()
	require.NoError(t, a.WhoAmI(ctx, nil))
	assert.Contains(t, a.out.String(), "Not logged in.")

	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	a = newTestApp()
	a.auth.info = &session.Info{UserID: "42", ExpiresAt: exp}
	require.NoError(t, a.WhoAmI(ctx, nil))
	assert.Contains(t, a.out.String(), "User: 42")
	assert.Contains(t, a.out.String(), "valid until 2030-01-01T00:00:00Z")

	a = newTestApp()
	a.auth.info = &session.Info{UserID: "42", ExpiresAt: exp, Expired: true}
	require.NoError(t, a.WhoAmI(ctx, nil))
	assert.Contains(t, a.out.String(), "refreshed on the next request")
}

func TestVerifyForgotReset(t *testing.T) {
	ctx := context.Background()
	stubPasswords(t, "new-pw")

	a := newTestApp("prompted-token")
	require.NoError(t, a.VerifyEmail(ctx, []string{"tok"}))
	assert.Equal(t, "tok", a.auth.verifyToken)

	require.NoError(t, a.VerifyEmail(ctx, nil))
	assert.Equal(t, "prompted-token", a.auth.verifyToken)

	require.NoError(t, a.ForgotPassword(ctx, []string{"u@example.com"}))
	assert.Equal(t, "u@example.com", a.auth.resetEmail)

	require.NoError(t, a.ResetPassword(ctx, []string{"rt"}))
	assert.Equal(t, models.PasswordResetConfirm{Token: "rt", Password: "new-pw", Password2: "new-pw"}, a.auth.resetData)
}

func TestVerifyEmail_RejectedToken(t *testing.T) {
	a := newTestApp()
	a.auth.publicErr = &client.HTTPError{StatusCode: 400, Body: []byte(`{"detail":"Invalid token"}`)}

	err := a.VerifyEmail(context.Background(), []string{"bad"})
	require.Error(t, err)
	assert.Contains(t, a.out.String(), "Request failed (400): Invalid token")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
