// Package models defines the payloads exchanged with the job-board backend.
// The API client treats them as opaque bytes; services decode them here.
package models

// TokenPair is the credential pair returned by login and registration.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest is posted to /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is posted to /auth/register/.
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password"`
	Password2 string `json:"password2,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
}

// PasswordResetConfirm is posted to /auth/reset-password-confirm/.
type PasswordResetConfirm struct {
	Token     string `json:"token"`
	Password  string `json:"password"`
	Password2 string `json:"password2,omitempty"`
}
