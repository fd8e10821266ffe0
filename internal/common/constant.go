// Package common contains shared constants and small helpers used across
// jobboard components.
package common

const (
	// AuthorizationHeaderName carries the bearer access token on outbound
	// requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)

// Credential store keys.
const (
	AccessTokenKey  = "token"
	RefreshTokenKey = "refreshToken"
)
