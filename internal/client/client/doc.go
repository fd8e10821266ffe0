// Package client contains the authenticated HTTP client for the job-board
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface): Login, Register,
//     Logout, and generic Get/Post/Put/PostMultipart/Do resource calls.
//  2. A concrete implementation (see HTTPClient) that attaches the stored
//     access token as a bearer credential, and on a 401 exchanges the stored
//     refresh token for a new access token and retries the request once.
//
// # Refresh protocol
//
// A request is attempted at most twice. When the first attempt receives a
// 401, the client:
//   - without a stored refresh token, clears the credential store, emits the
//     session-ended signal and returns a *SessionExpiredError wrapping the 401;
//   - otherwise posts the refresh token to /auth/refresh-token/. On success
//     the new access token is stored and the request is resent once; that
//     result is returned as is. On failure both tokens are cleared, the
//     session-ended signal is emitted and a *SessionExpiredError wrapping the
//     refresh failure is returned.
//
// Concurrent 401s share one in-flight refresh.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrInvalidCredentials,
// ErrValidation, ErrSessionExpired. Non-2xx responses are *HTTPError values
// carrying the status and body.
package client
