package cli

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
)

var (
	errUsage       = errors.New("usage")
	errNotLoggedIn = errors.New("not logged in")
)

// fail prints err in user terms and returns it. A session expiry has
// already been announced by sessionEnded, so it is only logged.
func (a *App) fail(ctx context.Context, err error) error {
	var ve *client.ValidationError
	var he *client.HTTPError

	switch {
	case errors.Is(err, client.ErrSessionExpired):
		a.log.Debug(ctx, "command aborted", "error", err)
	case errors.Is(err, client.ErrInvalidCredentials):
		a.println("Invalid email or password.")
	case errors.As(err, &ve):
		a.println("The server rejected the request:")
		for _, line := range fieldLines(ve.Fields) {
			a.println("  " + line)
		}
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, try again later.")
		a.log.Debug(ctx, "transport error", "error", err)
	case errors.Is(err, client.ErrUnauthorized):
		a.println("You need to log in first.")
	case errors.Is(err, client.ErrNotFound):
		a.println("Not found.")
	case errors.As(err, &he):
		a.printf("Request failed (%d): %s\n", he.StatusCode, he.Detail())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.println("Request cancelled.")
	default:
		a.println("Error:", err.Error())
	}
	return err
}

// usage prints the expected form of a command.
func (a *App) usage(form string) error {
	a.println("Usage: " + form)
	return errUsage
}

// requireLogin refuses commands that only make sense with a session.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	a.println("You need to log in first.")
	return errNotLoggedIn
}

func fieldLines(fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, k := range names {
		lines = append(lines, k+": "+strings.Join(fields[k], " "))
	}
	return lines
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id: " + s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, s := range args {
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
