// Package cli provides the interactive job-board command-line client.
//
// It wires configuration, the local session database, the authenticated API
// client and the resource services behind a small REPL. On start it restores
// a stored session, prints the most recent active jobs and waits for commands.
//
// Key features:
//   - Register / Login / Logout, e-mail verification and password reset
//   - Browse jobs and skills, post jobs
//   - Upload, parse and review resumes; match resumes against jobs
//
// When the API client reports that the session could not be kept alive the
// App marks itself logged out and asks the user to log in again.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
