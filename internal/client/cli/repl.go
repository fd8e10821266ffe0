package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	VerifyEmail(ctx context.Context, args []string) error
	ForgotPassword(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error

	Home(ctx context.Context, args []string) error
	Jobs(ctx context.Context, args []string) error
	Job(ctx context.Context, args []string) error
	AddJob(ctx context.Context, args []string) error
	Skills(ctx context.Context, args []string) error

	Resumes(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Parse(ctx context.Context, args []string) error
	Feedback(ctx context.Context, args []string) error
	Match(ctx context.Context, args []string) error
	Matches(ctx context.Context, args []string) error
}

const (
	guestHelp = "Available commands: home, jobs [search], job <id>, skills, register, login, verify, forgot, reset, exit"
	userHelp  = "Available commands: home, jobs [search], job <id>, addjob, skills, resumes, upload <file>, " +
		"parse <id>, feedback <id>, match <resumeID> <jobID>..., matches <resumeID>, whoami, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the job-board CLI.
//
// It reads a line from in, parses the first token as the command and passes
// the remaining tokens to the matching method on a. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jb %s > ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			_ = a.Register(ctx, args)
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "whoami":
			_ = a.WhoAmI(ctx, args)
		case "verify":
			_ = a.VerifyEmail(ctx, args)
		case "forgot":
			_ = a.ForgotPassword(ctx, args)
		case "reset":
			_ = a.ResetPassword(ctx, args)

		case "home":
			_ = a.Home(ctx, args)
		case "jobs":
			_ = a.Jobs(ctx, args)
		case "job":
			_ = a.Job(ctx, args)
		case "addjob":
			_ = a.AddJob(ctx, args)
		case "skills":
			_ = a.Skills(ctx, args)

		case "resumes":
			_ = a.Resumes(ctx, args)
		case "upload":
			_ = a.Upload(ctx, args)
		case "parse":
			_ = a.Parse(ctx, args)
		case "feedback":
			_ = a.Feedback(ctx, args)
		case "match":
			_ = a.Match(ctx, args)
		case "matches":
			_ = a.Matches(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
