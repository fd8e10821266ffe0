package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/config"
	"github.com/dmitrijs2005/jobboard/internal/client/services"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/client/storage"
	"github.com/dmitrijs2005/jobboard/internal/logging"
	"github.com/dmitrijs2005/jobboard/internal/telemetry"
)

const serviceName = "jobboard-cli"

type App struct {
	config *config.Config
	log    logging.Logger

	authService   services.AuthService
	resumeService services.ResumeService
	jobService    services.JobService
	skillService  services.SkillService

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	loggedIn bool
	userName string

	closers []func(context.Context) error
}

// NewApp opens the session database and wires the API client and services
// described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	shutdown := telemetry.Setup(ctx, serviceName, log)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		_ = shutdown(ctx)
		return nil, err
	}

	a := newApp(c, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.closers = append(a.closers, shutdown, func(context.Context) error { return db.Close() })

	if err := a.wire(db, telemetry.Transport(nil)); err != nil {
		a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{config: c, log: log, reader: reader, out: out}
}

// wire builds the credential store, API client and services on top of db.
func (a *App) wire(db *sql.DB, transport http.RoundTripper) error {
	store := session.NewSQLiteStore(db, a.config.StorePassphrase)

	apiClient, err := client.NewHTTPClient(a.config.APIURL, store, client.Options{
		HTTPClient:     &http.Client{Timeout: a.config.RequestTimeout, Transport: transport},
		Logger:         a.log,
		OnSessionEnded: a.sessionEnded,
	})
	if err != nil {
		return err
	}

	a.authService = services.NewAuthService(apiClient, store)
	a.resumeService = services.NewResumeService(apiClient)
	a.jobService = services.NewJobService(apiClient)
	a.skillService = services.NewSkillService(apiClient)
	return nil
}

// Run restores the stored session, prints the home page and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	a.println("Welcome to the job board CLI (type 'help' for commands)")
	a.restoreSession(ctx)
	_ = a.Home(ctx, nil)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the database and flushes telemetry.
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn(ctx, "close", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) restoreSession(ctx context.Context) {
	info, err := a.authService.Session(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			a.log.Warn(ctx, "stored session unreadable", "error", err)
		}
		return
	}
	a.setLoggedIn("user " + info.UserID)
}

// sessionEnded is the API client's session-ended signal. The store is
// already empty when it runs.
func (a *App) sessionEnded(ctx context.Context, reason error) {
	a.setLoggedOut()
	a.log.Info(ctx, "session ended", "reason", reason)
	a.println("Your session has expired. Please log in again (type 'login').")
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) setLoggedIn(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = true
	a.userName = name
}

func (a *App) setLoggedOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = false
	a.userName = ""
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loggedIn {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
