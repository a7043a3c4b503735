package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/atm/internal/atm"
	"github.com/dmitrijs2005/atm/internal/config"
	"github.com/dmitrijs2005/atm/internal/logging"
)

// teller is the part of *atm.Session the terminal drives.
type teller interface {
	State() atm.AuthState
	Login(ctx context.Context, pin string) atm.AuthResult
	Logout(ctx context.Context) string
	Do(ctx context.Context, req atm.Request) (string, error)
	Close(ctx context.Context)
}

type App struct {
	config  *config.Config
	session teller
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	logFile *os.File

	closeOnce sync.Once
}

// NewApp builds the logger and the session described by c.
func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var (
		w       io.Writer = os.Stderr
		logFile *os.File
	)
	if c.LogFile != "" {
		logFile, err = os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = logFile
	}
	logger := logging.New(w, level)

	session, err := atm.NewSession(c.SessionOptions(), logger)
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("new session: %w", err)
	}

	return &App{
		config:  c,
		session: session,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		logFile: logFile,
	}, nil
}

// Run drives the terminal until the user exits, input ends, or the session
// locks out. The session is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

// Close ends the session and closes the log file. Only the first call has
// any effect, so it may be used on the signal path while Run is still
// blocked on input.
func (a *App) Close(ctx context.Context) {
	a.closeOnce.Do(func() {
		a.session.Close(ctx)
		if a.logFile != nil {
			if err := a.logFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
			}
		}
	})
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == atm.StateAuthenticated
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.session.State())
}
