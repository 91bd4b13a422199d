package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/credstore/internal/config"
	"github.com/dmitrijs2005/credstore/internal/logging"
	"github.com/dmitrijs2005/credstore/internal/profiles"
	"github.com/dmitrijs2005/credstore/internal/users"
)

// App ties the credential service to the interactive shell.
//
// userName holds the name from the last successful login and is shown in
// the prompt. It is display state only, the store issues no sessions and
// every command is checked against the store directly.
type App struct {
	config   *config.Config
	service  *users.Service
	reader   *bufio.Reader
	log      logging.Logger
	userName string
}

// NewApp builds a ready-to-run application: a logger configured from c,
// a memory repository seeded with the demo accounts, and the credential
// service on top of both.
func NewApp(c *config.Config) (*App, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, err
	}

	repo := users.NewMemoryRepository(users.Seed()...)
	svc := users.NewService(repo, profiles.NewStaticRepository(), logger)

	return &App{config: c, service: svc, reader: bufio.NewReader(os.Stdin), log: logger}, nil
}

// newLogger builds the slog-backed logger described by the config and tags
// it with a per-run trace id so log lines from one session group together.
func newLogger(c *config.Config) (logging.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", c.LogLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch c.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return logging.NewSlogLogger(slog.New(handler)).With("trace_id", uuid.NewString()), nil
}

// prompt renders the REPL prompt, e.g. "credstore> " before login and
// "credstore (alice)> " after.
func (a *App) prompt() string {
	s := a.config.PromptLabel
	if a.userName != "" {
		s = fmt.Sprintf("%s (%s)", s, a.userName)
	}
	return s + "> "
}

// Run greets the user and hands control to the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "interactive session started")
	printlnFn("Hello from credstore (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.prompt, scanner)
}
