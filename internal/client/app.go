package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-robinhood/internal/config"
	"github.com/MKhiriev/go-robinhood/internal/crypto"
	"github.com/MKhiriev/go-robinhood/internal/logger"
	"github.com/MKhiriev/go-robinhood/internal/service"
	"github.com/MKhiriev/go-robinhood/internal/store"
	"github.com/MKhiriev/go-robinhood/models"
	"github.com/MKhiriev/go-robinhood/robinhood"
)

const defaultCommand = "accounts"

// App authenticates a session and runs one command against it.
type App struct {
	api      robinhood.API
	sessions service.SessionService
	command  []string
	out      io.Writer
	db       *store.DB
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the API client, the optional session store and the session
// service from cfg. The store is opened and migrated only when a DSN is
// configured.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	opts := []robinhood.Option{
		robinhood.WithBaseURL(cfg.Adapter.BaseURL),
		robinhood.WithTimeout(cfg.Adapter.RequestTimeout),
		robinhood.WithLogger(log.Logger),
	}
	if cfg.Credentials.Username != "" {
		opts = append(opts, robinhood.WithCredentials(cfg.Credentials.Username, cfg.Credentials.Password))
	}
	if cfg.Credentials.Token != "" {
		opts = append(opts, robinhood.WithToken(cfg.Credentials.Token))
	}
	if cfg.Credentials.MFACode != "" {
		opts = append(opts, robinhood.WithMFACode(cfg.Credentials.MFACode))
	}
	if cfg.Adapter.RateLimit > 0 {
		opts = append(opts, robinhood.WithRateLimit(rate.Limit(cfg.Adapter.RateLimit), cfg.Adapter.RateBurst))
	}

	api, err := robinhood.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	var (
		db     *store.DB
		repo   store.SessionRepository
		sealer crypto.TokenSealer
	)
	if cfg.Storage.DB.DSN != "" {
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate session store: %w", err)
		}
		repo = store.NewSessionRepository(db, log)
		sealer = crypto.NewTokenSealer()
	}

	sessions := service.NewSessionService(
		api,
		repo,
		sealer,
		service.SessionConfig{Username: cfg.Credentials.Username, SealKey: cfg.App.SealKey},
		PromptMFA(os.Stdin, os.Stderr),
		log,
	)

	app := newApp(api, sessions, cfg.Command, os.Stdout, log)
	app.db = db
	return app, nil
}

func newApp(api robinhood.API, sessions service.SessionService, command []string, out io.Writer, log *logger.Logger) *App {
	return &App{
		api:      api,
		sessions: sessions,
		command:  command,
		out:      out,
		logger:   log,
	}
}

// Run authenticates and executes the configured command.
func (a *App) Run(ctx context.Context) error {
	name, args := defaultCommand, []string(nil)
	if len(a.command) > 0 {
		name, args = strings.ToLower(a.command[0]), a.command[1:]
	}

	cmd, ok := a.commands()[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs {
		return fmt.Errorf("%w: %s %s", ErrMissingArgs, name, cmd.usage)
	}

	if name != "reset-password" {
		if _, err := a.sessions.Start(ctx); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
	}

	start := time.Now()
	result, err := cmd.run(ctx, args)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Debug().Str("command", name).Dur("duration", time.Since(start)).Msg("command completed")

	if result == nil {
		return nil
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// Close releases the session store, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, args []string) (any, error)
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"accounts": {run: func(ctx context.Context, _ []string) (any, error) {
			return a.api.Accounts(ctx)
		}},
		"user": {run: func(ctx context.Context, _ []string) (any, error) {
			return a.api.User(ctx)
		}},
		"positions": {run: func(ctx context.Context, _ []string) (any, error) {
			return a.api.NonZeroPositions(ctx)
		}},
		"quote": {usage: "SYMBOL...", minArgs: 1, run: func(ctx context.Context, args []string) (any, error) {
			return a.api.QuoteData(ctx, args...)
		}},
		"popularity": {usage: "SYMBOL", minArgs: 1, run: func(ctx context.Context, args []string) (any, error) {
			return a.api.Popularity(ctx, args[0])
		}},
		"news": {usage: "SYMBOL", minArgs: 1, run: func(ctx context.Context, args []string) (any, error) {
			return a.api.News(ctx, args[0])
		}},
		"movers": {run: func(ctx context.Context, args []string) (any, error) {
			if len(args) > 0 && args[0] == "down" {
				return a.api.SP500Down(ctx)
			}
			return a.api.SP500Up(ctx)
		}},
		"orders": {run: func(ctx context.Context, args []string) (any, error) {
			if len(args) > 0 {
				return a.api.Orders(ctx, models.OrderByID(args[0]))
			}
			return a.api.Orders(ctx, models.OrderFilter{})
		}},
		"cancel": {usage: "ORDER_ID", minArgs: 1, run: func(ctx context.Context, args []string) (any, error) {
			return a.api.CancelOrder(ctx, models.CancelByID(args[0]))
		}},
		"reset-password": {usage: "EMAIL", minArgs: 1, run: func(ctx context.Context, args []string) (any, error) {
			return nil, a.api.RequestPasswordReset(ctx, args[0])
		}},
		"logout": {run: func(ctx context.Context, _ []string) (any, error) {
			return nil, a.sessions.Logout(ctx)
		}},
	}
}
