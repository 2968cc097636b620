// Package internal provides application wiring for the qc command: it turns
// a loaded configuration into an opened store and a ready service.
package internal

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blackroad/qualityctl/internal/qcservice"
	"github.com/blackroad/qualityctl/internal/store"
)

// App holds the wired components for one command invocation. The lifetime of
// the underlying database connection is bounded to the invocation: callers
// must Close on every exit path.
type App struct {
	cfg *Config
	db  *store.DB
	svc *qcservice.Service
}

// NewApp opens the store and builds the service according to the options.
func NewApp(opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		opt(app)
	}
	if app.cfg == nil {
		app.cfg = NewDefaultConfig()
	}

	// Logs go to stderr so stdout stays clean for tables and JSON.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: app.cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("database_path", app.cfg.Database.Path),
		slog.String("log_level", app.cfg.App.LogLevel.String()))

	db, err := store.Open(app.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	app.db = db
	app.svc = qcservice.NewService(db)
	return app, nil
}

// Service returns the wired quality-control service.
func (a *App) Service() *qcservice.Service {
	return a.svc
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}
