// Package cli provides the webpane command line, with Bubble Tea views.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/webpane/internal/application/usecase"
	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/domain/build"
	"github.com/bnema/webpane/internal/infrastructure/config"
	"github.com/bnema/webpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webpane/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases
	PersistUC *usecase.PersistPanesUseCase

	// The database is opened on first use, so commands that never touch
	// saved panes do not create it.
	db *sqlite.LazyDB

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("WEBPANE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	// CLI output belongs to the user; logs stay quiet unless asked for.
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: false, WriteToStderr: os.Getenv("WEBPANE_LOG_LEVEL") != ""},
	)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database configured")

	return &App{
		Config:     cfg,
		Theme:      styles.DefaultTheme(),
		PersistUC:  usecase.NewPersistPanesUseCase(sqlite.NewLazyPaneStateRepository(db)),
		db:         db,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. A broken config
// file is reported rather than silently replaced by defaults.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return config.Get(), nil
}
