package main

import (
	"context"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/webpane/internal/cli/cmd"
	"github.com/bnema/webpane/internal/infrastructure/config"
	"github.com/bnema/webpane/internal/infrastructure/filewatch"
	"github.com/bnema/webpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webpane/internal/infrastructure/webkit"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui"
)

func runGUI(parent context.Context, opts cmd.BrowseOptions) int {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()

	if err := config.Init(); err != nil {
		bootstrap := logging.NewFromEnv()
		bootstrap.Error().Err(err).Msg("failed to load configuration")
		return 1
	}
	mgr := config.GetManager()
	cfg := mgr.Get()

	var capture *logging.OutputCapture
	if cfg.Logging.CaptureOutput {
		capture = logging.NewOutputCapture()
		if err := capture.Start(); err != nil {
			capture = nil
		}
	}

	logger, logCleanup := initLogger(cfg, capture)
	defer logCleanup()
	if capture != nil {
		capture.Attach(logger)
		defer capture.Stop()
	}
	stopCrashHandler := logging.SetupCrashHandler(logger, logCleanup)
	defer stopCrashHandler()
	defer logging.RecoverPanic(logger)

	ctx := logging.WithContext(parent, logger)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting webpane")
	logCoreDumpLimits(ctx)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close database")
		}
	}()

	watcher, err := initParallel(ctx, db, opts.Restore, cfg.WebPane.ReloadCompanions)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize")
		return 1
	}
	defer func() { _ = watcher.Close() }()

	app, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: mgr,
		InitialPath:   opts.Path,
		RestorePanes:  opts.Restore,
		Factory:       webkit.NewWebViewFactory(webkit.DefaultSettings()),
		FileWatcher:   watcher,
		PaneRepo:      sqlite.NewLazyPaneStateRepository(db),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create application")
		return 1
	}

	// GApplication parses its own arguments; ours were consumed by cobra.
	return app.Run(ctx, os.Args[:1])
}

func initLogger(cfg *config.Config, capture *logging.OutputCapture) (zerolog.Logger, func()) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if capture != nil {
		logCfg.Output = capture.Stderr()
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog,
		LogDir:        cfg.Logging.LogDir,
		WriteToStderr: true,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAgeDays,
		Compress:      cfg.Logging.Compress,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	zerolog.SetGlobalLevel(logCfg.Level)
	return logger, cleanup
}

// initParallel starts the file watcher and, when panes will be restored,
// opens the database and runs migrations at the same time.
func initParallel(ctx context.Context, db *sqlite.LazyDB, warmDB bool, companions []string) (*filewatch.Watcher, error) {
	g, gctx := errgroup.WithContext(ctx)

	var watcher *filewatch.Watcher
	g.Go(func() error {
		w, err := filewatch.New(gctx, filewatch.WithCompanions(companions...))
		if err != nil {
			return err
		}
		watcher = w
		return nil
	})
	if warmDB {
		g.Go(func() error {
			if _, err := db.DB(gctx); err != nil {
				// Restore degrades to a fresh start, which is not fatal.
				logging.FromContext(ctx).Warn().Err(err).Msg("database unavailable, panes will not be restored")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, err
	}
	return watcher, nil
}
