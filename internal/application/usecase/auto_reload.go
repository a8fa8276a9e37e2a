package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
)

// AutoReloadUseCase reloads panes when the file they were opened from is written.
type AutoReloadUseCase struct {
	watcher port.FileWatcher
	main    port.MainThread

	mu      sync.Mutex
	watches map[entity.PaneID]*autoReloadWatch
}

type autoReloadWatch struct {
	path  string
	delay time.Duration
	stop  func()
}

// NewAutoReloadUseCase creates a new AutoReloadUseCase.
func NewAutoReloadUseCase(watcher port.FileWatcher, main port.MainThread) *AutoReloadUseCase {
	return &AutoReloadUseCase{
		watcher: watcher,
		main:    main,
		watches: make(map[entity.PaneID]*autoReloadWatch),
	}
}

// AutoReloadInput describes the desired watch state of one pane.
type AutoReloadInput struct {
	PaneID     entity.PaneID
	SourcePath string
	Enabled    bool
	Delay      time.Duration
	// Reload runs on the main thread.
	Reload func()
}

// Sync starts, restarts or stops the watch for a pane so it matches input.
// Panes without a source path are never watched.
func (uc *AutoReloadUseCase) Sync(ctx context.Context, input AutoReloadInput) error {
	log := logging.FromContext(ctx).With().Str("pane_id", string(input.PaneID)).Logger()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	current := uc.watches[input.PaneID]
	want := input.Enabled && input.SourcePath != "" && input.Reload != nil

	if !want {
		if current != nil {
			current.stop()
			delete(uc.watches, input.PaneID)
			log.Debug().Str("path", current.path).Msg("auto reload stopped")
		}
		return nil
	}

	if current != nil && current.path == input.SourcePath && current.delay == input.Delay {
		return nil
	}
	if current != nil {
		current.stop()
		delete(uc.watches, input.PaneID)
	}

	reload := input.Reload
	stop, err := uc.watcher.Watch(ctx, input.SourcePath, input.Delay, func() {
		log.Debug().Str("path", input.SourcePath).Msg("source changed, scheduling reload")
		uc.main.IdleAdd(reload)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", input.SourcePath, err)
	}

	uc.watches[input.PaneID] = &autoReloadWatch{
		path:  input.SourcePath,
		delay: input.Delay,
		stop:  stop,
	}
	log.Debug().
		Str("path", input.SourcePath).
		Dur("delay", input.Delay).
		Msg("auto reload started")
	return nil
}

// IsWatching reports whether a pane currently has an active watch.
func (uc *AutoReloadUseCase) IsWatching(id entity.PaneID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.watches[id]
	return ok
}

// Release stops the watch of a closed pane.
func (uc *AutoReloadUseCase) Release(id entity.PaneID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if w, ok := uc.watches[id]; ok {
		w.stop()
		delete(uc.watches, id)
	}
}

// StopAll stops every watch.
func (uc *AutoReloadUseCase) StopAll() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for id, w := range uc.watches {
		w.stop()
		delete(uc.watches, id)
	}
}
