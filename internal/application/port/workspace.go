package port

import (
	"context"
	"time"
)

// FileSelection reports the paths selected in the host's file tree.
type FileSelection interface {
	SelectedPaths() []string
}

// ActiveEditor reports the file shown by the host's focused editor.
type ActiveEditor interface {
	// ActiveFilePath returns "" when no editor is active or it has no file.
	ActiveFilePath() string
}

// MainThread schedules work on the UI thread.
type MainThread interface {
	// IdleAdd runs fn on the UI thread as soon as it is idle.
	IdleAdd(fn func())
}

// FileWatcher watches files for writes.
type FileWatcher interface {
	// Watch invokes onChange after path was written and stayed quiet for delay.
	// Bursts of writes within delay collapse into one call. The returned
	// function stops watching and is safe to call more than once.
	Watch(ctx context.Context, path string, delay time.Duration, onChange func()) (stop func(), err error)
	// Close releases the underlying watcher.
	Close() error
}
