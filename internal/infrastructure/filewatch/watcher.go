// Package filewatch watches source files for changes using fsnotify.
package filewatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/logging"
)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("file watcher closed")

// Watcher implements port.FileWatcher on a single fsnotify watcher.
// Parent directories are watched rather than files so that editors which save
// by writing a temp file and renaming it over the target are still seen.
type Watcher struct {
	fs         *fsnotify.Watcher
	logger     zerolog.Logger
	companions []glob.Glob

	mu     sync.Mutex
	dirs   map[string]int
	subs   map[uint64]*subscription
	nextID uint64
	closed bool

	done chan struct{}
}

type subscription struct {
	path     string
	delay    time.Duration
	onChange func()
	timer    *time.Timer
}

var _ port.FileWatcher = (*Watcher)(nil)

// Option configures a Watcher.
type Option func(*options)

type options struct {
	companions []string
}

// WithCompanions makes writes to files next to a watched file count as a
// change of that file when their base name matches one of patterns, so a
// page reloads when its stylesheet is saved. Patterns use glob syntax
// ("*.css", "{app,vendor}.js").
func WithCompanions(patterns ...string) Option {
	return func(o *options) {
		o.companions = append(o.companions, patterns...)
	}
}

// CompilePatterns checks companion patterns.
func CompilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// New starts a watcher. The context only provides the logger.
func New(ctx context.Context, opts ...Option) (*Watcher, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	companions, err := CompilePatterns(o.companions)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fs:         fsw,
		logger:     logging.FromContext(ctx).With().Str("component", "filewatch").Logger(),
		companions: companions,
		dirs:       make(map[string]int),
		subs:       make(map[uint64]*subscription),
		done:       make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Watch calls onChange once the file at path has been quiet for delay after a
// write. Changes arriving within delay of each other are coalesced.
func (w *Watcher) Watch(_ context.Context, path string, delay time.Duration, onChange func()) (func(), error) {
	if onChange == nil {
		return nil, errors.New("onChange callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrClosed
	}
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return nil, fmt.Errorf("watch directory %s: %w", dir, err)
		}
	}
	w.dirs[dir]++

	id := w.nextID
	w.nextID++
	w.subs[id] = &subscription{path: abs, delay: delay, onChange: onChange}

	w.logger.Debug().Str("path", abs).Dur("delay", delay).Msg("watching file")

	var once sync.Once
	return func() {
		once.Do(func() { w.unsubscribe(id, dir) })
	}, nil
}

func (w *Watcher) unsubscribe(id uint64, dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub, ok := w.subs[id]
	if !ok {
		return
	}
	if sub.timer != nil {
		sub.timer.Stop()
	}
	delete(w.subs, id)

	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if !w.closed {
			if err := w.fs.Remove(dir); err != nil {
				w.logger.Debug().Err(err).Str("dir", dir).Msg("failed to remove directory watch")
			}
		}
	}
}

// Close stops every watch. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for id, sub := range w.subs {
		if sub.timer != nil {
			sub.timer.Stop()
		}
		delete(w.subs, id)
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isContentChange(event) {
				continue
			}
			w.dispatch(filepath.Clean(event.Name))
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func isContentChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) dispatch(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, sub := range w.subs {
		if !w.matches(sub.path, name) {
			continue
		}
		if sub.timer != nil {
			sub.timer.Stop()
		}
		sub.timer = time.AfterFunc(sub.delay, sub.onChange)
	}
}

func (w *Watcher) matches(watched, name string) bool {
	if watched == name {
		return true
	}
	if len(w.companions) == 0 || filepath.Dir(watched) != filepath.Dir(name) {
		return false
	}
	base := filepath.Base(name)
	for _, g := range w.companions {
		if g.Match(base) {
			return true
		}
	}
	return false
}
