package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/infrastructure/filewatch"
	"github.com/bnema/webpane/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newWatcher(t *testing.T) *filewatch.Watcher {
	t.Helper()
	w, err := filewatch.New(testCtx())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.html")
	writeFile(t, target, "<p>one</p>")

	w := newWatcher(t)
	var calls atomic.Int32
	stop, err := w.Watch(testCtx(), target, 0, func() { calls.Add(1) })
	require.NoError(t, err)
	defer stop()

	writeFile(t, target, "<p>two</p>")

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.html")
	other := filepath.Join(dir, "other.css")
	writeFile(t, target, "x")
	writeFile(t, other, "x")

	w := newWatcher(t)
	var calls atomic.Int32
	stop, err := w.Watch(testCtx(), target, 0, func() { calls.Add(1) })
	require.NoError(t, err)
	defer stop()

	writeFile(t, other, "y")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_CoalescesBurstWithinDelay(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "page.html")
	writeFile(t, target, "0")

	w := newWatcher(t)
	var calls atomic.Int32
	stop, err := w.Watch(testCtx(), target, 300*time.Millisecond, func() { calls.Add(1) })
	require.NoError(t, err)
	defer stop()

	for i := range 5 {
		writeFile(t, target, string(rune('a'+i)))
		time.Sleep(20 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_StopPreventsCallbacks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "page.html")
	writeFile(t, target, "0")

	w := newWatcher(t)
	var calls atomic.Int32
	stop, err := w.Watch(testCtx(), target, 0, func() { calls.Add(1) })
	require.NoError(t, err)

	stop()
	stop()

	writeFile(t, target, "1")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_SharedDirectoryKeepsOtherWatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	w := newWatcher(t)
	stopA, err := w.Watch(testCtx(), a, 0, func() {})
	require.NoError(t, err)

	var calls atomic.Int32
	stopB, err := w.Watch(testCtx(), b, 0, func() { calls.Add(1) })
	require.NoError(t, err)
	defer stopB()

	stopA()
	writeFile(t, b, "changed")

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_RequiresCallback(t *testing.T) {
	w := newWatcher(t)
	_, err := w.Watch(testCtx(), filepath.Join(t.TempDir(), "x"), 0, nil)
	assert.Error(t, err)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newWatcher(t)
	_, err := w.Watch(testCtx(), filepath.Join(t.TempDir(), "missing", "x.html"), 0, func() {})
	assert.Error(t, err)
}

func TestWatcher_WatchAfterClose(t *testing.T) {
	w, err := filewatch.New(testCtx())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Watch(testCtx(), filepath.Join(t.TempDir(), "x"), 0, func() {})
	assert.ErrorIs(t, err, filewatch.ErrClosed)
}

func TestWatcher_CompanionPatternTriggersReload(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.html")
	style := filepath.Join(dir, "site.css")
	notes := filepath.Join(dir, "notes.txt")
	writeFile(t, target, "x")
	writeFile(t, style, "x")
	writeFile(t, notes, "x")

	w, err := filewatch.New(testCtx(), filewatch.WithCompanions("*.css", "*.js"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	var calls atomic.Int32
	stop, err := w.Watch(testCtx(), target, 0, func() { calls.Add(1) })
	require.NoError(t, err)
	defer stop()

	writeFile(t, notes, "y")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load(), "non-matching sibling must not trigger")

	writeFile(t, style, "y")
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestNew_RejectsBadCompanionPattern(t *testing.T) {
	_, err := filewatch.New(testCtx(), filewatch.WithCompanions("[unclosed"))
	assert.Error(t, err)
}
