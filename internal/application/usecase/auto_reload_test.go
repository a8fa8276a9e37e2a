package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/application/port/mocks"
	"github.com/bnema/webpane/internal/application/usecase"
)

func TestAutoReloadUseCase_SyncStartsWatchAndReloadsOnMainThread(t *testing.T) {
	ctx := testContext()
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)

	var onChange func()
	watcher.EXPECT().
		Watch(mock.Anything, "/srv/site/index.html", 300*time.Millisecond, mock.Anything).
		Run(func(_ context.Context, _ string, _ time.Duration, fn func()) { onChange = fn }).
		Return(func() {}, nil).
		Once()
	mainThread.EXPECT().IdleAdd(mock.Anything).Run(func(fn func()) { fn() }).Once()

	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)
	reloads := 0
	err := uc.Sync(ctx, usecase.AutoReloadInput{
		PaneID:     "p1",
		SourcePath: "/srv/site/index.html",
		Enabled:    true,
		Delay:      300 * time.Millisecond,
		Reload:     func() { reloads++ },
	})
	require.NoError(t, err)
	assert.True(t, uc.IsWatching("p1"))

	require.NotNil(t, onChange)
	onChange()
	assert.Equal(t, 1, reloads)
}

func TestAutoReloadUseCase_SyncIsIdempotentAndStopsWhenDisabled(t *testing.T) {
	ctx := testContext()
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)

	stops := 0
	watcher.EXPECT().
		Watch(mock.Anything, "/a.html", time.Duration(0), mock.Anything).
		Return(func() { stops++ }, nil).
		Once()

	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)
	in := usecase.AutoReloadInput{PaneID: "p1", SourcePath: "/a.html", Enabled: true, Reload: func() {}}

	require.NoError(t, uc.Sync(ctx, in))
	require.NoError(t, uc.Sync(ctx, in))
	assert.Zero(t, stops)

	in.Enabled = false
	require.NoError(t, uc.Sync(ctx, in))
	assert.Equal(t, 1, stops)
	assert.False(t, uc.IsWatching("p1"))

	require.NoError(t, uc.Sync(ctx, in))
	assert.Equal(t, 1, stops)
}

func TestAutoReloadUseCase_DelayChangeRestartsWatch(t *testing.T) {
	ctx := testContext()
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)

	stops := 0
	watcher.EXPECT().
		Watch(mock.Anything, "/a.html", mock.Anything, mock.Anything).
		Return(func() { stops++ }, nil).
		Twice()

	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)
	in := usecase.AutoReloadInput{PaneID: "p1", SourcePath: "/a.html", Enabled: true, Delay: time.Second, Reload: func() {}}
	require.NoError(t, uc.Sync(ctx, in))

	in.Delay = 2 * time.Second
	require.NoError(t, uc.Sync(ctx, in))
	assert.Equal(t, 1, stops)
	assert.True(t, uc.IsWatching("p1"))
}

func TestAutoReloadUseCase_PaneWithoutSourceIsNotWatched(t *testing.T) {
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)
	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)

	err := uc.Sync(testContext(), usecase.AutoReloadInput{PaneID: "p1", Enabled: true, Reload: func() {}})
	require.NoError(t, err)
	assert.False(t, uc.IsWatching("p1"))
}

func TestAutoReloadUseCase_WatchError(t *testing.T) {
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)
	watcher.EXPECT().
		Watch(mock.Anything, "/missing.html", mock.Anything, mock.Anything).
		Return(nil, errors.New("no such file")).
		Once()

	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)
	err := uc.Sync(testContext(), usecase.AutoReloadInput{
		PaneID: "p1", SourcePath: "/missing.html", Enabled: true, Reload: func() {},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.False(t, uc.IsWatching("p1"))
}

func TestAutoReloadUseCase_ReleaseAndStopAll(t *testing.T) {
	ctx := testContext()
	watcher := mocks.NewMockFileWatcher(t)
	mainThread := mocks.NewMockMainThread(t)

	stops := 0
	watcher.EXPECT().
		Watch(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func() { stops++ }, nil).
		Times(3)

	uc := usecase.NewAutoReloadUseCase(watcher, mainThread)
	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, uc.Sync(ctx, usecase.AutoReloadInput{
			PaneID: entityPaneID(id), SourcePath: "/" + id, Enabled: true, Reload: func() {},
		}))
	}

	uc.Release("p2")
	uc.Release("p2")
	assert.Equal(t, 1, stops)
	assert.False(t, uc.IsWatching("p2"))

	uc.StopAll()
	assert.Equal(t, 3, stops)
	assert.False(t, uc.IsWatching("p1"))
	assert.False(t, uc.IsWatching("p3"))
}
