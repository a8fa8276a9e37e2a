package port_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/application/port/mocks"
)

func TestSafeWebView_NilDegradesToDefaults(t *testing.T) {
	ctx := context.Background()
	wv := port.SafeWebView(nil)

	assert.True(t, wv.IsLoading())
	assert.False(t, wv.CanGoBack())
	assert.False(t, wv.CanGoForward())
	assert.False(t, wv.HasDevToolsOpen())
	assert.True(t, wv.IsDestroyed())

	assert.NoError(t, wv.Reload(ctx))
	assert.NoError(t, wv.Stop(ctx))
	assert.NoError(t, wv.GoBack(ctx))
	assert.NoError(t, wv.GoForward(ctx))
	loc := "https://example.com"
	assert.NoError(t, wv.Update(ctx, port.WebViewUpdate{Location: &loc}))
	assert.NotPanics(t, func() {
		wv.SetCallbacks(&port.WebViewCallbacks{})
		wv.Destroy()
	})
}

func TestSafeWebView_DestroyedEngineIsNotCalled(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockWebView(t)
	inner.EXPECT().IsDestroyed().Return(true)

	wv := port.SafeWebView(inner)

	assert.True(t, wv.IsLoading())
	assert.False(t, wv.CanGoBack())
	assert.False(t, wv.HasDevToolsOpen())
	assert.NoError(t, wv.Reload(ctx))
	wv.Destroy()
	// Only IsDestroyed was expected; any other call fails the mock.
}

func TestSafeWebView_DelegatesWhenAvailable(t *testing.T) {
	ctx := context.Background()
	inner := mocks.NewMockWebView(t)
	inner.EXPECT().IsDestroyed().Return(false)
	inner.EXPECT().IsLoading().Return(false).Once()
	inner.EXPECT().CanGoBack().Return(true).Once()
	inner.EXPECT().CanGoForward().Return(false).Once()
	inner.EXPECT().HasDevToolsOpen().Return(true).Once()
	inner.EXPECT().Reload(ctx).Return(nil).Once()
	inner.EXPECT().Stop(ctx).Return(port.ErrWebViewDestroyed).Once()
	inner.EXPECT().Update(ctx, mock.MatchedBy(func(u port.WebViewUpdate) bool {
		return u.ShowDevTools != nil && *u.ShowDevTools && u.Location == nil
	})).Return(nil).Once()

	wv := port.SafeWebView(inner)

	assert.False(t, wv.IsLoading())
	assert.True(t, wv.CanGoBack())
	assert.False(t, wv.CanGoForward())
	assert.True(t, wv.HasDevToolsOpen())
	assert.NoError(t, wv.Reload(ctx))
	assert.ErrorIs(t, wv.Stop(ctx), port.ErrWebViewDestroyed)
	show := true
	assert.NoError(t, wv.Update(ctx, port.WebViewUpdate{ShowDevTools: &show}))
}

func TestSafeWebView_DoesNotDoubleWrap(t *testing.T) {
	wv := port.SafeWebView(nil)
	assert.Same(t, wv, port.SafeWebView(wv))
}

func TestLoadEvent_String(t *testing.T) {
	assert.Equal(t, "started", port.LoadStarted.String())
	assert.Equal(t, "finished", port.LoadFinished.String())
	assert.Equal(t, "failed", port.LoadFailed.String())
	assert.Equal(t, "unknown", port.LoadEvent(42).String())
}
