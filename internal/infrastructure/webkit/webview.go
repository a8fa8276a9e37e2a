// Package webkit adapts WebKitGTK 6 web views to the port.WebView capability.
package webkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/webpane/internal/application/port"
)

// WebView wraps a WebKitGTK web view. Signals are delivered on the GTK main
// thread, so callbacks run there as well.
type WebView struct {
	inner     *webkit.WebView
	inspector *webkit.WebInspector
	id        uint64

	destroyed    atomic.Bool
	devToolsOpen atomic.Bool

	// Signal handler IDs for disconnection
	viewSignals      []coreglib.SignalHandle
	historySignals   []coreglib.SignalHandle
	inspectorSignals []coreglib.SignalHandle

	mu        sync.RWMutex
	callbacks *port.WebViewCallbacks

	logger zerolog.Logger
}

var viewIDCounter atomic.Uint64

func newWebView(inner *webkit.WebView, settings Settings, logger zerolog.Logger) *WebView {
	wv := &WebView{
		inner:     inner,
		inspector: inner.Inspector(),
		id:        viewIDCounter.Add(1),
	}
	wv.logger = logger.With().Str("component", "webview").Uint64("view_id", wv.id).Logger()

	settings.apply(inner)
	wv.connectSignals()

	wv.logger.Debug().Msg("webview created")
	return wv
}

// connectSignals sets up signal handlers for the WebView.
func (wv *WebView) connectSignals() {
	wv.viewSignals = append(wv.viewSignals,
		wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
			wv.emitLoad(mapLoadEvent(event))
		}),
		wv.inner.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
			wv.logger.Debug().Err(err).Str("uri", failingURI).Msg("load failed")
			wv.emitLoad(port.LoadFailed)
			return false
		}),
		wv.inner.Connect("notify::uri", func() {
			if cb := wv.currentCallbacks(); cb != nil && cb.OnURIChanged != nil {
				cb.OnURIChanged(wv.inner.URI())
			}
		}),
		wv.inner.Connect("notify::title", func() {
			if cb := wv.currentCallbacks(); cb != nil && cb.OnTitleChanged != nil {
				title := wv.inner.Title()
				cb.OnTitleChanged(title, title != "")
			}
		}),
	)

	if history := wv.inner.BackForwardList(); history != nil {
		wv.historySignals = append(wv.historySignals,
			history.Connect("changed", func() {
				if cb := wv.currentCallbacks(); cb != nil && cb.OnHistoryChanged != nil {
					cb.OnHistoryChanged()
				}
			}),
		)
	}

	if wv.inspector != nil {
		wv.inspectorSignals = append(wv.inspectorSignals,
			wv.inspector.Connect("closed", func() {
				wv.setDevToolsOpen(false)
			}),
		)
	}
}

func (wv *WebView) emitLoad(event port.LoadEvent) {
	if cb := wv.currentCallbacks(); cb != nil && cb.OnLoadChanged != nil {
		cb.OnLoadChanged(event)
	}
}

func (wv *WebView) setDevToolsOpen(open bool) {
	if wv.devToolsOpen.Swap(open) == open {
		return
	}
	wv.logger.Debug().Bool("open", open).Msg("devtools state changed")
	if cb := wv.currentCallbacks(); cb != nil && cb.OnDevToolsChanged != nil {
		cb.OnDevToolsChanged(open)
	}
}

func (wv *WebView) currentCallbacks() *port.WebViewCallbacks {
	if wv.destroyed.Load() {
		return nil
	}
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.callbacks
}

func mapLoadEvent(event webkit.LoadEvent) port.LoadEvent {
	switch event {
	case webkit.LoadStarted, webkit.LoadRedirected:
		return port.LoadStarted
	case webkit.LoadCommitted:
		return port.LoadCommitted
	default:
		return port.LoadFinished
	}
}

// ID returns the unique identifier for this WebView.
func (wv *WebView) ID() uint64 {
	return wv.id
}

// Widget returns the GTK widget to embed in a pane.
func (wv *WebView) Widget() gtk.Widgetter {
	return wv.inner
}

// IsLoading reports whether a page load is in progress.
func (wv *WebView) IsLoading() bool {
	if wv.destroyed.Load() {
		return true
	}
	return wv.inner.IsLoading()
}

// CanGoBack returns true if back navigation is available.
func (wv *WebView) CanGoBack() bool {
	if wv.destroyed.Load() {
		return false
	}
	return wv.inner.CanGoBack()
}

// CanGoForward returns true if forward navigation is available.
func (wv *WebView) CanGoForward() bool {
	if wv.destroyed.Load() {
		return false
	}
	return wv.inner.CanGoForward()
}

// HasDevToolsOpen returns true while the inspector is shown.
func (wv *WebView) HasDevToolsOpen() bool {
	if wv.destroyed.Load() {
		return false
	}
	return wv.devToolsOpen.Load()
}

// Reload reloads the current page without using cached content.
func (wv *WebView) Reload(ctx context.Context) error {
	if err := wv.checkAlive(); err != nil {
		return err
	}
	wv.inner.ReloadBypassCache()
	return nil
}

// Stop stops the current page load.
func (wv *WebView) Stop(ctx context.Context) error {
	if err := wv.checkAlive(); err != nil {
		return err
	}
	wv.inner.StopLoading()
	return nil
}

// GoBack navigates back in history.
func (wv *WebView) GoBack(ctx context.Context) error {
	if err := wv.checkAlive(); err != nil {
		return err
	}
	if wv.inner.CanGoBack() {
		wv.inner.GoBack()
	}
	return nil
}

// GoForward navigates forward in history.
func (wv *WebView) GoForward(ctx context.Context) error {
	if err := wv.checkAlive(); err != nil {
		return err
	}
	if wv.inner.CanGoForward() {
		wv.inner.GoForward()
	}
	return nil
}

// Update loads a new location and shows or closes the inspector.
func (wv *WebView) Update(ctx context.Context, update port.WebViewUpdate) error {
	if err := wv.checkAlive(); err != nil {
		return err
	}

	if update.Location != nil && *update.Location != "" {
		wv.logger.Debug().Str("uri", *update.Location).Msg("loading location")
		wv.inner.LoadURI(*update.Location)
	}

	if update.ShowDevTools != nil {
		if wv.inspector == nil {
			return fmt.Errorf("webview %d has no inspector", wv.id)
		}
		if *update.ShowDevTools {
			wv.inspector.Show()
			wv.devToolsOpen.Store(true)
		} else if wv.devToolsOpen.Load() {
			wv.inspector.Close()
			wv.devToolsOpen.Store(false)
		}
	}
	return nil
}

// SetCallbacks registers callback handlers for WebView events.
func (wv *WebView) SetCallbacks(callbacks *port.WebViewCallbacks) {
	wv.mu.Lock()
	defer wv.mu.Unlock()
	wv.callbacks = callbacks
}

// IsDestroyed returns true if the WebView has been destroyed.
func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed.Load()
}

// Destroy stops loading and disconnects every signal handler.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}

	wv.inner.StopLoading()
	if wv.devToolsOpen.Load() && wv.inspector != nil {
		wv.inspector.Close()
	}

	for _, h := range wv.viewSignals {
		wv.inner.HandlerDisconnect(h)
	}
	if history := wv.inner.BackForwardList(); history != nil {
		for _, h := range wv.historySignals {
			history.HandlerDisconnect(h)
		}
	}
	if wv.inspector != nil {
		for _, h := range wv.inspectorSignals {
			wv.inspector.HandlerDisconnect(h)
		}
	}
	wv.viewSignals, wv.historySignals, wv.inspectorSignals = nil, nil, nil

	wv.mu.Lock()
	wv.callbacks = nil
	wv.mu.Unlock()

	wv.logger.Debug().Msg("webview destroyed")
}

func (wv *WebView) checkAlive() error {
	if wv.destroyed.Load() {
		return fmt.Errorf("webview %d: %w", wv.id, port.ErrWebViewDestroyed)
	}
	return nil
}
