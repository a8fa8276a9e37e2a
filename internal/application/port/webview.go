// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
	"errors"
)

// ErrWebViewDestroyed is returned by WebView actions invoked after Destroy.
var ErrWebViewDestroyed = errors.New("webview destroyed")

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
	// LoadFailed indicates the load was aborted or failed.
	LoadFailed
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// WebViewUpdate carries the properties a pane pushes to its webview.
// Nil fields are left untouched.
type WebViewUpdate struct {
	Location     *string
	ShowDevTools *bool
}

// WebViewCallbacks defines callback handlers for WebView events.
// Implementations should invoke these on the main thread.
type WebViewCallbacks struct {
	// OnLoadChanged is called when load state changes.
	OnLoadChanged func(event LoadEvent)
	// OnURIChanged is called when the webview navigated to a new URI.
	OnURIChanged func(uri string)
	// OnTitleChanged is called when the page title changes. explicit is false
	// when the page does not declare a title.
	OnTitleChanged func(title string, explicit bool)
	// OnHistoryChanged is called when back/forward availability may have changed.
	OnHistoryChanged func()
	// OnDevToolsChanged is called when the inspector is opened or closed.
	OnDevToolsChanged func(open bool)
}

// WebView is the embedded browser capability owned by a single pane.
// Reads are synchronous; actions are fire-and-forget.
type WebView interface {
	// IsLoading returns true if a page is currently loading.
	IsLoading() bool
	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool
	// CanGoForward returns true if forward navigation is available.
	CanGoForward() bool
	// HasDevToolsOpen returns true if the inspector is attached and visible.
	HasDevToolsOpen() bool

	// Reload reloads the current page, bypassing the cache.
	Reload(ctx context.Context) error
	// Stop stops the current page load.
	Stop(ctx context.Context) error
	// GoBack navigates back in history.
	GoBack(ctx context.Context) error
	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error
	// Update loads a new location and/or shows or hides the inspector.
	Update(ctx context.Context, update WebViewUpdate) error

	// SetCallbacks registers callback handlers for WebView events.
	// Pass nil to clear all callbacks.
	SetCallbacks(callbacks *WebViewCallbacks)

	// IsDestroyed returns true if the WebView has been destroyed.
	IsDestroyed() bool
	// Destroy releases all resources associated with this WebView.
	Destroy()
}

// WebViewFactory creates WebView instances.
type WebViewFactory interface {
	// Create creates a WebView that starts loading location once realized.
	Create(ctx context.Context, location string) (WebView, error)
}
