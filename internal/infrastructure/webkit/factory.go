package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/logging"
)

// Settings configures newly created web views.
type Settings struct {
	// DeveloperExtras enables the inspector. The dev tools toggle needs it.
	DeveloperExtras      bool
	HardwareAcceleration bool
	UserAgent            string
}

// DefaultSettings returns the settings panes are created with.
func DefaultSettings() Settings {
	return Settings{
		DeveloperExtras:      true,
		HardwareAcceleration: true,
	}
}

func (s Settings) apply(view *webkit.WebView) {
	settings := view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableDeveloperExtras(s.DeveloperExtras)
	if s.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	}
	if s.UserAgent != "" {
		settings.SetUserAgent(s.UserAgent)
	}
}

// WebViewFactory creates WebKit web views for panes.
type WebViewFactory struct {
	settings Settings
}

// NewWebViewFactory creates a new WebViewFactory.
func NewWebViewFactory(settings Settings) *WebViewFactory {
	return &WebViewFactory{settings: settings}
}

// Create creates a WebView and starts loading location.
// Must be called on the GTK main thread.
func (f *WebViewFactory) Create(ctx context.Context, location string) (port.WebView, error) {
	log := logging.FromContext(ctx)

	wv := newWebView(webkit.NewWebView(), f.settings, *log)
	if location != "" {
		wv.inner.LoadURI(location)
	}

	log.Debug().Uint64("view_id", wv.id).Str("location", location).Msg("web view created")
	return wv, nil
}

// Ensure interface compliance.
var (
	_ port.WebViewFactory = (*WebViewFactory)(nil)
	_ port.WebView        = (*WebView)(nil)
)
