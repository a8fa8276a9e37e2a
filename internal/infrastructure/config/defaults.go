package config

import (
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/domain/url"
)

// Default configuration constants
const (
	defaultHomepage       = url.BlankPage
	defaultURLTemplate    = "file://" + url.PlaceholderFullPath + "/" + url.PlaceholderNameWithExt
	defaultAutoReloadWait = 0 // ms

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration values for webpane.
func DefaultConfig() *Config {
	return &Config{
		WebPane: WebPaneConfig{
			Homepage:       defaultHomepage,
			URLTemplate:    defaultURLTemplate,
			AutoReloadWait: defaultAutoReloadWait,
			HideToolbar:    false,
			ShowDevTools:   false,
			AutoReload:     false,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
			// LogDir is set dynamically in Load()
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the default pane key bindings.
func DefaultKeybindings() map[string]string {
	return map[string]string{
		"f5":           "webpane:refresh",
		"ctrl+r":       "webpane:refresh",
		"escape":       "webpane:stop",
		"alt+left":     "webpane:back",
		"alt+right":    "webpane:forward",
		"ctrl+l":       "webpane:focus-address",
		"ctrl+shift+i": "webpane:toggle-devtools",
		"f12":          "webpane:toggle-devtools",
		"ctrl+shift+b": "webpane:toggle-toolbar",
		"ctrl+shift+r": "webpane:toggle-auto-reload",
		"ctrl+o":       "webpane:open",
		"ctrl+w":       "webpane:close",
	}
}

// PaneDefaults returns the pane construction defaults held by c.
// The result is a value: later changes to c do not reach it.
func (c *Config) PaneDefaults() entity.PaneDefaults {
	return entity.PaneDefaults{
		Homepage:       c.WebPane.Homepage,
		URLTemplate:    c.WebPane.URLTemplate,
		AutoReload:     c.WebPane.AutoReload,
		HideToolbar:    c.WebPane.HideToolbar,
		ShowDevTools:   c.WebPane.ShowDevTools,
		AutoReloadWait: c.WebPane.AutoReloadWait,
	}
}
