package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "max wait", mutate: func(c *Config) { c.WebPane.AutoReloadWait = 2000 }},
		{
			name:    "negative wait",
			mutate:  func(c *Config) { c.WebPane.AutoReloadWait = -1 },
			wantErr: "webpane.auto_reload_wait",
		},
		{
			name:    "wait above bound",
			mutate:  func(c *Config) { c.WebPane.AutoReloadWait = 2001 },
			wantErr: "webpane.auto_reload_wait",
		},
		{name: "companion patterns", mutate: func(c *Config) { c.WebPane.ReloadCompanions = []string{"*.css", "{app,vendor}.js"} }},
		{
			name:    "bad companion pattern",
			mutate:  func(c *Config) { c.WebPane.ReloadCompanions = []string{"[oops"} },
			wantErr: "webpane.reload_companions",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name: "file log with zero size",
			mutate: func(c *Config) {
				c.Logging.EnableFileLog = true
				c.Logging.MaxSizeMB = 0
			},
			wantErr: "logging.max_size_mb",
		},
		{name: "zero size without file log", mutate: func(c *Config) { c.Logging.MaxSizeMB = 0 }},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
		{
			name:    "bad key binding",
			mutate:  func(c *Config) { c.Keybindings["hyper+x"] = "webpane:refresh" },
			wantErr: "keybindings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WebPane.AutoReloadWait = 9999
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webpane.auto_reload_wait")
	assert.Contains(t, err.Error(), "logging.format")
}
