package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "about:blank", mgr.viper.GetString("webpane.homepage"))
	assert.Equal(t, "file://{full_path}/{name_with_ext}", mgr.viper.GetString("webpane.url_template"))
	assert.Equal(t, 0, mgr.viper.GetInt("webpane.auto_reload_wait"))
	assert.False(t, mgr.viper.GetBool("webpane.hide_toolbar"))
	assert.False(t, mgr.viper.GetBool("webpane.show_dev_tools"))
	assert.False(t, mgr.viper.GetBool("webpane.auto_reload"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestManager_Load_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, schemaFileName))

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().WebPane, cfg.WebPane)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.False(t, cfg.Logging.EnableFileLog)
	assert.Equal(t, "webpane:refresh", cfg.Keybindings["f5"])
}

func TestManager_Load_ReadsFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[webpane]
homepage = "  https://example.com  "
url_template = "http://localhost:8000/{name_no_ext}"
auto_reload_wait = 750
hide_toolbar = true
show_dev_tools = true
auto_reload = true
reload_companions = ["*.css", "*.js"]

[logging]
level = "DEBUG"
format = "json"

[database]
path = "/tmp/panes.sqlite"
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://example.com", cfg.WebPane.Homepage)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/panes.sqlite", cfg.Database.Path)
	assert.Equal(t, []string{"*.css", "*.js"}, cfg.WebPane.ReloadCompanions)

	d := mgr.PaneDefaults()
	assert.Equal(t, "http://localhost:8000/{name_no_ext}", d.URLTemplate)
	assert.Equal(t, 750, d.AutoReloadWait)
	assert.True(t, d.HideToolbar)
	assert.True(t, d.ShowDevTools)
	assert.True(t, d.AutoReload)
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[webpane]\nauto_reload = false\n")
	t.Setenv("WEBPANE_WEBPANE_AUTO_RELOAD", "true")
	t.Setenv("WEBPANE_LOG_LEVEL", "warn")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.PaneDefaults().AutoReload)
	assert.Equal(t, "warn", mgr.Get().Logging.Level)
}

func TestManager_Load_RejectsOutOfRangeWait(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[webpane]\nauto_reload_wait = 2500\n")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webpane.auto_reload_wait")
}

func TestManager_Load_RejectsBadToml(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[webpane\nhomepage = ")

	mgr, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestManager_ReloadDoesNotTouchTakenSnapshots(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[webpane]\nhide_toolbar = false\nauto_reload_wait = 100\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified *Config
	mgr.OnConfigChange(func(c *Config) { notified = c })

	snapshot := mgr.PaneDefaults()

	writeConfig(t, root, "[webpane]\nhide_toolbar = true\nauto_reload_wait = 900\n")
	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()

	assert.False(t, snapshot.HideToolbar)
	assert.Equal(t, 100, snapshot.AutoReloadWait)

	fresh := mgr.PaneDefaults()
	assert.True(t, fresh.HideToolbar)
	assert.Equal(t, 900, fresh.AutoReloadWait)

	require.NotNil(t, notified)
	assert.True(t, notified.WebPane.HideToolbar)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.WebPane.Homepage = "mutated"
	cfg.Keybindings["f5"] = "mutated"

	assert.Equal(t, "about:blank", mgr.Get().WebPane.Homepage)
	assert.Equal(t, "webpane:refresh", mgr.Get().Keybindings["f5"])
}

func TestGet_BeforeInitReturnsDefaults(t *testing.T) {
	if GetManager() != nil {
		t.Skip("global manager already initialized")
	}
	assert.Equal(t, DefaultConfig(), Get())
}
