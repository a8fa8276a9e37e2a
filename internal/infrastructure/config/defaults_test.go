package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/ui/input"
)

func TestDefaultConfig_PaneDefaults(t *testing.T) {
	d := DefaultConfig().PaneDefaults()

	assert.Equal(t, "about:blank", d.Homepage)
	assert.Equal(t, "file://{full_path}/{name_with_ext}", d.URLTemplate)
	assert.Zero(t, d.AutoReloadWait)
	assert.False(t, d.AutoReload)
	assert.False(t, d.HideToolbar)
	assert.False(t, d.ShowDevTools)
}

func TestDefaultKeybindings_Parse(t *testing.T) {
	_, err := input.NewKeymap(DefaultKeybindings())
	require.NoError(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "webpane configuration", doc["title"])
	assert.Contains(t, string(data), `"auto_reload_wait"`)
	assert.Contains(t, string(data), `"maximum": 2000`)
	assert.Contains(t, string(data), `"url_template"`)
}
