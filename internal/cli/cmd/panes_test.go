package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/domain/entity"
)

func testRows() []styles.PaneRow {
	saved := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []styles.PaneRow{
		{
			ID:         "pane_a",
			SourcePath: "/src/index.html",
			SavedAt:    saved,
			State:      entity.PaneState{Title: "Home", Location: "file:///src/index.html", AutoReload: true},
		},
		{ID: "pane_b", SavedAt: saved, Broken: true},
	}
}

func TestOutputPanesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputPanesJSON(&buf, testRows()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "pane_a", got[0]["id"])
	assert.Equal(t, "/src/index.html", got[0]["sourcePath"])
	state := got[0]["state"].(map[string]any)
	assert.Equal(t, "file:///src/index.html", state["location"])
	assert.NotContains(t, got[1], "state", "broken panes carry no state")
}

func TestOutputPanesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputPanesYAML(&buf, testRows()))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "pane_a", got[0]["id"])
	assert.Equal(t, "/src/index.html", got[0]["source_path"])
	assert.NotContains(t, got[1], "state")
}

func TestOutputPanesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputPanesTable(&buf, testRows()))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "pane_a")
	assert.Contains(t, out, "file:///src/index.html")
	assert.Contains(t, out, "(unreadable)")
}
