package entity

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaneState_TakesDefaultsSnapshot(t *testing.T) {
	defaults := PaneDefaults{
		Homepage:       "https://example.com",
		AutoReload:     true,
		HideToolbar:    true,
		ShowDevTools:   false,
		AutoReloadWait: 500,
	}

	state := NewPaneState("file:///tmp/index.html", defaults)

	assert.Equal(t, DefaultPaneTitle, state.Title)
	assert.Equal(t, "file:///tmp/index.html", state.Location)
	assert.True(t, state.AutoReload)
	assert.True(t, state.HideToolbar)
	assert.False(t, state.ShowDevTools)
	assert.Equal(t, 500, state.AutoReloadWait)

	defaults.HideToolbar = false
	assert.True(t, state.HideToolbar, "changing defaults afterwards must not affect the state")
}

func TestPaneState_Apply(t *testing.T) {
	state := NewPaneState("about:blank", DefaultPaneDefaults())

	prev := state.Apply(PaneStateUpdate{
		Location:     Ptr("https://example.com"),
		ShowDevTools: Ptr(true),
	})

	assert.Equal(t, "about:blank", prev.Location)
	assert.False(t, prev.ShowDevTools)
	assert.Equal(t, "https://example.com", state.Location)
	assert.True(t, state.ShowDevTools)
	assert.Equal(t, DefaultPaneTitle, state.Title)

	state.Apply(PaneStateUpdate{AutoReloadWait: Ptr(5000)})
	assert.Equal(t, AutoReloadWaitMax, state.AutoReloadWait)
}

func TestPaneStateUpdate_IsEmpty(t *testing.T) {
	assert.True(t, PaneStateUpdate{}.IsEmpty())
	assert.False(t, PaneStateUpdate{HideToolbar: Ptr(false)}.IsEmpty())
}

func TestPaneState_AutoReloadDelay(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, PaneState{AutoReloadWait: 250}.AutoReloadDelay())
	assert.Equal(t, time.Duration(0), PaneState{AutoReloadWait: -10}.AutoReloadDelay())
}

func TestPaneState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   PaneState
		wantErr bool
	}{
		{"valid", PaneState{Location: "about:blank", AutoReloadWait: 2000}, false},
		{"empty location", PaneState{Location: "  "}, true},
		{"wait too large", PaneState{Location: "about:blank", AutoReloadWait: 2001}, true},
		{"negative wait", PaneState{Location: "about:blank", AutoReloadWait: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPaneState))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaneState_JSONKeys(t *testing.T) {
	state := PaneState{
		Title:          "Docs",
		Location:       "https://example.com",
		AutoReload:     true,
		HideToolbar:    false,
		ShowDevTools:   true,
		AutoReloadWait: 100,
	}

	data, err := state.Marshal()
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t,
		[]string{"title", "location", "autoReload", "hideToolbar", "showDevTools", "autoReloadWait"},
		keys(fields))
}

func TestUnmarshalPaneState_FillsMissingFieldsFromDefaults(t *testing.T) {
	defaults := PaneDefaults{Homepage: "https://home.test", HideToolbar: true, AutoReloadWait: 300}

	state, err := UnmarshalPaneState([]byte(`{"location":"https://example.com","showDevTools":true}`), defaults)
	require.NoError(t, err)

	assert.Equal(t, PaneState{
		Title:          DefaultPaneTitle,
		Location:       "https://example.com",
		HideToolbar:    true,
		ShowDevTools:   true,
		AutoReloadWait: 300,
	}, state)

	state, err = UnmarshalPaneState([]byte(`{}`), defaults)
	require.NoError(t, err)
	assert.Equal(t, "https://home.test", state.Location)
}

func TestUnmarshalPaneState_RejectsGarbage(t *testing.T) {
	_, err := UnmarshalPaneState([]byte(`not json`), DefaultPaneDefaults())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPaneState)
}

func TestClampAutoReloadWait(t *testing.T) {
	assert.Equal(t, 0, ClampAutoReloadWait(-5))
	assert.Equal(t, 1234, ClampAutoReloadWait(1234))
	assert.Equal(t, 2000, ClampAutoReloadWait(99999))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSavedPane_RoundTrip(t *testing.T) {
	state := NewPaneState("file:///srv/site/index.html", PaneDefaults{AutoReload: true, AutoReloadWait: 150})
	state.Title = "Site"

	saved, err := NewSavedPane("p1", "/srv/site/index.html", 2, state)
	require.NoError(t, err)
	assert.Equal(t, PaneID("p1"), saved.ID)
	assert.Equal(t, 2, saved.Position)
	assert.False(t, saved.SavedAt.IsZero())

	got, err := saved.Decode(DefaultPaneDefaults())
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestNewPaneID(t *testing.T) {
	a := NewPaneID()
	b := NewPaneID()

	assert.True(t, strings.HasPrefix(string(a), "pane_"))
	assert.Len(t, string(a), len("pane_20060102_150405_abcdef"))
	assert.NotEqual(t, a, b)
}
