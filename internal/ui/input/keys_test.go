package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyString(t *testing.T) {
	tests := []struct {
		in      string
		want    KeyBinding
		wantErr bool
	}{
		{in: "tab", want: KeyBinding{Keyval: KeyTab}},
		{in: "shift+tab", want: KeyBinding{Keyval: KeyTab, Modifiers: ModShift}},
		{in: "ctrl+shift+i", want: KeyBinding{Keyval: 'i', Modifiers: ModCtrl | ModShift}},
		{in: "Alt+Left", want: KeyBinding{Keyval: KeyLeft, Modifiers: ModAlt}},
		{in: "f5", want: KeyBinding{Keyval: KeyF5}},
		{in: "", wantErr: true},
		{in: "hyper+a", wantErr: true},
		{in: "ctrl+nosuchkey", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKeyString(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeymap_Lookup(t *testing.T) {
	km, err := NewKeymap(map[string]string{
		"tab":          "core:focus-next",
		"shift+tab":    "core:focus-previous",
		"enter":        "core:confirm",
		"ctrl+shift+i": "webpane:toggle-devtools",
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		keyval uint
		state  Modifier
		want   string
	}{
		{"tab", KeyTab, ModNone, "core:focus-next"},
		{"iso left tab reported for shift+tab", KeyISOLeftTab, ModShift, "core:focus-previous"},
		{"iso left tab without shift bit", KeyISOLeftTab, ModNone, "core:focus-previous"},
		{"keypad enter", KeyKPEnter, ModNone, "core:confirm"},
		{"uppercase letter with shift", 'I', ModCtrl | ModShift, "webpane:toggle-devtools"},
		{"extra lock bits ignored", KeyTab, Modifier(1 << 1), "core:focus-next"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.keyval, tt.state)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := km.Lookup('x', ModNone)
	assert.False(t, ok)
}
