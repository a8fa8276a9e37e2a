// Package input provides keyboard bindings and command dispatch for pane UI scopes.
package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key values are X11 keysyms, the same numbers GDK exposes as gdk.KEY_*.
// They are spelled out here so bindings can be parsed and tested without a
// GTK runtime.
const (
	KeyTab        uint = 0xff09
	KeyISOLeftTab uint = 0xfe20 // what GDK reports for Shift+Tab
	KeyReturn     uint = 0xff0d
	KeyKPEnter    uint = 0xff8d
	KeyEscape     uint = 0xff1b
	KeyLeft       uint = 0xff51
	KeyRight      uint = 0xff53
	KeyF5         uint = 0xffc2
	KeyF12        uint = 0xffc9
)

// Modifier represents keyboard modifier flags, matching gdk.ModifierType bits.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << 0
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = 1 << 2
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = 1 << 3
)

// modifierMask filters out non-standard modifiers from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

var keyvalByName = map[string]uint{
	"tab":    KeyTab,
	"return": KeyReturn,
	"enter":  KeyReturn,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"left":   KeyLeft,
	"right":  KeyRight,
	"f5":     KeyF5,
	"f12":    KeyF12,
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Keyval    uint
	Modifiers Modifier
}

// ParseKeyString parses bindings like "ctrl+shift+i" or "alt+left".
func ParseKeyString(s string) (KeyBinding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KeyBinding{}, fmt.Errorf("empty key binding")
	}

	parts := strings.Split(s, "+")
	var binding KeyBinding
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl", "control":
			binding.Modifiers |= ModCtrl
		case "shift":
			binding.Modifiers |= ModShift
		case "alt":
			binding.Modifiers |= ModAlt
		default:
			return KeyBinding{}, fmt.Errorf("unknown modifier %q in %q", part, s)
		}
	}

	keyName := parts[len(parts)-1]
	if keyval, ok := keyvalByName[keyName]; ok {
		binding.Keyval = keyval
		return binding, nil
	}
	if utf8.RuneCountInString(keyName) == 1 {
		r, _ := utf8.DecodeRuneInString(keyName)
		if r < 0x80 {
			binding.Keyval = uint(r)
			return binding, nil
		}
	}
	return KeyBinding{}, fmt.Errorf("unknown key %q in %q", keyName, s)
}

// normalize folds the variants GDK can report for the same physical chord.
func normalize(keyval uint, state Modifier) KeyBinding {
	state &= modifierMask
	switch {
	case keyval == KeyISOLeftTab:
		return KeyBinding{Keyval: KeyTab, Modifiers: state | ModShift}
	case keyval == KeyKPEnter:
		return KeyBinding{Keyval: KeyReturn, Modifiers: state}
	case keyval >= 'A' && keyval <= 'Z':
		return KeyBinding{Keyval: keyval + ('a' - 'A'), Modifiers: state}
	}
	return KeyBinding{Keyval: keyval, Modifiers: state}
}

// Keymap maps key presses to command names.
type Keymap struct {
	bindings map[KeyBinding]string
}

// NewKeymap builds a keymap from binding strings to command names.
func NewKeymap(bindings map[string]string) (*Keymap, error) {
	km := &Keymap{bindings: make(map[KeyBinding]string, len(bindings))}
	for keys, command := range bindings {
		kb, err := ParseKeyString(keys)
		if err != nil {
			return nil, err
		}
		km.bindings[normalize(kb.Keyval, kb.Modifiers)] = command
	}
	return km, nil
}

// Lookup returns the command bound to a key press.
func (k *Keymap) Lookup(keyval uint, state Modifier) (string, bool) {
	if k == nil {
		return "", false
	}
	cmd, ok := k.bindings[normalize(keyval, state)]
	return cmd, ok
}
