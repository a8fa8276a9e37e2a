package input

import (
	"context"
	"sync"

	"github.com/bnema/webpane/internal/logging"
)

// ScopedKeymap binds a keymap to the nodes matching a scope.
type ScopedKeymap struct {
	Scope  Scope
	Keymap *Keymap
}

// KeyboardHandler turns key presses into command dispatches.
//
// For each press it walks from the current target up through ParentNode; the
// first node whose scope has a binding for the chord decides the command,
// which is then dispatched on the original target so handlers bubble normally.
type KeyboardHandler struct {
	registry *CommandRegistry
	keymaps  []ScopedKeymap

	// target returns the node key presses act on (the focused pane, its
	// toolbar, or the workspace).
	target func() Node
	// Optional bypass check
	shouldBypass func() bool

	ctx context.Context
	mu  sync.RWMutex
}

// NewKeyboardHandler creates a keyboard handler. Keymaps are consulted in
// order for every node on the path, so list narrower scopes first.
func NewKeyboardHandler(ctx context.Context, registry *CommandRegistry, keymaps ...ScopedKeymap) *KeyboardHandler {
	logging.FromContext(ctx).Debug().Int("keymaps", len(keymaps)).Msg("creating keyboard handler")
	return &KeyboardHandler{
		registry: registry,
		keymaps:  keymaps,
		ctx:      ctx,
	}
}

// SetTarget sets the function resolving the node key presses act on.
func (h *KeyboardHandler) SetTarget(fn func() Node) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.target = fn
}

// SetShouldBypassInput sets a hook to bypass keyboard handling entirely.
func (h *KeyboardHandler) SetShouldBypassInput(fn func() bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shouldBypass = fn
}

// HandleKeyPress processes a key press. It returns true when a command ran,
// in which case the event should not propagate to the focused widget.
func (h *KeyboardHandler) HandleKeyPress(keyval uint, state Modifier) bool {
	log := logging.FromContext(h.ctx)

	h.mu.RLock()
	targetFn, bypass := h.target, h.shouldBypass
	h.mu.RUnlock()

	if bypass != nil && bypass() {
		return false
	}
	if targetFn == nil {
		return false
	}
	target := targetFn()
	if target == nil {
		return false
	}

	command, ok := h.resolve(target, keyval, state)
	if !ok {
		return false
	}

	log.Debug().Uint("keyval", keyval).Uint("state", uint(state)).Str("command", command).Msg("key bound")
	return h.registry.Dispatch(h.ctx, target, command)
}

func (h *KeyboardHandler) resolve(target Node, keyval uint, state Modifier) (string, bool) {
	for node := target; node != nil; node = node.ParentNode() {
		for _, km := range h.keymaps {
			if !node.MatchesScope(km.Scope) {
				continue
			}
			if command, ok := km.Keymap.Lookup(keyval, state); ok {
				return command, true
			}
		}
	}
	return "", false
}
