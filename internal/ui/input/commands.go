package input

import (
	"context"
	"sync"

	"github.com/bnema/webpane/internal/logging"
)

// Scope selects the nodes a command handler is attached to, e.g. "toolbar".
type Scope string

// Scopes used by the pane UI.
const (
	ScopeWorkspace Scope = "workspace"
	ScopeEditor    Scope = "editor"
	ScopeTreeFile  Scope = "tree-view-file"
	ScopeTreeDir   Scope = "tree-view-directory"
	ScopePane      Scope = "webpane"
	ScopeToolbar   Scope = "webpane-toolbar"
)

// Node is an element that can be the target of a command dispatch.
// Dispatch walks from the target through ParentNode until a handler
// stops propagation or the root is reached.
type Node interface {
	MatchesScope(scope Scope) bool
	ParentNode() Node
}

// CommandEvent is handed to command handlers.
type CommandEvent struct {
	Name string
	// Target is the node the command was dispatched on.
	Target Node
	// CurrentTarget is the node whose scope matched the running handler.
	CurrentTarget Node

	stopped bool
}

// StopPropagation prevents handlers on ancestor nodes from running.
func (e *CommandEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether a handler stopped the event.
func (e *CommandEvent) PropagationStopped() bool {
	return e.stopped
}

// Command binds a display name to a dispatch handler.
type Command struct {
	DisplayName string
	DidDispatch func(ctx context.Context, event *CommandEvent)
}

type registration struct {
	id      uint64
	scope   Scope
	name    string
	command Command
}

// CommandRegistry associates command names with handlers per scope.
type CommandRegistry struct {
	mu     sync.RWMutex
	nextID uint64
	regs   []registration
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{}
}

// Add registers commands for a scope. The returned function removes them.
func (r *CommandRegistry) Add(scope Scope, commands map[string]Command) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[uint64]struct{}, len(commands))
	for name, cmd := range commands {
		r.nextID++
		ids[r.nextID] = struct{}{}
		r.regs = append(r.regs, registration{id: r.nextID, scope: scope, name: name, command: cmd})
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			kept := r.regs[:0]
			for _, reg := range r.regs {
				if _, drop := ids[reg.id]; !drop {
					kept = append(kept, reg)
				}
			}
			r.regs = kept
		})
	}
}

// Commands returns the names registered for a scope.
func (r *CommandRegistry) Commands(scope Scope) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for _, reg := range r.regs {
		if reg.scope == scope {
			names = append(names, reg.name)
		}
	}
	return names
}

// Dispatch runs the handlers for name, starting at target and bubbling up.
// It returns true if at least one handler ran.
func (r *CommandRegistry) Dispatch(ctx context.Context, target Node, name string) bool {
	log := logging.FromContext(ctx)

	event := &CommandEvent{Name: name, Target: target}
	handled := false

	for node := target; node != nil; node = node.ParentNode() {
		for _, cmd := range r.handlersFor(node, name) {
			event.CurrentTarget = node
			cmd.DidDispatch(ctx, event)
			handled = true
		}
		if event.stopped {
			break
		}
	}

	log.Debug().
		Str("command", name).
		Bool("handled", handled).
		Bool("stopped", event.stopped).
		Msg("command dispatched")

	return handled
}

func (r *CommandRegistry) handlersFor(node Node, name string) []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Command
	for _, reg := range r.regs {
		if reg.name == name && reg.command.DidDispatch != nil && node.MatchesScope(reg.scope) {
			out = append(out, reg.command)
		}
	}
	return out
}
