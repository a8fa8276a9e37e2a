package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	scopes []Scope
	parent Node
}

func (n *testNode) MatchesScope(scope Scope) bool {
	for _, s := range n.scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (n *testNode) ParentNode() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func TestDispatch_BubblesToAncestorScope(t *testing.T) {
	reg := NewCommandRegistry()
	pane := &testNode{scopes: []Scope{ScopePane}}
	toolbar := &testNode{scopes: []Scope{ScopeToolbar}, parent: pane}

	var current Node
	reg.Add(ScopePane, map[string]Command{
		"webpane:refresh": {DidDispatch: func(_ context.Context, e *CommandEvent) { current = e.CurrentTarget }},
	})

	handled := reg.Dispatch(context.Background(), toolbar, "webpane:refresh")

	require.True(t, handled)
	assert.Same(t, pane, current)
}

func TestDispatch_StopPropagationKeepsAncestorsQuiet(t *testing.T) {
	reg := NewCommandRegistry()
	pane := &testNode{scopes: []Scope{ScopePane}}
	toolbar := &testNode{scopes: []Scope{ScopeToolbar}, parent: pane}

	var calls []Scope
	reg.Add(ScopeToolbar, map[string]Command{
		"core:confirm": {DidDispatch: func(_ context.Context, e *CommandEvent) {
			calls = append(calls, ScopeToolbar)
			e.StopPropagation()
		}},
	})
	reg.Add(ScopePane, map[string]Command{
		"core:confirm": {DidDispatch: func(context.Context, *CommandEvent) { calls = append(calls, ScopePane) }},
	})

	reg.Dispatch(context.Background(), toolbar, "core:confirm")

	assert.Equal(t, []Scope{ScopeToolbar}, calls)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	reg := NewCommandRegistry()
	node := &testNode{scopes: []Scope{ScopeWorkspace}}

	assert.False(t, reg.Dispatch(context.Background(), node, "webpane:nope"))
}

func TestAdd_DisposeRemovesOnlyItsCommands(t *testing.T) {
	reg := NewCommandRegistry()
	noop := Command{DidDispatch: func(context.Context, *CommandEvent) {}}

	dispose := reg.Add(ScopePane, map[string]Command{"webpane:stop": noop})
	reg.Add(ScopePane, map[string]Command{"webpane:back": noop})

	dispose()
	dispose()

	assert.Equal(t, []string{"webpane:back"}, reg.Commands(ScopePane))
}
