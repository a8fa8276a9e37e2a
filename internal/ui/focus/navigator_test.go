package focus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/ui/input"
)

type fakeForm struct {
	submits int
	noSubmit bool
}

func (f *fakeForm) SubmitHandler() func() {
	if f.noSubmit {
		return nil
	}
	return func() { f.submits++ }
}

type fakeControl struct {
	name     string
	disabled bool
	clicks   int
	noClick  bool
	form     *fakeForm
	ring     *fakeToolbar
}

func (c *fakeControl) IsSensitive() bool { return !c.disabled }
func (c *fakeControl) HasFocus() bool    { return c.ring.focused == c }
func (c *fakeControl) GrabFocus() bool {
	c.ring.focused = c
	return true
}

func (c *fakeControl) ClickHandler() func() {
	if c.noClick {
		return nil
	}
	return func() { c.clicks++ }
}

func (c *fakeControl) Form() Form {
	if c.form == nil {
		return nil
	}
	return c.form
}

type fakeToolbar struct {
	controls []*fakeControl
	focused  *fakeControl
	parent   input.Node
}

func (t *fakeToolbar) FocusableControls() []Control {
	out := make([]Control, 0, len(t.controls))
	for _, c := range t.controls {
		out = append(out, c)
	}
	return out
}

func (t *fakeToolbar) MatchesScope(scope input.Scope) bool { return scope == input.ScopeToolbar }
func (t *fakeToolbar) ParentNode() input.Node             { return t.parent }

// newToolbar mirrors the pane toolbar: back, stop/refresh, forward, address, dev tools, auto reload.
func newToolbar() *fakeToolbar {
	tb := &fakeToolbar{}
	address := &fakeForm{}
	for _, name := range []string{"back", "refresh", "forward", "address", "devtools", "autoreload"} {
		c := &fakeControl{name: name, ring: tb}
		if name == "address" {
			c.noClick = true
			c.form = address
		}
		tb.controls = append(tb.controls, c)
	}
	return tb
}

func (t *fakeToolbar) byName(name string) *fakeControl {
	for _, c := range t.controls {
		if c.name == name {
			return c
		}
	}
	return nil
}

func TestFocusableInputs_ExcludesDisabledAndReportsActive(t *testing.T) {
	tb := newToolbar()
	tb.byName("back").disabled = true
	tb.byName("forward").disabled = true
	tb.focused = tb.byName("address")

	inputs, active := FocusableInputs(tb)

	require.Len(t, inputs, 4)
	assert.Equal(t, 1, active)
}

func TestFocusableInputs_NoFocusIsMinusOne(t *testing.T) {
	_, active := FocusableInputs(newToolbar())
	assert.Equal(t, -1, active)
}

func TestFocusNextAndPrevious_FromNoFocusLandOnFirst(t *testing.T) {
	ctx := context.Background()

	tb := newToolbar()
	FocusNext(ctx, tb)
	assert.Equal(t, "back", tb.focused.name)

	tb = newToolbar()
	FocusPrevious(ctx, tb)
	assert.Equal(t, "back", tb.focused.name)
}

func TestFocusNext_WrapsAndSkipsDisabled(t *testing.T) {
	ctx := context.Background()
	tb := newToolbar()
	tb.byName("back").disabled = true
	tb.focused = tb.byName("autoreload")

	FocusNext(ctx, tb)
	assert.Equal(t, "refresh", tb.focused.name)

	FocusNext(ctx, tb)
	assert.Equal(t, "forward", tb.focused.name)
}

func TestFocusPrevious_Wraps(t *testing.T) {
	ctx := context.Background()
	tb := newToolbar()
	tb.focused = tb.byName("back")

	FocusPrevious(ctx, tb)
	assert.Equal(t, "autoreload", tb.focused.name)
}

func TestFocusNext_FullCycleReturnsToStart(t *testing.T) {
	ctx := context.Background()
	tb := newToolbar()
	tb.byName("forward").disabled = true
	start := tb.byName("address")
	tb.focused = start

	inputs, _ := FocusableInputs(tb)
	for range inputs {
		FocusNext(ctx, tb)
	}
	assert.Same(t, start, tb.focused)
}

func TestFocusNext_RingFollowsEnabledState(t *testing.T) {
	ctx := context.Background()
	tb := newToolbar()
	tb.focused = tb.byName("back")

	FocusNext(ctx, tb)
	assert.Equal(t, "refresh", tb.focused.name)

	// forward becomes disabled between commands
	tb.byName("forward").disabled = true
	FocusNext(ctx, tb)
	assert.Equal(t, "address", tb.focused.name)
}

func TestFocusNext_PanicsWithoutEnabledControls(t *testing.T) {
	tb := newToolbar()
	for _, c := range tb.controls {
		c.disabled = true
	}
	assert.Panics(t, func() { FocusNext(context.Background(), tb) })
}

func TestConfirm_NoFocusDoesNothing(t *testing.T) {
	tb := newToolbar()

	fired := Confirm(context.Background(), tb)

	assert.False(t, fired)
	for _, c := range tb.controls {
		assert.Zero(t, c.clicks)
	}
	assert.Zero(t, tb.byName("address").form.submits)
}

func TestConfirm_ButtonInvokesOnlyItsClickHandler(t *testing.T) {
	tb := newToolbar()
	devtools := tb.byName("devtools")
	devtools.form = &fakeForm{}
	tb.focused = devtools

	fired := Confirm(context.Background(), tb)

	assert.True(t, fired)
	assert.Equal(t, 1, devtools.clicks)
	assert.Zero(t, devtools.form.submits)
}

func TestConfirm_InputSubmitsItsForm(t *testing.T) {
	tb := newToolbar()
	address := tb.byName("address")
	tb.focused = address

	fired := Confirm(context.Background(), tb)

	assert.True(t, fired)
	assert.Equal(t, 1, address.form.submits)
}

func TestConfirm_FormWithoutSubmitHandler(t *testing.T) {
	tb := newToolbar()
	address := tb.byName("address")
	address.form.noSubmit = true
	tb.focused = address

	assert.False(t, Confirm(context.Background(), tb))
}

func TestCommands_StopPropagationAndActOnToolbar(t *testing.T) {
	ctx := context.Background()
	reg := input.NewCommandRegistry()
	reg.Add(input.ScopeToolbar, Commands())

	parentCalls := 0
	parent := &fakeToolbarParent{}
	reg.Add(input.ScopePane, map[string]input.Command{
		CommandFocusNext: {DidDispatch: func(context.Context, *input.CommandEvent) { parentCalls++ }},
	})

	tb := newToolbar()
	tb.parent = parent

	require.True(t, reg.Dispatch(ctx, tb, CommandFocusNext))
	assert.Equal(t, "back", tb.focused.name)
	assert.Zero(t, parentCalls)

	reg.Dispatch(ctx, tb, CommandFocusPrevious)
	assert.Equal(t, "autoreload", tb.focused.name)

	reg.Dispatch(ctx, tb, CommandConfirm)
	assert.Equal(t, 1, tb.byName("autoreload").clicks)
}

type fakeToolbarParent struct{}

func (*fakeToolbarParent) MatchesScope(scope input.Scope) bool { return scope == input.ScopePane }
func (*fakeToolbarParent) ParentNode() input.Node             { return nil }
