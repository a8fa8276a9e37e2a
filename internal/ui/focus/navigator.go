package focus

import (
	"context"

	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/input"
)

// Command names handled by the focus ring.
const (
	CommandFocusNext     = "core:focus-next"
	CommandFocusPrevious = "core:focus-previous"
	CommandConfirm       = "core:confirm"
)

// Form is the submit target a control belongs to.
type Form interface {
	// SubmitHandler returns nil when the form has no submit handler.
	SubmitHandler() func()
}

// Control is a focusable UI element inside a container.
type Control interface {
	IsSensitive() bool
	HasFocus() bool
	GrabFocus() bool
	// ClickHandler returns nil when the control has no direct activation callback.
	ClickHandler() func()
	// Form returns nil when the control is not part of a form.
	Form() Form
}

// Container exposes its controls in visual (tab) order.
type Container interface {
	FocusableControls() []Control
}

// FocusableInputs returns the enabled controls of container and the index of
// the focused one, or -1 when none holds focus. It reads live widget state.
func FocusableInputs(container Container) (inputs []Control, activeIndex int) {
	activeIndex = -1
	for _, c := range container.FocusableControls() {
		if c == nil || !c.IsSensitive() {
			continue
		}
		if activeIndex == -1 && c.HasFocus() {
			activeIndex = len(inputs)
		}
		inputs = append(inputs, c)
	}
	return inputs, activeIndex
}

// FocusNext moves focus to the control after the focused one, wrapping around.
// With nothing focused, the first control receives focus.
func FocusNext(ctx context.Context, container Container) {
	move(ctx, container, 1)
}

// FocusPrevious moves focus to the control before the focused one, wrapping around.
// With nothing focused, the first control receives focus.
func FocusPrevious(ctx context.Context, container Container) {
	move(ctx, container, -1)
}

func move(ctx context.Context, container Container, step int) {
	inputs, active := FocusableInputs(container)
	if len(inputs) == 0 {
		panic("focus: ring command dispatched on a container without enabled controls")
	}

	next := inputs[0]
	if active != -1 {
		next = Nth(inputs, active+step)
	}

	logging.FromContext(ctx).Debug().
		Int("from", active).
		Int("step", step).
		Int("ring_len", len(inputs)).
		Msg("moving toolbar focus")

	next.GrabFocus()
}

// Confirm activates the focused control: its click handler if it has one,
// otherwise its form's submit handler. It reports whether anything fired.
func Confirm(ctx context.Context, container Container) bool {
	inputs, active := FocusableInputs(container)
	if active == -1 {
		return false
	}

	current := inputs[active]
	if click := current.ClickHandler(); click != nil {
		click()
		return true
	}
	if form := current.Form(); form != nil {
		if submit := form.SubmitHandler(); submit != nil {
			submit()
			return true
		}
	}

	logging.FromContext(ctx).Debug().Int("index", active).Msg("focused control has nothing to activate")
	return false
}

// Commands returns the focus ring command handlers. Each handler stops the
// event from propagating and acts on the container that matched the scope.
func Commands() map[string]input.Command {
	wrap := func(fn func(context.Context, Container)) func(context.Context, *input.CommandEvent) {
		return func(ctx context.Context, event *input.CommandEvent) {
			event.StopPropagation()
			container, ok := event.CurrentTarget.(Container)
			if !ok {
				logging.FromContext(ctx).Warn().Str("command", event.Name).Msg("focus command target is not a control container")
				return
			}
			fn(ctx, container)
		}
	}

	return map[string]input.Command{
		CommandFocusNext: {
			DisplayName: "Focus Next",
			DidDispatch: wrap(FocusNext),
		},
		CommandFocusPrevious: {
			DisplayName: "Focus Previous",
			DidDispatch: wrap(FocusPrevious),
		},
		CommandConfirm: {
			DisplayName: "Confirm",
			DidDispatch: wrap(func(ctx context.Context, c Container) { Confirm(ctx, c) }),
		},
	}
}

// DefaultKeyBindings binds the focus ring commands to Tab, Shift+Tab and Enter.
func DefaultKeyBindings() map[string]string {
	return map[string]string{
		"tab":       CommandFocusNext,
		"shift+tab": CommandFocusPrevious,
		"enter":     CommandConfirm,
	}
}
