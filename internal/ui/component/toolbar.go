package component

import (
	"github.com/bnema/webpane/internal/ui/focus"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
)

// Toolbar icon names.
const (
	iconBack       = "go-previous-symbolic"
	iconForward    = "go-next-symbolic"
	iconStop       = "process-stop-symbolic"
	iconRefresh    = "view-refresh-symbolic"
	iconDevTools   = "utilities-terminal-symbolic"
	iconAutoReload = "media-playlist-repeat-symbolic"
)

// SelectedClass marks toggle buttons that are on.
const SelectedClass = "selected"

// ToolbarCallbacks are invoked by toolbar controls.
type ToolbarCallbacks struct {
	OnBack             func()
	OnForward          func()
	OnStop             func()
	OnRefresh          func()
	OnGo               func()
	OnToggleDevTools   func()
	OnToggleAutoReload func()
}

// ToolbarState is everything the toolbar renders.
type ToolbarState struct {
	Location     string
	Loading      bool
	CanGoBack    bool
	CanGoForward bool
	DevToolsOpen bool
	AutoReload   bool
	Hidden       bool
}

// Toolbar is the row of navigation controls above a web pane.
// It is the container the focus ring cycles through.
type Toolbar struct {
	box    layout.BoxWidget
	parent input.Node

	back        *toolbarButton
	stopRefresh *toolbarButton
	forward     *toolbarButton
	address     *addressControl
	devTools    *toolbarButton
	autoReload  *toolbarButton

	loading      bool
	lastLocation string
	rendered     bool
}

var (
	_ focus.Container = (*Toolbar)(nil)
	_ input.Node      = (*Toolbar)(nil)
)

// NewToolbar builds the toolbar widgets. parent is the pane the toolbar belongs to.
func NewToolbar(factory layout.WidgetFactory, parent input.Node, cb ToolbarCallbacks) *Toolbar {
	t := &Toolbar{
		box:    factory.NewBox(layout.OrientationHorizontal, 4),
		parent: parent,
	}
	t.box.AddCssClass("webpane-toolbar")
	t.box.SetHexpand(true)

	t.back = newToolbarButton(factory, iconBack, "Back", cb.OnBack)
	t.stopRefresh = newToolbarButton(factory, iconRefresh, "Refresh", func() {
		if t.loading {
			call(cb.OnStop)
			return
		}
		call(cb.OnRefresh)
	})
	t.forward = newToolbarButton(factory, iconForward, "Forward", cb.OnForward)

	entry := factory.NewEntry()
	entry.SetHexpand(true)
	entry.SetPlaceholderText("Enter a URL or path")
	entry.AddCssClass("webpane-address")
	t.address = &addressControl{entry: entry, form: &addressForm{submit: cb.OnGo}}
	entry.ConnectActivate(func() { call(cb.OnGo) })

	t.devTools = newToolbarButton(factory, iconDevTools, "Dev Tools", cb.OnToggleDevTools)
	t.autoReload = newToolbarButton(factory, iconAutoReload, "Auto Reload", cb.OnToggleAutoReload)

	t.box.Append(t.back.button)
	t.box.Append(t.stopRefresh.button)
	t.box.Append(t.forward.button)
	t.box.Append(entry)
	t.box.Append(t.devTools.button)
	t.box.Append(t.autoReload.button)

	return t
}

// Widget returns the toolbar's root widget.
func (t *Toolbar) Widget() layout.Widget {
	return t.box
}

// FocusableControls returns the controls in tab order.
func (t *Toolbar) FocusableControls() []focus.Control {
	return []focus.Control{t.back, t.stopRefresh, t.forward, t.address, t.devTools, t.autoReload}
}

// MatchesScope reports whether toolbar commands apply here.
func (t *Toolbar) MatchesScope(scope input.Scope) bool {
	return scope == input.ScopeToolbar
}

// ParentNode returns the owning pane.
func (t *Toolbar) ParentNode() input.Node {
	return t.parent
}

// ContainsFocus reports whether any toolbar control holds keyboard focus.
func (t *Toolbar) ContainsFocus() bool {
	for _, c := range t.FocusableControls() {
		if c.HasFocus() {
			return true
		}
	}
	return false
}

// Update renders state. The address text is only replaced when the location
// changed, so text being typed survives unrelated re-renders.
func (t *Toolbar) Update(state ToolbarState) {
	t.loading = state.Loading

	t.back.button.SetSensitive(state.CanGoBack)
	t.forward.button.SetSensitive(state.CanGoForward)

	if state.Loading {
		t.stopRefresh.button.SetIconName(iconStop)
		t.stopRefresh.button.SetTooltipText("Stop")
	} else {
		t.stopRefresh.button.SetIconName(iconRefresh)
		t.stopRefresh.button.SetTooltipText("Refresh")
	}

	if !t.rendered || state.Location != t.lastLocation {
		t.address.entry.SetText(state.Location)
		t.lastLocation = state.Location
	}

	layout.SetClass(t.devTools.button, SelectedClass, state.DevToolsOpen)
	layout.SetClass(t.autoReload.button, SelectedClass, state.AutoReload)

	t.box.SetVisible(!state.Hidden)
	t.rendered = true
}

// AddressText returns the text currently typed in the address entry.
func (t *Toolbar) AddressText() string {
	return t.address.entry.Text()
}

// SelectAddress focuses the address entry and selects its text.
func (t *Toolbar) SelectAddress() {
	t.address.entry.GrabFocus()
	t.address.entry.SelectAll()
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

type toolbarButton struct {
	button layout.ButtonWidget
	click  func()
}

func newToolbarButton(factory layout.WidgetFactory, icon, tooltip string, click func()) *toolbarButton {
	b := &toolbarButton{button: factory.NewButton(icon), click: click}
	b.button.SetTooltipText(tooltip)
	b.button.ConnectClicked(func() { call(b.click) })
	return b
}

func (b *toolbarButton) IsSensitive() bool    { return b.button.IsSensitive() }
func (b *toolbarButton) HasFocus() bool       { return b.button.HasFocus() }
func (b *toolbarButton) GrabFocus() bool      { return b.button.GrabFocus() }
func (b *toolbarButton) ClickHandler() func() { return b.click }
func (b *toolbarButton) Form() focus.Form     { return nil }

type addressForm struct {
	submit func()
}

func (f *addressForm) SubmitHandler() func() { return f.submit }

// addressControl has no click handler; confirming it submits its form.
type addressControl struct {
	entry layout.EntryWidget
	form  *addressForm
}

func (a *addressControl) IsSensitive() bool    { return a.entry.IsSensitive() }
func (a *addressControl) HasFocus() bool       { return a.entry.HasFocus() }
func (a *addressControl) GrabFocus() bool      { return a.entry.GrabFocus() }
func (a *addressControl) ClickHandler() func() { return nil }
func (a *addressControl) Form() focus.Form {
	if a.form == nil || a.form.submit == nil {
		return nil
	}
	return a.form
}
