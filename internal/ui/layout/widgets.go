// Package layout provides GTK widget abstractions for the web pane UI.
// It defines interfaces that wrap GTK types, enabling unit testing without GTK runtime.
package layout

// Orientation represents the orientation for layout widgets.
type Orientation int

// Orientation constants matching GTK values.
const (
	OrientationHorizontal Orientation = 0
	OrientationVertical   Orientation = 1
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool

	// Focus
	GrabFocus() bool
	HasFocus() bool
	SetCanFocus(canFocus bool)

	// Sensitivity (disabled widgets are skipped by the focus ring)
	SetSensitive(sensitive bool)
	IsSensitive() bool

	// Layout
	SetHexpand(expand bool)
	SetVexpand(expand bool)

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)
	HasCssClass(cssClass string) bool

	SetTooltipText(text string)
}

// BoxWidget wraps gtk.Box for linear layouts.
type BoxWidget interface {
	Widget

	Append(child Widget)
	Remove(child Widget)
	SetSpacing(spacing int)
}

// ButtonWidget wraps gtk.Button for clickable elements.
type ButtonWidget interface {
	Widget

	SetIconName(iconName string)
	// SetLabel replaces the button content with a text label.
	SetLabel(label string)
	// ConnectClicked connects a click handler.
	ConnectClicked(callback func())
}

// EntryWidget wraps gtk.Entry for the address field.
type EntryWidget interface {
	Widget

	SetText(text string)
	Text() string
	SetPlaceholderText(text string)
	// SelectAll selects the whole text so the next keystroke replaces it.
	SelectAll()
	// ConnectActivate connects a handler for Enter pressed inside the entry.
	ConnectActivate(callback func())
}

// WidgetFactory creates widget instances.
// This abstraction allows tests to inject mock factories.
type WidgetFactory interface {
	NewBox(orientation Orientation, spacing int) BoxWidget
	NewButton(iconName string) ButtonWidget
	NewEntry() EntryWidget
}

// SetClass adds or removes cssClass so that its presence matches on.
func SetClass(w Widget, cssClass string, on bool) {
	if w == nil {
		return
	}
	if on {
		if !w.HasCssClass(cssClass) {
			w.AddCssClass(cssClass)
		}
		return
	}
	if w.HasCssClass(cssClass) {
		w.RemoveCssClass(cssClass)
	}
}
