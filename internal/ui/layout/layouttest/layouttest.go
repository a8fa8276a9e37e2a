// Package layouttest provides in-memory layout widgets for tests.
package layouttest

import "github.com/bnema/webpane/internal/ui/layout"

var (
	_ layout.Widget        = (*Widget)(nil)
	_ layout.BoxWidget     = (*Box)(nil)
	_ layout.ButtonWidget  = (*Button)(nil)
	_ layout.EntryWidget   = (*Entry)(nil)
	_ layout.WidgetFactory = (*Factory)(nil)
)

// FocusTracker plays the role of the window's single focus owner.
type FocusTracker struct {
	Current *Widget
}

// Widget records the state set on it.
type Widget struct {
	tracker   *FocusTracker
	visible   bool
	sensitive bool
	classes   map[string]bool
	Tooltip   string
}

// NewWidget returns a visible, sensitive widget sharing tracker's focus.
func NewWidget(tracker *FocusTracker) Widget {
	if tracker == nil {
		tracker = &FocusTracker{}
	}
	return Widget{tracker: tracker, visible: true, sensitive: true, classes: map[string]bool{}}
}

func (w *Widget) SetVisible(visible bool)     { w.visible = visible }
func (w *Widget) IsVisible() bool             { return w.visible }
func (w *Widget) SetCanFocus(bool)            {}
func (w *Widget) SetSensitive(sensitive bool) { w.sensitive = sensitive }
func (w *Widget) IsSensitive() bool           { return w.sensitive }
func (w *Widget) SetHexpand(bool)             {}
func (w *Widget) SetVexpand(bool)             {}
func (w *Widget) AddCssClass(c string)        { w.classes[c] = true }
func (w *Widget) RemoveCssClass(c string)     { delete(w.classes, c) }
func (w *Widget) HasCssClass(c string) bool   { return w.classes[c] }
func (w *Widget) SetTooltipText(text string)  { w.Tooltip = text }
func (w *Widget) HasFocus() bool              { return w.tracker.Current == w }

// GrabFocus moves focus here unless the widget is insensitive.
func (w *Widget) GrabFocus() bool {
	if !w.sensitive {
		return false
	}
	w.tracker.Current = w
	return true
}

// Box records appended children.
type Box struct {
	Widget
	Children []layout.Widget
}

func (b *Box) Append(child layout.Widget) { b.Children = append(b.Children, child) }
func (b *Box) SetSpacing(int)             {}

func (b *Box) Remove(child layout.Widget) {
	for i, c := range b.Children {
		if c == child {
			b.Children = append(b.Children[:i], b.Children[i+1:]...)
			return
		}
	}
}

// Button records its icon, label and click handlers.
type Button struct {
	Widget
	Icon    string
	Label   string
	clicked []func()
}

func (b *Button) SetIconName(name string)   { b.Icon = name }
func (b *Button) SetLabel(label string)    { b.Label = label }
func (b *Button) ConnectClicked(cb func()) { b.clicked = append(b.clicked, cb) }

// Click runs the connected click handlers.
func (b *Button) Click() {
	for _, cb := range b.clicked {
		cb()
	}
}

// Entry holds text and selection state.
type Entry struct {
	Widget
	text        string
	Placeholder string
	Selected    bool
	activate    []func()
}

func (e *Entry) SetText(text string) {
	e.text = text
	e.Selected = false
}
func (e *Entry) Text() string                   { return e.text }
func (e *Entry) SetPlaceholderText(text string) { e.Placeholder = text }
func (e *Entry) SelectAll()                     { e.Selected = true }
func (e *Entry) ConnectActivate(cb func())      { e.activate = append(e.activate, cb) }

// Type simulates the user replacing the entry text.
func (e *Entry) Type(text string) {
	e.text = text
	e.Selected = false
}

// Activate simulates Enter pressed inside the entry.
func (e *Entry) Activate() {
	for _, cb := range e.activate {
		cb()
	}
}

// Factory creates in-memory widgets and keeps them in creation order.
type Factory struct {
	Tracker *FocusTracker
	Boxes   []*Box
	Buttons []*Button
	Entries []*Entry
}

// NewFactory returns a factory whose widgets share one focus owner.
func NewFactory() *Factory {
	return &Factory{Tracker: &FocusTracker{}}
}

func (f *Factory) NewBox(layout.Orientation, int) layout.BoxWidget {
	b := &Box{Widget: NewWidget(f.Tracker)}
	f.Boxes = append(f.Boxes, b)
	return b
}

func (f *Factory) NewButton(icon string) layout.ButtonWidget {
	b := &Button{Widget: NewWidget(f.Tracker), Icon: icon}
	f.Buttons = append(f.Buttons, b)
	return b
}

func (f *Factory) NewEntry() layout.EntryWidget {
	e := &Entry{Widget: NewWidget(f.Tracker)}
	f.Entries = append(f.Entries, e)
	return e
}

// NewView returns a widget standing in for a web view.
func (f *Factory) NewView() *Widget {
	w := NewWidget(f.Tracker)
	return &w
}
