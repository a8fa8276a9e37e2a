// Package gtkwidget implements the layout widget interfaces with gotk4.
package gtkwidget

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/webpane/internal/ui/layout"
)

// Ensure implementations satisfy interfaces at compile time.
var (
	_ layout.Widget        = (*gtkWidget)(nil)
	_ layout.BoxWidget     = (*gtkBox)(nil)
	_ layout.ButtonWidget  = (*gtkButton)(nil)
	_ layout.EntryWidget   = (*gtkEntry)(nil)
	_ layout.WidgetFactory = (*Factory)(nil)
)

// wrapped is implemented by every wrapper in this package.
type wrapped interface {
	native() *gtk.Widget
}

// gtkWidget wraps a gtk.Widget to implement layout.Widget.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)       { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool               { return w.inner.Visible() }
func (w *gtkWidget) GrabFocus() bool               { return w.inner.GrabFocus() }
func (w *gtkWidget) HasFocus() bool                { return w.inner.HasFocus() }
func (w *gtkWidget) SetCanFocus(canFocus bool)     { w.inner.SetCanFocus(canFocus) }
func (w *gtkWidget) SetSensitive(sensitive bool)   { w.inner.SetSensitive(sensitive) }
func (w *gtkWidget) IsSensitive() bool             { return w.inner.IsSensitive() }
func (w *gtkWidget) SetHexpand(expand bool)        { w.inner.SetHExpand(expand) }
func (w *gtkWidget) SetVexpand(expand bool)        { w.inner.SetVExpand(expand) }
func (w *gtkWidget) AddCssClass(class string)      { w.inner.AddCSSClass(class) }
func (w *gtkWidget) RemoveCssClass(class string)   { w.inner.RemoveCSSClass(class) }
func (w *gtkWidget) HasCssClass(class string) bool { return w.inner.HasCSSClass(class) }
func (w *gtkWidget) SetTooltipText(text string)    { w.inner.SetTooltipText(text) }
func (w *gtkWidget) native() *gtk.Widget           { return w.inner }

// gtkBox wraps gtk.Box to implement layout.BoxWidget.
type gtkBox struct {
	gtkWidget
	box *gtk.Box
}

func (b *gtkBox) Append(child layout.Widget) {
	if w := Unwrap(child); w != nil {
		b.box.Append(w)
	}
}

func (b *gtkBox) Remove(child layout.Widget) {
	if w := Unwrap(child); w != nil {
		b.box.Remove(w)
	}
}

func (b *gtkBox) SetSpacing(spacing int) { b.box.SetSpacing(spacing) }

// gtkButton wraps gtk.Button to implement layout.ButtonWidget.
type gtkButton struct {
	gtkWidget
	button *gtk.Button
}

func (b *gtkButton) SetIconName(iconName string) { b.button.SetIconName(iconName) }
func (b *gtkButton) SetLabel(label string)       { b.button.SetLabel(label) }

func (b *gtkButton) ConnectClicked(callback func()) {
	b.button.ConnectClicked(callback)
}

// gtkEntry wraps gtk.Entry to implement layout.EntryWidget.
type gtkEntry struct {
	gtkWidget
	entry *gtk.Entry
}

func (e *gtkEntry) SetText(text string)            { e.entry.SetText(text) }
func (e *gtkEntry) Text() string                   { return e.entry.Text() }
func (e *gtkEntry) SetPlaceholderText(text string) { e.entry.SetPlaceholderText(text) }
func (e *gtkEntry) SelectAll()                     { e.entry.SelectRegion(0, -1) }

func (e *gtkEntry) ConnectActivate(callback func()) {
	e.entry.ConnectActivate(callback)
}

// Factory creates gotk4-backed widgets.
type Factory struct{}

// NewFactory returns a widget factory producing real GTK widgets.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) NewBox(orientation layout.Orientation, spacing int) layout.BoxWidget {
	box := gtk.NewBox(gtkOrientation(orientation), spacing)
	return &gtkBox{gtkWidget: gtkWidget{inner: gtk.BaseWidget(box)}, box: box}
}

func (f *Factory) NewButton(iconName string) layout.ButtonWidget {
	button := gtk.NewButtonFromIconName(iconName)
	button.AddCSSClass("flat")
	return &gtkButton{gtkWidget: gtkWidget{inner: gtk.BaseWidget(button)}, button: button}
}

func (f *Factory) NewEntry() layout.EntryWidget {
	entry := gtk.NewEntry()
	return &gtkEntry{gtkWidget: gtkWidget{inner: gtk.BaseWidget(entry)}, entry: entry}
}

// Wrap adapts an existing GTK widget, such as a WebKit view.
func (f *Factory) Wrap(w gtk.Widgetter) layout.Widget {
	if w == nil {
		return nil
	}
	return &gtkWidget{inner: gtk.BaseWidget(w)}
}

// Unwrap returns the GTK widget behind w, or nil when w was not built here.
func Unwrap(w layout.Widget) *gtk.Widget {
	if n, ok := w.(wrapped); ok {
		return n.native()
	}
	return nil
}

func gtkOrientation(o layout.Orientation) gtk.Orientation {
	if o == layout.OrientationVertical {
		return gtk.OrientationVertical
	}
	return gtk.OrientationHorizontal
}

// MainThread schedules work on the GLib main loop.
type MainThread struct{}

// IdleAdd runs fn once on the main loop.
func (MainThread) IdleAdd(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
