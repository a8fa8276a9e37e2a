package component_test

import (
	"context"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/application/usecase"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/layout/layouttest"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeFactory struct {
	*layouttest.Factory
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{Factory: layouttest.NewFactory()}
}

// Toolbar buttons in creation order.
func (f *fakeFactory) back() *layouttest.Button        { return f.Buttons[0] }
func (f *fakeFactory) stopRefresh() *layouttest.Button { return f.Buttons[1] }
func (f *fakeFactory) forward() *layouttest.Button     { return f.Buttons[2] }
func (f *fakeFactory) devTools() *layouttest.Button    { return f.Buttons[3] }
func (f *fakeFactory) autoReload() *layouttest.Button  { return f.Buttons[4] }
func (f *fakeFactory) address() *layouttest.Entry      { return f.Entries[0] }

type fakeWebView struct {
	loading      bool
	canBack      bool
	canForward   bool
	devToolsOpen bool
	destroyed    bool

	callbacks *port.WebViewCallbacks

	reloads   int
	stops     int
	backs     int
	forwards  int
	updates   []port.WebViewUpdate
	destroyCt int
}

func (v *fakeWebView) IsLoading() bool       { return v.loading }
func (v *fakeWebView) CanGoBack() bool       { return v.canBack }
func (v *fakeWebView) CanGoForward() bool    { return v.canForward }
func (v *fakeWebView) HasDevToolsOpen() bool { return v.devToolsOpen }

func (v *fakeWebView) Reload(context.Context) error    { v.reloads++; return nil }
func (v *fakeWebView) Stop(context.Context) error      { v.stops++; return nil }
func (v *fakeWebView) GoBack(context.Context) error    { v.backs++; return nil }
func (v *fakeWebView) GoForward(context.Context) error { v.forwards++; return nil }

func (v *fakeWebView) Update(_ context.Context, u port.WebViewUpdate) error {
	v.updates = append(v.updates, u)
	if u.ShowDevTools != nil {
		v.devToolsOpen = *u.ShowDevTools
	}
	return nil
}

func (v *fakeWebView) SetCallbacks(cb *port.WebViewCallbacks) { v.callbacks = cb }
func (v *fakeWebView) IsDestroyed() bool                      { return v.destroyed }

func (v *fakeWebView) Destroy() {
	v.destroyed = true
	v.destroyCt++
}

type fakeAutoReloader struct {
	syncs    []usecase.AutoReloadInput
	released []entity.PaneID
}

func (a *fakeAutoReloader) Sync(_ context.Context, in usecase.AutoReloadInput) error {
	a.syncs = append(a.syncs, in)
	return nil
}

func (a *fakeAutoReloader) Release(id entity.PaneID) {
	a.released = append(a.released, id)
}

func (a *fakeAutoReloader) last() usecase.AutoReloadInput {
	return a.syncs[len(a.syncs)-1]
}
