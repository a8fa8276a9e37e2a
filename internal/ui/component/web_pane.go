package component

import (
	"context"
	"sync"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/application/usecase"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
)

// Pane command names. They are dispatched on the pane scope.
const (
	CommandOpen             = "webpane:open"
	CommandToggleAutoReload = "webpane:toggle-auto-reload"
	CommandToggleToolbar    = "webpane:toggle-toolbar"
	CommandToggleDevTools   = "webpane:toggle-devtools"
	CommandRefresh          = "webpane:refresh"
	CommandStop             = "webpane:stop"
	CommandGo               = "webpane:go"
	CommandBack             = "webpane:back"
	CommandForward          = "webpane:forward"
	CommandFocusAddress     = "webpane:focus-address"
	CommandClose            = "webpane:close"
)

// AutoReloader keeps a pane's file watch in line with its state.
type AutoReloader interface {
	Sync(ctx context.Context, input usecase.AutoReloadInput) error
	Release(id entity.PaneID)
}

// WebPaneConfig holds the collaborators of a web pane.
type WebPaneConfig struct {
	ID         entity.PaneID
	URI        string
	SourcePath string
	State      entity.PaneState

	Factory    layout.WidgetFactory
	View       port.WebView
	ViewWidget layout.Widget

	// AutoReload may be nil, in which case auto reload is a no-op toggle.
	AutoReload AutoReloader
	// Post schedules fn on the main loop. Nil runs fn immediately.
	Post func(fn func())
	// Parent is the node commands bubble to after the pane.
	Parent input.Node

	// OnTitleChanged is called after the pane title changed.
	OnTitleChanged func(title string)
}

// WebPane is a browser pane: a toolbar above a web view, plus the state
// that is persisted across restarts.
type WebPane struct {
	ctx context.Context

	id         entity.PaneID
	uri        string
	sourcePath string

	mu       sync.Mutex
	state    entity.PaneState
	disposed bool

	view       port.WebView
	viewWidget layout.Widget
	root       layout.BoxWidget
	toolbar    *Toolbar

	autoReload     AutoReloader
	post           func(fn func())
	parent         input.Node
	onTitleChanged func(string)

	renderPending bool
}

var _ input.Node = (*WebPane)(nil)

// NewWebPane builds the pane UI and connects it to its web view.
func NewWebPane(ctx context.Context, cfg WebPaneConfig) *WebPane {
	ctx = logging.WithPaneID(ctx, string(cfg.ID))

	p := &WebPane{
		ctx:            ctx,
		id:             cfg.ID,
		uri:            cfg.URI,
		sourcePath:     cfg.SourcePath,
		state:          cfg.State,
		view:           port.SafeWebView(cfg.View),
		viewWidget:     cfg.ViewWidget,
		autoReload:     cfg.AutoReload,
		post:           cfg.Post,
		parent:         cfg.Parent,
		onTitleChanged: cfg.OnTitleChanged,
	}
	if p.post == nil {
		p.post = func(fn func()) { fn() }
	}

	p.root = cfg.Factory.NewBox(layout.OrientationVertical, 0)
	p.root.AddCssClass("webpane")
	p.root.SetHexpand(true)
	p.root.SetVexpand(true)

	p.toolbar = NewToolbar(cfg.Factory, p, ToolbarCallbacks{
		OnBack:             func() { p.Back() },
		OnForward:          func() { p.Forward() },
		OnStop:             func() { p.Stop() },
		OnRefresh:          func() { p.Refresh() },
		OnGo:               func() { p.Go() },
		OnToggleDevTools:   func() { p.ToggleDevTools() },
		OnToggleAutoReload: func() { p.ToggleAutoReload() },
	})
	p.root.Append(p.toolbar.Widget())
	if p.viewWidget != nil {
		p.viewWidget.SetHexpand(true)
		p.viewWidget.SetVexpand(true)
		p.root.Append(p.viewWidget)
	}

	p.view.SetCallbacks(&port.WebViewCallbacks{
		OnLoadChanged:     p.handleLoadChanged,
		OnURIChanged:      p.handleURIChanged,
		OnTitleChanged:    p.handleTitleChanged,
		OnHistoryChanged:  p.scheduleRender,
		OnDevToolsChanged: p.handleDevToolsChanged,
	})

	if p.state.ShowDevTools {
		show := true
		if err := p.view.Update(ctx, port.WebViewUpdate{ShowDevTools: &show}); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to open dev tools")
		}
	}
	p.syncAutoReload()
	p.render()

	logging.FromContext(ctx).Info().
		Str("location", p.state.Location).
		Str("source_path", p.sourcePath).
		Msg("web pane created")

	return p
}

// ID returns the pane identifier.
func (p *WebPane) ID() entity.PaneID { return p.id }

// URI returns the opener URI the pane was created for.
func (p *WebPane) URI() string { return p.uri }

// SourcePath returns the file the pane was opened from, or "".
func (p *WebPane) SourcePath() string { return p.sourcePath }

// Widget returns the pane's root widget.
func (p *WebPane) Widget() layout.Widget { return p.root }

// Toolbar returns the pane's toolbar.
func (p *WebPane) Toolbar() *Toolbar { return p.toolbar }

// Title returns the current pane title.
func (p *WebPane) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Title
}

// State returns a copy of the pane state.
func (p *WebPane) State() entity.PaneState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// MatchesScope reports whether pane commands apply here.
func (p *WebPane) MatchesScope(scope input.Scope) bool {
	return scope == input.ScopePane
}

// ParentNode returns the node commands bubble to next.
func (p *WebPane) ParentNode() input.Node {
	return p.parent
}

// CommandTarget returns the node a key press inside the pane dispatches on:
// the toolbar while one of its controls holds focus, the pane otherwise.
func (p *WebPane) CommandTarget() input.Node {
	if p.toolbar.ContainsFocus() {
		return p.toolbar
	}
	return p
}

// Update merges u into the pane state and pushes the changes to the web view,
// the file watch and the title listener.
func (p *WebPane) Update(u entity.PaneStateUpdate) {
	p.update(u, true)
}

// update applies u. fromUser is false for changes reported by the view itself,
// whose location must not be loaded a second time.
func (p *WebPane) update(u entity.PaneStateUpdate, fromUser bool) {
	if u.IsEmpty() {
		return
	}

	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	prev := p.state.Apply(u)
	next := p.state
	p.mu.Unlock()

	p.applyChanges(prev, next, fromUser)
}

func (p *WebPane) applyChanges(prev, next entity.PaneState, pushLocation bool) {
	log := logging.FromContext(p.ctx)

	var viewUpdate port.WebViewUpdate
	if pushLocation && next.Location != prev.Location {
		location := next.Location
		viewUpdate.Location = &location
	}
	if next.ShowDevTools != prev.ShowDevTools {
		show := next.ShowDevTools
		viewUpdate.ShowDevTools = &show
	}
	if viewUpdate.Location != nil || viewUpdate.ShowDevTools != nil {
		if err := p.view.Update(p.ctx, viewUpdate); err != nil {
			log.Warn().Err(err).Msg("failed to update web view")
		}
	}

	if next.AutoReload != prev.AutoReload || next.AutoReloadWait != prev.AutoReloadWait {
		p.syncAutoReload()
	}

	if next.Title != prev.Title && p.onTitleChanged != nil {
		p.onTitleChanged(next.Title)
	}

	p.render()
}

// ToggleAutoReload flips auto reload.
func (p *WebPane) ToggleAutoReload() {
	p.Update(entity.PaneStateUpdate{AutoReload: entity.Ptr(!p.State().AutoReload)})
}

// ToggleToolbar shows or hides the toolbar.
func (p *WebPane) ToggleToolbar() {
	p.Update(entity.PaneStateUpdate{HideToolbar: entity.Ptr(!p.State().HideToolbar)})
}

// ToggleDevTools opens or closes the inspector.
func (p *WebPane) ToggleDevTools() {
	p.Update(entity.PaneStateUpdate{ShowDevTools: entity.Ptr(!p.State().ShowDevTools)})
}

// Refresh re-renders the toolbar and reloads the page.
func (p *WebPane) Refresh() {
	p.render()
	if err := p.view.Reload(p.ctx); err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("reload failed")
	}
}

// Stop stops the current load.
func (p *WebPane) Stop() {
	if err := p.view.Stop(p.ctx); err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("stop failed")
	}
}

// Back navigates back in history.
func (p *WebPane) Back() {
	if err := p.view.GoBack(p.ctx); err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("go back failed")
	}
}

// Forward navigates forward in history.
func (p *WebPane) Forward() {
	if err := p.view.GoForward(p.ctx); err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("go forward failed")
	}
}

// Go submits the address entry: the current location reloads, a valid
// address navigates, anything else selects the address text.
func (p *WebPane) Go() {
	typed := p.toolbar.AddressText()
	action, location := usecase.ResolveGo(typed, p.State().Location)

	logging.FromContext(p.ctx).Debug().
		Str("typed", typed).
		Str("action", action.String()).
		Msg("address submitted")

	switch action {
	case usecase.GoReload:
		p.Refresh()
	case usecase.GoNavigate:
		p.Update(entity.PaneStateUpdate{Location: &location})
	default:
		p.toolbar.SelectAddress()
	}
}

// FocusAddress focuses the address entry and selects its text.
func (p *WebPane) FocusAddress() {
	p.toolbar.SelectAddress()
}

// Serialize returns the opaque state blob handed to the host for persistence.
func (p *WebPane) Serialize() ([]byte, error) {
	return p.State().Marshal()
}

// Snapshot returns the pane as saved on shutdown.
func (p *WebPane) Snapshot() usecase.PaneSnapshot {
	return usecase.PaneSnapshot{ID: p.id, SourcePath: p.sourcePath, State: p.State()}
}

// Dispose releases the web view and the file watch. It is safe to call twice.
func (p *WebPane) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	p.mu.Unlock()

	if p.autoReload != nil {
		p.autoReload.Release(p.id)
	}
	p.view.SetCallbacks(nil)
	p.view.Destroy()

	logging.FromContext(p.ctx).Info().Msg("web pane disposed")
}

// IsDisposed reports whether Dispose ran.
func (p *WebPane) IsDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

func (p *WebPane) handleLoadChanged(event port.LoadEvent) {
	logging.FromContext(p.ctx).Debug().Str("event", event.String()).Msg("load changed")
	p.scheduleRender()
}

func (p *WebPane) handleURIChanged(uri string) {
	if uri == "" {
		return
	}
	p.update(entity.PaneStateUpdate{Location: &uri}, false)
}

func (p *WebPane) handleTitleChanged(title string, explicit bool) {
	if !explicit || title == "" {
		title = entity.UntitledPageTitle
	}
	p.update(entity.PaneStateUpdate{Title: &title}, false)
}

// handleDevToolsChanged records inspector changes made from the inspector
// itself. The view already has the new state, so nothing is pushed back.
func (p *WebPane) handleDevToolsChanged(open bool) {
	p.mu.Lock()
	if p.disposed || p.state.ShowDevTools == open {
		p.mu.Unlock()
		return
	}
	p.state.ShowDevTools = open
	p.mu.Unlock()
	p.scheduleRender()
}

// scheduleRender coalesces bursts of view events into one render.
func (p *WebPane) scheduleRender() {
	p.mu.Lock()
	if p.renderPending || p.disposed {
		p.mu.Unlock()
		return
	}
	p.renderPending = true
	p.mu.Unlock()

	p.post(func() {
		p.mu.Lock()
		p.renderPending = false
		p.mu.Unlock()
		p.render()
	})
}

func (p *WebPane) render() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	state := p.state
	p.mu.Unlock()

	p.toolbar.Update(ToolbarState{
		Location:     state.Location,
		Loading:      p.view.IsLoading(),
		CanGoBack:    p.view.CanGoBack(),
		CanGoForward: p.view.CanGoForward(),
		DevToolsOpen: state.ShowDevTools,
		AutoReload:   state.AutoReload,
		Hidden:       state.HideToolbar,
	})
}

func (p *WebPane) syncAutoReload() {
	if p.autoReload == nil {
		return
	}
	state := p.State()
	err := p.autoReload.Sync(p.ctx, usecase.AutoReloadInput{
		PaneID:     p.id,
		SourcePath: p.sourcePath,
		Enabled:    state.AutoReload,
		Delay:      state.AutoReloadDelay(),
		Reload:     p.Refresh,
	})
	if err != nil {
		logging.FromContext(p.ctx).Warn().Err(err).Msg("auto reload unavailable")
	}
}

// Commands returns the pane command handlers. Each acts on the pane whose
// scope matched and stops propagation.
func Commands() map[string]input.Command {
	wrap := func(fn func(*WebPane)) func(context.Context, *input.CommandEvent) {
		return func(ctx context.Context, event *input.CommandEvent) {
			pane, ok := event.CurrentTarget.(*WebPane)
			if !ok {
				logging.FromContext(ctx).Warn().Str("command", event.Name).Msg("pane command target is not a web pane")
				return
			}
			event.StopPropagation()
			fn(pane)
		}
	}

	return map[string]input.Command{
		CommandToggleAutoReload: {DisplayName: "Toggle Auto Reload", DidDispatch: wrap((*WebPane).ToggleAutoReload)},
		CommandToggleToolbar:    {DisplayName: "Toggle Toolbar", DidDispatch: wrap((*WebPane).ToggleToolbar)},
		CommandToggleDevTools:   {DisplayName: "Toggle Dev Tools", DidDispatch: wrap((*WebPane).ToggleDevTools)},
		CommandRefresh:          {DisplayName: "Refresh", DidDispatch: wrap((*WebPane).Refresh)},
		CommandStop:             {DisplayName: "Stop", DidDispatch: wrap((*WebPane).Stop)},
		CommandGo:               {DisplayName: "Go", DidDispatch: wrap((*WebPane).Go)},
		CommandBack:             {DisplayName: "Back", DidDispatch: wrap((*WebPane).Back)},
		CommandForward:          {DisplayName: "Forward", DidDispatch: wrap((*WebPane).Forward)},
		CommandFocusAddress:     {DisplayName: "Focus Address", DidDispatch: wrap((*WebPane).FocusAddress)},
	}
}
