package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/application/usecase"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/component"
	"github.com/bnema/webpane/internal/ui/focus"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
)

// AutoReloader is the auto reload use case as seen by the coordinator.
type AutoReloader interface {
	component.AutoReloader
	StopAll()
}

// PaneCoordinatorConfig holds configuration for PaneCoordinator.
type PaneCoordinatorConfig struct {
	OpenUC *usecase.OpenPaneUseCase
	// PersistUC may be nil, in which case Restore and SaveAll do nothing.
	PersistUC  *usecase.PersistPanesUseCase
	AutoReload AutoReloader

	ViewFactory   port.WebViewFactory
	WidgetFactory layout.WidgetFactory
	// ViewWidget returns the widget embedding a web view.
	ViewWidget func(port.WebView) layout.Widget

	// Defaults returns the configuration snapshot new panes are built from.
	Defaults   func() entity.PaneDefaults
	Post       func(fn func())
	Parent     input.Node
	GenerateID func() entity.PaneID

	// Callbacks to avoid circular dependencies
	OnPaneOpened   func(pane *component.WebPane)
	OnPaneClosed   func(pane *component.WebPane)
	OnTitleChanged func(pane *component.WebPane, title string)
}

// PaneCoordinator owns the open web panes: it opens them from pane URIs,
// restores and saves them, and disposes them on deactivation.
type PaneCoordinator struct {
	cfg PaneCoordinatorConfig

	mu    sync.Mutex
	panes map[entity.PaneID]*component.WebPane
	order []entity.PaneID

	unregister []func()
}

// NewPaneCoordinator creates a new PaneCoordinator.
func NewPaneCoordinator(cfg PaneCoordinatorConfig) *PaneCoordinator {
	if cfg.GenerateID == nil {
		cfg.GenerateID = entity.NewPaneID
	}
	if cfg.Defaults == nil {
		cfg.Defaults = entity.DefaultPaneDefaults
	}
	return &PaneCoordinator{
		cfg:   cfg,
		panes: make(map[entity.PaneID]*component.WebPane),
	}
}

// Open is the pane opener: it returns a new pane for URIs carrying the pane
// prefix and declines (nil, false) every other URI.
func (c *PaneCoordinator) Open(ctx context.Context, uri string) (*component.WebPane, bool, error) {
	out, err := c.cfg.OpenUC.Execute(ctx, usecase.OpenPaneInput{
		URI:      uri,
		Defaults: c.cfg.Defaults(),
	})
	if errors.Is(err, usecase.ErrNotPaneURI) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}

	pane, err := c.createPane(ctx, c.cfg.GenerateID(), out.URI, out.SourcePath, out.State)
	if err != nil {
		return nil, true, err
	}
	return pane, true, nil
}

// OpenFrom opens a pane for the file the given scope points at. Scopes
// without a file open the homepage.
func (c *PaneCoordinator) OpenFrom(ctx context.Context, source usecase.OpenSource) (*component.WebPane, error) {
	uri := usecase.PaneURI(c.cfg.OpenUC.SourcePath(source))
	logging.FromContext(ctx).Debug().
		Str("source", source.String()).
		Str("uri", uri).
		Msg("open command")

	pane, _, err := c.Open(ctx, uri)
	return pane, err
}

// Restore reopens the panes saved by SaveAll and returns how many were opened.
func (c *PaneCoordinator) Restore(ctx context.Context) (int, error) {
	if c.cfg.PersistUC == nil {
		return 0, nil
	}
	log := logging.FromContext(ctx)

	restored, err := c.cfg.PersistUC.Restore(ctx, c.cfg.Defaults())
	if err != nil {
		return 0, err
	}

	opened := 0
	for _, r := range restored {
		if _, err := c.createPane(ctx, r.ID, usecase.PaneURI(r.SourcePath), r.SourcePath, r.State); err != nil {
			log.Warn().Err(err).Str("pane_id", string(r.ID)).Msg("failed to restore pane")
			continue
		}
		opened++
	}
	return opened, nil
}

// SaveAll persists every open pane in opening order.
func (c *PaneCoordinator) SaveAll(ctx context.Context) error {
	if c.cfg.PersistUC == nil {
		return nil
	}
	panes := c.Panes()
	snapshots := make([]usecase.PaneSnapshot, 0, len(panes))
	for _, p := range panes {
		snapshots = append(snapshots, p.Snapshot())
	}
	return c.cfg.PersistUC.SaveAll(ctx, snapshots)
}

// Panes returns the open panes in opening order.
func (c *PaneCoordinator) Panes() []*component.WebPane {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*component.WebPane, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.panes[id])
	}
	return out
}

// Get returns an open pane by ID.
func (c *PaneCoordinator) Get(id entity.PaneID) (*component.WebPane, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.panes[id]
	return p, ok
}

// Close disposes one pane. It reports whether the pane was open.
func (c *PaneCoordinator) Close(ctx context.Context, id entity.PaneID) bool {
	c.mu.Lock()
	pane, ok := c.panes[id]
	if ok {
		c.removeLocked(id)
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	c.dispose(ctx, pane)
	return true
}

// RegisterCommands registers the open command on the workspace, editor and
// tree scopes, the pane commands on the pane scope and the focus ring on the
// toolbar scope. CloseAll removes them again.
func (c *PaneCoordinator) RegisterCommands(ctx context.Context, registry *input.CommandRegistry) {
	openFrom := func(source usecase.OpenSource) map[string]input.Command {
		return map[string]input.Command{
			component.CommandOpen: {
				DisplayName: "Open Web Pane",
				DidDispatch: func(ctx context.Context, event *input.CommandEvent) {
					event.StopPropagation()
					if _, err := c.OpenFrom(ctx, source); err != nil {
						logging.FromContext(ctx).Error().Err(err).Msg("failed to open web pane")
					}
				},
			},
		}
	}

	closePane := map[string]input.Command{
		component.CommandClose: {
			DisplayName: "Close Web Pane",
			DidDispatch: func(ctx context.Context, event *input.CommandEvent) {
				pane, ok := event.CurrentTarget.(*component.WebPane)
				if !ok {
					return
				}
				event.StopPropagation()
				c.Close(ctx, pane.ID())
			},
		},
	}

	unregister := []func(){
		registry.Add(input.ScopeWorkspace, openFrom(usecase.OpenFromWorkspace)),
		registry.Add(input.ScopeEditor, openFrom(usecase.OpenFromEditor)),
		registry.Add(input.ScopeTreeFile, openFrom(usecase.OpenFromTree)),
		registry.Add(input.ScopeTreeDir, openFrom(usecase.OpenFromTree)),
		registry.Add(input.ScopePane, component.Commands()),
		registry.Add(input.ScopePane, closePane),
		registry.Add(input.ScopeToolbar, focus.Commands()),
	}

	c.mu.Lock()
	c.unregister = append(c.unregister, unregister...)
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("registrations", len(unregister)).Msg("web pane commands registered")
}

// CloseAll deactivates the coordinator: every pane is disposed, file watches
// are stopped and command registrations are released.
func (c *PaneCoordinator) CloseAll(ctx context.Context) {
	c.mu.Lock()
	panes := make([]*component.WebPane, 0, len(c.order))
	for _, id := range c.order {
		panes = append(panes, c.panes[id])
	}
	c.panes = make(map[entity.PaneID]*component.WebPane)
	c.order = nil
	unregister := c.unregister
	c.unregister = nil
	c.mu.Unlock()

	for _, p := range panes {
		c.dispose(ctx, p)
	}
	if c.cfg.AutoReload != nil {
		c.cfg.AutoReload.StopAll()
	}
	for _, fn := range unregister {
		fn()
	}

	logging.FromContext(ctx).Info().Int("pane_count", len(panes)).Msg("web panes closed")
}

func (c *PaneCoordinator) createPane(
	ctx context.Context,
	id entity.PaneID,
	uri, sourcePath string,
	state entity.PaneState,
) (*component.WebPane, error) {
	view, err := c.cfg.ViewFactory.Create(ctx, state.Location)
	if err != nil {
		return nil, fmt.Errorf("create web view: %w", err)
	}

	var viewWidget layout.Widget
	if c.cfg.ViewWidget != nil {
		viewWidget = c.cfg.ViewWidget(view)
	}

	var pane *component.WebPane
	pane = component.NewWebPane(ctx, component.WebPaneConfig{
		ID:         id,
		URI:        uri,
		SourcePath: sourcePath,
		State:      state,
		Factory:    c.cfg.WidgetFactory,
		View:       view,
		ViewWidget: viewWidget,
		AutoReload: c.cfg.AutoReload,
		Post:       c.cfg.Post,
		Parent:     c.cfg.Parent,
		OnTitleChanged: func(title string) {
			if c.cfg.OnTitleChanged != nil && pane != nil {
				c.cfg.OnTitleChanged(pane, title)
			}
		},
	})

	c.mu.Lock()
	c.panes[id] = pane
	c.order = append(c.order, id)
	c.mu.Unlock()

	if c.cfg.OnPaneOpened != nil {
		c.cfg.OnPaneOpened(pane)
	}
	return pane, nil
}

func (c *PaneCoordinator) removeLocked(id entity.PaneID) {
	delete(c.panes, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *PaneCoordinator) dispose(ctx context.Context, pane *component.WebPane) {
	pane.Dispose()
	if c.cfg.OnPaneClosed != nil {
		c.cfg.OnPaneClosed(pane)
	}
	logging.FromContext(ctx).Debug().Str("pane_id", string(pane.ID())).Msg("pane closed")
}
