package ui

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/application/usecase"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/infrastructure/config"
	"github.com/bnema/webpane/internal/infrastructure/webkit"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/component"
	"github.com/bnema/webpane/internal/ui/coordinator"
	"github.com/bnema/webpane/internal/ui/focus"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
	"github.com/bnema/webpane/internal/ui/layout/gtkwidget"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.webpane"

	defaultWidth  = 1100
	defaultHeight = 800
	sidebarWidth  = 220
)

const appCSS = `
.webpane-toolbar { padding: 4px; }
.webpane-toolbar button.selected { background-color: alpha(@accent_bg_color, 0.35); }
.webpane-address { min-width: 200px; }
.webpane-tree button { padding: 2px 6px; }
.webpane-tree button.selected { background-color: alpha(@accent_bg_color, 0.35); }
`

// App wraps the GTK Application and owns the pane coordinator.
type App struct {
	deps *Dependencies

	gtkApp   *gtk.Application
	window   *gtk.ApplicationWindow
	notebook *gtk.Notebook
	tree     *component.FileTree

	widgetFactory *gtkwidget.Factory
	registry      *input.CommandRegistry
	keyboard      *input.KeyboardHandler

	autoReload *usecase.AutoReloadUseCase
	coord      *coordinator.PaneCoordinator

	// pages mirrors the notebook page order.
	mu    sync.Mutex
	pages []*component.WebPane

	workspace *hostNode
	editor    *hostNode
}

// hostNode stands in for the workspace and editor scopes.
type hostNode struct {
	scope  input.Scope
	parent input.Node
}

func (n *hostNode) MatchesScope(scope input.Scope) bool { return scope == n.scope }

func (n *hostNode) ParentNode() input.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	workspace := &hostNode{scope: input.ScopeWorkspace}
	return &App{
		deps:      deps,
		registry:  input.NewCommandRegistry(),
		workspace: workspace,
		editor:    &hostNode{scope: input.ScopeEditor, parent: workspace},
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	if a.window != nil {
		a.window.Present()
		return
	}
	log.Debug().Msg("GTK application activated")

	a.applyCSS()
	a.createMainWindow(ctx)
	a.initCoordinator(ctx)
	a.initKeyboardHandler(ctx)
	a.watchConfig(ctx)
	a.openInitialPanes(ctx)

	a.window.Present()
}

func (a *App) applyCSS() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	provider := gtk.NewCSSProvider()
	provider.LoadFromData(appCSS)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

func (a *App) createMainWindow(ctx context.Context) {
	a.window = gtk.NewApplicationWindow(a.gtkApp)
	a.window.SetTitle(entity.DefaultPaneTitle)
	a.window.SetDefaultSize(defaultWidth, defaultHeight)
	a.widgetFactory = gtkwidget.NewFactory()

	a.notebook = gtk.NewNotebook()
	a.notebook.SetScrollable(true)
	a.notebook.ConnectSwitchPage(func(_ gtk.Widgetter, page uint) {
		if pane := a.paneAt(int(page)); pane != nil {
			a.window.SetTitle(pane.Title())
		}
	})

	a.initFileTree(ctx)
	scroller := gtk.NewScrolledWindow()
	scroller.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroller.SetChild(gtkwidget.Unwrap(a.tree.Widget()))

	paned := gtk.NewPaned(gtk.OrientationHorizontal)
	paned.SetStartChild(scroller)
	paned.SetEndChild(a.notebook)
	paned.SetResizeStartChild(false)
	paned.SetShrinkStartChild(false)
	paned.SetPosition(sidebarWidth)
	a.window.SetChild(paned)
}

// initFileTree lists the directory of the initial file, or the working
// directory, and selects the initial file.
func (a *App) initFileTree(ctx context.Context) {
	log := logging.FromContext(ctx)

	a.tree = component.NewFileTree(ctx, component.FileTreeConfig{
		Factory: a.widgetFactory,
		Parent:  a.workspace,
		OnOpen: func() {
			a.registry.Dispatch(ctx, a.tree, component.CommandOpen)
		},
	})

	dir := filepath.Dir(a.deps.InitialPath)
	if a.deps.InitialPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			log.Warn().Err(err).Msg("failed to get working directory")
			return
		}
		dir = wd
	}
	if err := a.tree.SetDirectory(dir); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to list file tree")
		return
	}
	if a.deps.InitialPath != "" {
		a.tree.Select(a.deps.InitialPath)
	}
}

func (a *App) initCoordinator(ctx context.Context) {
	a.autoReload = usecase.NewAutoReloadUseCase(a.deps.FileWatcher, gtkwidget.MainThread{})

	var persist *usecase.PersistPanesUseCase
	if a.deps.PaneRepo != nil {
		persist = usecase.NewPersistPanesUseCase(a.deps.PaneRepo)
	}

	a.coord = coordinator.NewPaneCoordinator(coordinator.PaneCoordinatorConfig{
		OpenUC:        usecase.NewOpenPaneUseCase(a.tree, activeEditor{app: a}),
		PersistUC:     persist,
		AutoReload:    a.autoReload,
		ViewFactory:   a.deps.Factory,
		WidgetFactory: a.widgetFactory,
		ViewWidget:    a.viewWidget,
		Defaults:      a.paneDefaults,
		Post:          gtkwidget.MainThread{}.IdleAdd,
		Parent:        a.editor,
		OnPaneOpened:  a.addPage,
		OnPaneClosed:  a.removePage,
		OnTitleChanged: func(pane *component.WebPane, title string) {
			a.notebook.SetTabLabelText(gtkwidget.Unwrap(pane.Widget()), title)
			if a.activePane() == pane {
				a.window.SetTitle(title)
			}
		},
	})
	a.coord.RegisterCommands(ctx, a.registry)
}

func (a *App) viewWidget(view port.WebView) layout.Widget {
	wv, ok := view.(*webkit.WebView)
	if !ok {
		return nil
	}
	return a.widgetFactory.Wrap(wv.Widget())
}

// paneDefaults reads the live configuration, so panes opened after a config
// change pick it up while open panes keep their own state.
func (a *App) paneDefaults() entity.PaneDefaults {
	if a.deps.ConfigManager != nil {
		return a.deps.ConfigManager.PaneDefaults()
	}
	return a.deps.Config.PaneDefaults()
}

func (a *App) initKeyboardHandler(ctx context.Context) {
	log := logging.FromContext(ctx)

	toolbarKeys, err := input.NewKeymap(focus.DefaultKeyBindings())
	if err != nil {
		log.Error().Err(err).Msg("invalid focus key bindings")
		return
	}
	paneKeys, err := input.NewKeymap(a.deps.Config.Keybindings)
	if err != nil {
		// Validation rejects bad bindings at load time.
		log.Error().Err(err).Msg("invalid pane key bindings")
		paneKeys, _ = input.NewKeymap(config.DefaultKeybindings())
	}

	a.keyboard = input.NewKeyboardHandler(ctx, a.registry,
		input.ScopedKeymap{Scope: input.ScopeToolbar, Keymap: toolbarKeys},
		input.ScopedKeymap{Scope: input.ScopePane, Keymap: paneKeys},
		input.ScopedKeymap{Scope: input.ScopeTreeFile, Keymap: paneKeys},
		input.ScopedKeymap{Scope: input.ScopeTreeDir, Keymap: paneKeys},
		input.ScopedKeymap{Scope: input.ScopeEditor, Keymap: paneKeys},
		input.ScopedKeymap{Scope: input.ScopeWorkspace, Keymap: paneKeys},
	)
	a.keyboard.SetTarget(func() input.Node {
		if a.tree.ContainsFocus() {
			return a.tree
		}
		if pane := a.activePane(); pane != nil {
			return pane.CommandTarget()
		}
		return a.workspace
	})

	controller := gtk.NewEventControllerKey()
	// Capture phase: see keys before the web view and the address entry.
	controller.SetPropagationPhase(gtk.PhaseCapture)
	controller.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		return a.keyboard.HandleKeyPress(keyval, input.Modifier(state))
	})
	a.window.AddController(controller)
}

func (a *App) watchConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}
	log := logging.FromContext(ctx)
	mgr.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		log.Info().Str("level", cfg.Logging.Level).Msg("configuration reloaded")
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to watch configuration")
	}
}

func (a *App) openInitialPanes(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.RestorePanes {
		n, err := a.coord.Restore(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to restore panes")
		}
		log.Debug().Int("restored", n).Msg("restore finished")
	}

	if a.deps.InitialPath != "" {
		if _, _, err := a.coord.Open(ctx, usecase.PaneURI(a.deps.InitialPath)); err != nil {
			log.Error().Err(err).Str("path", a.deps.InitialPath).Msg("failed to open initial pane")
		}
	}

	if len(a.coord.Panes()) == 0 {
		if _, err := a.coord.OpenFrom(ctx, usecase.OpenFromWorkspace); err != nil {
			log.Error().Err(err).Msg("failed to open homepage pane")
		}
	}
}

func (a *App) addPage(pane *component.WebPane) {
	child := gtkwidget.Unwrap(pane.Widget())
	label := gtk.NewLabel(pane.Title())

	a.mu.Lock()
	a.pages = append(a.pages, pane)
	a.mu.Unlock()

	page := a.notebook.AppendPage(child, label)
	a.notebook.SetCurrentPage(page)
}

func (a *App) removePage(pane *component.WebPane) {
	a.mu.Lock()
	for i, p := range a.pages {
		if p == pane {
			a.pages = append(a.pages[:i], a.pages[i+1:]...)
			break
		}
	}
	remaining := len(a.pages)
	a.mu.Unlock()

	if page := a.notebook.PageNum(gtkwidget.Unwrap(pane.Widget())); page >= 0 {
		a.notebook.RemovePage(page)
	}
	if remaining == 0 {
		a.window.SetTitle(entity.DefaultPaneTitle)
	}
}

func (a *App) paneAt(page int) *component.WebPane {
	a.mu.Lock()
	defer a.mu.Unlock()
	if page < 0 || page >= len(a.pages) {
		return nil
	}
	return a.pages[page]
}

func (a *App) activePane() *component.WebPane {
	if a.notebook == nil {
		return nil
	}
	return a.paneAt(a.notebook.CurrentPage())
}

// onShutdown saves open panes and releases them.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.coord == nil {
		return
	}
	if err := a.coord.SaveAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to save panes")
	}
	a.coord.CloseAll(ctx)
}

// activeEditor reports the file shown by the focused pane, so opening from
// the editor scope duplicates it.
type activeEditor struct {
	app *App
}

func (e activeEditor) ActiveFilePath() string {
	if pane := e.app.activePane(); pane != nil {
		return pane.SourcePath()
	}
	return ""
}
