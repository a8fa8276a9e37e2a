// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bnema/webpane/internal/cli/styles"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/logging"
)

// PaneStore is the saved pane access the browser needs.
type PaneStore interface {
	List(ctx context.Context) ([]*entity.SavedPane, error)
	Forget(ctx context.Context, id entity.PaneID) error
	Clear(ctx context.Context) (int64, error)
}

// DecodeRows turns saved panes into display rows. Blobs that cannot be
// decoded are kept as broken rows so they can still be removed.
func DecodeRows(saved []*entity.SavedPane, defaults entity.PaneDefaults) []styles.PaneRow {
	rows := make([]styles.PaneRow, 0, len(saved))
	for _, sp := range saved {
		row := styles.PaneRow{ID: sp.ID, SourcePath: sp.SourcePath, SavedAt: sp.SavedAt}
		state, err := sp.Decode(defaults)
		if err != nil {
			row.Broken = true
		} else {
			row.State = state
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterRows keeps the rows whose title, location or source path fuzzily
// contain query, ignoring case and diacritics. An empty query keeps all rows.
func FilterRows(rows []styles.PaneRow, query string) []styles.PaneRow {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}
	var out []styles.PaneRow
	for _, row := range rows {
		for _, field := range []string{row.State.Title, row.State.Location, row.SourcePath, string(row.ID)} {
			if fuzzy.MatchNormalizedFold(query, field) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// PanesModel is the Bubble Tea model for the interactive saved pane browser.
type PanesModel struct {
	help   help.Model
	keys   panesKeyMap
	filter textinput.Model

	rows          []styles.PaneRow
	visible       []styles.PaneRow
	filtering     bool
	selectedIdx   int
	expanded      bool
	pendingClear  bool
	err           error
	statusMessage string

	ctx      context.Context
	store    PaneStore
	defaults entity.PaneDefaults
	renderer *styles.PanesRenderer
	theme    *styles.Theme
}

type panesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Filter  key.Binding
	Forget  key.Binding
	Clear   key.Binding
	Confirm key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k panesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Forget, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k panesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Filter},
		{k.Forget, k.Clear, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultPanesKeyMap() panesKeyMap {
	return panesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Forget: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "forget"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PanesModelConfig holds configuration for the panes model.
type PanesModelConfig struct {
	Store    PaneStore
	Defaults entity.PaneDefaults
}

// NewPanesModel creates a new saved pane browser.
func NewPanesModel(ctx context.Context, theme *styles.Theme, cfg PanesModelConfig) PanesModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "title, location or file"

	return PanesModel{
		help:     help.New(),
		keys:     defaultPanesKeyMap(),
		filter:   filter,
		ctx:      ctx,
		store:    cfg.Store,
		defaults: cfg.Defaults,
		renderer: styles.NewPanesRenderer(theme),
		theme:    theme,
	}
}

type panesLoadedMsg struct {
	rows []styles.PaneRow
	err  error
}

type paneForgottenMsg struct {
	id  entity.PaneID
	err error
}

type panesClearedMsg struct {
	n   int64
	err error
}

// Init implements tea.Model.
func (m PanesModel) Init() tea.Cmd {
	return m.loadPanes
}

func (m PanesModel) loadPanes() tea.Msg {
	if m.store == nil {
		return panesLoadedMsg{err: fmt.Errorf("pane storage not available")}
	}
	saved, err := m.store.List(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load saved panes")
		return panesLoadedMsg{err: err}
	}
	return panesLoadedMsg{rows: DecodeRows(saved, m.defaults)}
}

// Update implements tea.Model.
func (m PanesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case panesLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.rows = msg.rows
			m.applyFilter()
		}
		return m, nil

	case paneForgottenMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Pane %s forgotten", msg.id)
		return m, m.loadPanes

	case panesClearedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Removed %d saved pane(s)", msg.n)
		return m, m.loadPanes
	}
	return m, nil
}

func (m *PanesModel) applyFilter() {
	m.visible = FilterRows(m.rows, m.filter.Value())
	if m.selectedIdx >= len(m.visible) {
		m.selectedIdx = max(len(m.visible)-1, 0)
	}
}

func (m PanesModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m PanesModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.pendingClear {
		m.pendingClear = false
		if key.Matches(msg, m.keys.Confirm) {
			return m, m.clearPanes
		}
		m.statusMessage = "Canceled"
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.visible)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		m.expanded = !m.expanded

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Forget):
		if m.selectedIdx < len(m.visible) {
			return m, m.forgetPane(m.visible[m.selectedIdx].ID)
		}

	case key.Matches(msg, m.keys.Clear):
		if len(m.rows) > 0 {
			m.pendingClear = true
			m.statusMessage = "Remove every saved pane? (y to confirm)"
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadPanes

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m PanesModel) forgetPane(id entity.PaneID) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("pane_id", string(id)).Msg("forgetting saved pane")
		return paneForgottenMsg{id: id, err: m.store.Forget(m.ctx, id)}
	}
}

func (m PanesModel) clearPanes() tea.Msg {
	n, err := m.store.Clear(m.ctx)
	return panesClearedMsg{n: n, err: err}
}

// View implements tea.Model.
func (m PanesModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderer.RenderHeader(len(m.rows)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.renderer.RenderError(m.err))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(m.theme.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.renderer.RenderEmpty())
		b.WriteString("\n")
	}
	for i, row := range m.visible {
		selected := i == m.selectedIdx
		b.WriteString(m.renderer.RenderRow(row, selected))
		b.WriteString("\n")
		if selected && m.expanded {
			b.WriteString(m.renderer.RenderDetail(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
