package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webpane/internal/domain/entity"
)

// PaneRow is one saved pane prepared for display.
type PaneRow struct {
	ID         entity.PaneID
	SourcePath string
	State      entity.PaneState
	SavedAt    time.Time
	Broken     bool
}

// PanesRenderer renders saved panes and command results.
type PanesRenderer struct {
	theme *Theme
}

// NewPanesRenderer creates a renderer with the given theme.
func NewPanesRenderer(theme *Theme) *PanesRenderer {
	return &PanesRenderer{theme: theme}
}

// RenderRow renders one pane line. selected highlights it.
func (r *PanesRenderer) RenderRow(row PaneRow, selected bool) string {
	t := r.theme

	style := t.ListItem
	cursor := "  "
	if selected {
		style = t.ListItemSelected
		cursor = IconCursor + " "
	}

	if row.Broken {
		return style.Render(cursor + t.ErrorStyle.Render(IconX+" "+string(row.ID)+" (unreadable)"))
	}

	badges := make([]string, 0, 3)
	if row.State.AutoReload {
		badges = append(badges, t.Badge.Render(IconReload+" auto"))
	}
	if row.State.HideToolbar {
		badges = append(badges, t.BadgeMuted.Render("no toolbar"))
	}
	if row.State.ShowDevTools {
		badges = append(badges, t.BadgeMuted.Render("devtools"))
	}

	line := fmt.Sprintf("%s%s  %s", cursor, t.Title.Render(row.State.Title), t.Subtle.Render(row.State.Location))
	if len(badges) > 0 {
		line += "  " + strings.Join(badges, " ")
	}
	return style.Render(line)
}

// RenderDetail renders the source file and save time of a pane.
func (r *PanesRenderer) RenderDetail(row PaneRow) string {
	t := r.theme
	source := row.SourcePath
	if source == "" {
		source = "(homepage)"
	}
	return t.Subtle.Render(fmt.Sprintf("      %s %s   saved %s",
		IconFile, source, row.SavedAt.Local().Format(time.DateTime)))
}

// RenderEmpty renders the message shown when nothing is saved.
func (r *PanesRenderer) RenderEmpty() string {
	return r.theme.Subtle.Render("  No saved panes.")
}

// RenderHeader renders the title line with the pane count.
func (r *PanesRenderer) RenderHeader(count int) string {
	t := r.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(IconPane)
	return icon + t.Title.MarginLeft(1).Render("Saved panes") + t.Subtle.Render(fmt.Sprintf("  %d", count))
}

// RenderCleared renders the result of clearing saved panes.
func (r *PanesRenderer) RenderCleared(n int64) string {
	return r.theme.SuccessStyle.Render(fmt.Sprintf("%s Removed %d saved pane(s)", IconTrash, n))
}

// RenderError renders an error line.
func (r *PanesRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", IconX, err))
}

// RenderResolved renders a template resolution result.
func (r *PanesRenderer) RenderResolved(path, location string) string {
	t := r.theme
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Subtle.Render(IconFile+" "+path),
		t.Highlight.Render(IconGlobe+" "+location),
	)
}

// RenderPath renders a labeled filesystem path.
func (r *PanesRenderer) RenderPath(icon, label, path string) string {
	t := r.theme
	return fmt.Sprintf("%s %s %s", t.Highlight.Render(icon), t.Title.Render(label), t.Subtle.Render(path))
}
