package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webpane/internal/domain/entity"
)

func TestRenderRow_ShowsTitleLocationAndBadges(t *testing.T) {
	r := NewPanesRenderer(DefaultTheme())
	row := PaneRow{
		ID: "pane_1",
		State: entity.PaneState{
			Title:      "Docs",
			Location:   "file:///tmp/docs/index.html",
			AutoReload: true,
		},
	}

	out := r.RenderRow(row, false)
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, "file:///tmp/docs/index.html")
	assert.Contains(t, out, "auto")
	assert.NotContains(t, out, "devtools")
}

func TestRenderRow_Broken(t *testing.T) {
	r := NewPanesRenderer(DefaultTheme())
	out := r.RenderRow(PaneRow{ID: "pane_9", Broken: true}, true)
	assert.Contains(t, out, "pane_9")
	assert.Contains(t, out, "unreadable")
}

func TestRenderDetail_HomepagePane(t *testing.T) {
	r := NewPanesRenderer(DefaultTheme())
	assert.Contains(t, r.RenderDetail(PaneRow{ID: "pane_1"}), "(homepage)")
}

func TestRenderError(t *testing.T) {
	r := NewPanesRenderer(DefaultTheme())
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
