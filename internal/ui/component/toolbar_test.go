package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/ui/component"
	"github.com/bnema/webpane/internal/ui/focus"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
	"github.com/bnema/webpane/internal/ui/layout/mocks"
)

type toolbarCalls struct {
	back, forward, stop, refresh, goes, devTools, autoReload int
}

func newTestToolbar(t *testing.T) (*component.Toolbar, *fakeFactory, *toolbarCalls) {
	t.Helper()
	f := newFakeFactory()
	calls := &toolbarCalls{}
	tb := component.NewToolbar(f, nil, component.ToolbarCallbacks{
		OnBack:             func() { calls.back++ },
		OnForward:          func() { calls.forward++ },
		OnStop:             func() { calls.stop++ },
		OnRefresh:          func() { calls.refresh++ },
		OnGo:               func() { calls.goes++ },
		OnToggleDevTools:   func() { calls.devTools++ },
		OnToggleAutoReload: func() { calls.autoReload++ },
	})
	require.Len(t, f.Buttons, 5)
	require.Len(t, f.Entries, 1)
	return tb, f, calls
}

func TestNewToolbar_BuildsControlsInOrder(t *testing.T) {
	// Arrange
	factory := mocks.NewMockWidgetFactory(t)
	box := mocks.NewMockBoxWidget(t)
	entry := mocks.NewMockEntryWidget(t)
	icons := []string{
		"go-previous-symbolic",
		"view-refresh-symbolic",
		"go-next-symbolic",
		"utilities-terminal-symbolic",
		"media-playlist-repeat-symbolic",
	}
	buttons := make(map[string]*mocks.MockButtonWidget, len(icons))

	factory.EXPECT().NewBox(layout.OrientationHorizontal, 4).Return(box).Once()
	box.EXPECT().AddCssClass("webpane-toolbar").Once()
	box.EXPECT().SetHexpand(true).Once()

	for _, icon := range icons {
		b := mocks.NewMockButtonWidget(t)
		buttons[icon] = b
		factory.EXPECT().NewButton(icon).Return(b).Once()
		b.EXPECT().SetTooltipText(mock.Anything).Once()
		b.EXPECT().ConnectClicked(mock.Anything).Once()
	}

	factory.EXPECT().NewEntry().Return(entry).Once()
	entry.EXPECT().SetHexpand(true).Once()
	entry.EXPECT().SetPlaceholderText(mock.Anything).Once()
	entry.EXPECT().AddCssClass("webpane-address").Once()
	entry.EXPECT().ConnectActivate(mock.Anything).Once()

	var appended []layout.Widget
	box.EXPECT().Append(mock.Anything).Run(func(child layout.Widget) {
		appended = append(appended, child)
	}).Times(6)

	// Act
	tb := component.NewToolbar(factory, nil, component.ToolbarCallbacks{})

	// Assert
	require.NotNil(t, tb)
	require.Len(t, appended, 6)
	assert.Same(t, buttons[icons[0]], appended[0])
	assert.Same(t, buttons[icons[1]], appended[1])
	assert.Same(t, buttons[icons[2]], appended[2])
	assert.Same(t, entry, appended[3])
	assert.Same(t, buttons[icons[3]], appended[4])
	assert.Same(t, buttons[icons[4]], appended[5])
	assert.Len(t, tb.FocusableControls(), 6)
}

func TestToolbar_UpdateHistoryButtons(t *testing.T) {
	tb, f, _ := newTestToolbar(t)

	tb.Update(component.ToolbarState{Location: "about:blank"})
	assert.False(t, f.back().IsSensitive())
	assert.False(t, f.forward().IsSensitive())

	tb.Update(component.ToolbarState{Location: "about:blank", CanGoBack: true})
	assert.True(t, f.back().IsSensitive())
	assert.False(t, f.forward().IsSensitive())
}

func TestToolbar_StopRefreshFollowsLoading(t *testing.T) {
	tb, f, calls := newTestToolbar(t)

	tb.Update(component.ToolbarState{Loading: true})
	assert.Equal(t, "process-stop-symbolic", f.stopRefresh().Icon)
	f.stopRefresh().Click()
	assert.Equal(t, 1, calls.stop)
	assert.Zero(t, calls.refresh)

	tb.Update(component.ToolbarState{Loading: false})
	assert.Equal(t, "view-refresh-symbolic", f.stopRefresh().Icon)
	f.stopRefresh().Click()
	assert.Equal(t, 1, calls.stop)
	assert.Equal(t, 1, calls.refresh)
}

func TestToolbar_SelectedClassMarksToggles(t *testing.T) {
	tb, f, _ := newTestToolbar(t)

	tb.Update(component.ToolbarState{DevToolsOpen: true})
	assert.True(t, f.devTools().HasCssClass(component.SelectedClass))
	assert.False(t, f.autoReload().HasCssClass(component.SelectedClass))

	tb.Update(component.ToolbarState{AutoReload: true})
	assert.False(t, f.devTools().HasCssClass(component.SelectedClass))
	assert.True(t, f.autoReload().HasCssClass(component.SelectedClass))
}

func TestToolbar_Hidden(t *testing.T) {
	tb, f, _ := newTestToolbar(t)

	tb.Update(component.ToolbarState{Hidden: true})
	assert.False(t, f.Boxes[0].IsVisible())

	tb.Update(component.ToolbarState{Hidden: false})
	assert.True(t, f.Boxes[0].IsVisible())
}

func TestToolbar_AddressKeepsTypedTextUntilLocationChanges(t *testing.T) {
	tb, f, _ := newTestToolbar(t)

	tb.Update(component.ToolbarState{Location: "https://a.example"})
	assert.Equal(t, "https://a.example", tb.AddressText())

	f.address().Type("b.exa")
	tb.Update(component.ToolbarState{Location: "https://a.example", Loading: true})
	assert.Equal(t, "b.exa", tb.AddressText())

	tb.Update(component.ToolbarState{Location: "https://c.example"})
	assert.Equal(t, "https://c.example", tb.AddressText())
}

func TestToolbar_ButtonsInvokeCallbacks(t *testing.T) {
	_, f, calls := newTestToolbar(t)

	f.back().Click()
	f.forward().Click()
	f.devTools().Click()
	f.autoReload().Click()
	f.address().Activate()

	assert.Equal(t, toolbarCalls{back: 1, forward: 1, devTools: 1, autoReload: 1, goes: 1}, *calls)
}

func TestToolbar_FocusRingSkipsDisabledHistoryButtons(t *testing.T) {
	ctx := testCtx()
	tb, f, _ := newTestToolbar(t)
	tb.Update(component.ToolbarState{Location: "about:blank"})

	inputs, active := focus.FocusableInputs(tb)
	assert.Len(t, inputs, 4, "back and forward are disabled")
	assert.Equal(t, -1, active)

	focus.FocusNext(ctx, tb)
	assert.True(t, f.stopRefresh().HasFocus())

	focus.FocusNext(ctx, tb)
	assert.True(t, f.address().HasFocus())

	focus.FocusPrevious(ctx, tb)
	focus.FocusPrevious(ctx, tb)
	assert.True(t, f.autoReload().HasFocus(), "wraps to the last enabled control")
}

func TestToolbar_ConfirmOnAddressSubmitsGo(t *testing.T) {
	ctx := testCtx()
	tb, f, calls := newTestToolbar(t)

	f.address().GrabFocus()
	assert.True(t, focus.Confirm(ctx, tb))
	assert.Equal(t, 1, calls.goes)

	f.devTools().GrabFocus()
	assert.True(t, focus.Confirm(ctx, tb))
	assert.Equal(t, 1, calls.devTools)
	assert.Equal(t, 1, calls.goes, "a button click does not submit the form")
}

func TestToolbar_SelectAddress(t *testing.T) {
	tb, f, _ := newTestToolbar(t)
	tb.Update(component.ToolbarState{Location: "about:blank"})

	tb.SelectAddress()
	assert.True(t, f.address().HasFocus())
	assert.True(t, f.address().Selected)
	assert.True(t, tb.ContainsFocus())
}

func TestToolbar_MatchesToolbarScope(t *testing.T) {
	tb, _, _ := newTestToolbar(t)
	assert.True(t, tb.MatchesScope(input.ScopeToolbar))
	assert.False(t, tb.MatchesScope(input.ScopePane))
}
