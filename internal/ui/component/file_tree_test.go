package component_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/ui/component"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout/layouttest"
)

// newSiteDir creates site/{docs/,index.html,style.css,.hidden}.
func newSiteDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	for _, name := range []string{"index.html", "style.css", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func newTestTree(t *testing.T, onOpen func()) (*component.FileTree, *fakeFactory, string) {
	t.Helper()
	dir := newSiteDir(t)
	f := newFakeFactory()
	tree := component.NewFileTree(testCtx(), component.FileTreeConfig{
		Factory: f,
		OnOpen:  onOpen,
	})
	require.NoError(t, tree.SetDirectory(dir))
	return tree, f, dir
}

func labels(buttons []*layouttest.Button) []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.Label)
	}
	return out
}

func TestFileTree_ListsDirectoriesFirstWithoutHiddenFiles(t *testing.T) {
	tree, f, dir := newTestTree(t, nil)

	assert.Equal(t, dir, tree.Dir())
	assert.Equal(t, []string{"../", "docs/", "index.html", "style.css"}, labels(f.Buttons))
	assert.Equal(t, filepath.Join(dir, "index.html"), f.Buttons[2].Tooltip)
	assert.Len(t, f.Boxes[0].Children, 4)
}

func TestFileTree_NoSelectionMatchesNoTreeScope(t *testing.T) {
	tree, _, _ := newTestTree(t, nil)

	assert.Nil(t, tree.SelectedPaths())
	assert.False(t, tree.MatchesScope(input.ScopeTreeFile))
	assert.False(t, tree.MatchesScope(input.ScopeTreeDir))
	assert.False(t, tree.ContainsFocus())
}

func TestFileTree_ClickSelectsEntry(t *testing.T) {
	opened := 0
	tree, f, dir := newTestTree(t, func() { opened++ })
	index := f.Buttons[2]

	index.Click()

	assert.Equal(t, []string{filepath.Join(dir, "index.html")}, tree.SelectedPaths())
	assert.True(t, tree.MatchesScope(input.ScopeTreeFile))
	assert.False(t, tree.MatchesScope(input.ScopeTreeDir))
	assert.True(t, index.HasCssClass(component.SelectedClass))
	assert.True(t, tree.ContainsFocus())
	assert.Zero(t, opened)

	f.Buttons[3].Click()

	assert.False(t, index.HasCssClass(component.SelectedClass))
	assert.Equal(t, []string{filepath.Join(dir, "style.css")}, tree.SelectedPaths())
}

func TestFileTree_SecondClickOpensSelectedFile(t *testing.T) {
	opened := 0
	_, f, _ := newTestTree(t, func() { opened++ })

	f.Buttons[2].Click()
	f.Buttons[2].Click()

	assert.Equal(t, 1, opened)
}

func TestFileTree_SelectedDirectoryMatchesDirectoryScope(t *testing.T) {
	tree, f, dir := newTestTree(t, nil)

	f.Buttons[1].Click()

	assert.True(t, tree.MatchesScope(input.ScopeTreeDir))
	assert.False(t, tree.MatchesScope(input.ScopeTreeFile))
	assert.Equal(t, []string{filepath.Join(dir, "docs")}, tree.SelectedPaths())
}

func TestFileTree_SecondClickEntersDirectory(t *testing.T) {
	tree, f, dir := newTestTree(t, nil)
	docs := f.Buttons[1]

	docs.Click()
	docs.Click()

	assert.Equal(t, filepath.Join(dir, "docs"), tree.Dir())
	assert.Nil(t, tree.SelectedPaths())
	assert.Len(t, f.Boxes[0].Children, 1, "an empty directory lists only its parent")

	parent := f.Buttons[len(f.Buttons)-1]
	assert.Equal(t, "../", parent.Label)
	parent.Click()
	parent.Click()
	assert.Equal(t, dir, tree.Dir())
}

func TestFileTree_Select(t *testing.T) {
	tree, _, dir := newTestTree(t, nil)

	assert.True(t, tree.Select(filepath.Join(dir, "style.css")))
	assert.Equal(t, []string{filepath.Join(dir, "style.css")}, tree.SelectedPaths())
	assert.False(t, tree.ContainsFocus())
	assert.False(t, tree.Select(filepath.Join(dir, ".hidden")))
}

func TestFileTree_SetDirectoryError(t *testing.T) {
	tree := component.NewFileTree(testCtx(), component.FileTreeConfig{Factory: newFakeFactory()})

	err := tree.SetDirectory(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Empty(t, tree.Dir())
}

type workspaceStub struct{}

func (workspaceStub) MatchesScope(scope input.Scope) bool { return scope == input.ScopeWorkspace }
func (workspaceStub) ParentNode() input.Node             { return nil }

func TestFileTree_UnselectedTreeBubblesToParent(t *testing.T) {
	tree := component.NewFileTree(testCtx(), component.FileTreeConfig{
		Factory: newFakeFactory(),
		Parent:  workspaceStub{},
	})
	registry := input.NewCommandRegistry()
	var reached input.Node
	registry.Add(input.ScopeWorkspace, map[string]input.Command{
		"test:open": {DidDispatch: func(_ context.Context, e *input.CommandEvent) { reached = e.CurrentTarget }},
	})

	assert.True(t, registry.Dispatch(testCtx(), tree, "test:open"))
	assert.Equal(t, input.Node(workspaceStub{}), reached)
}
