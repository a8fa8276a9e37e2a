package component

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/logging"
	"github.com/bnema/webpane/internal/ui/input"
	"github.com/bnema/webpane/internal/ui/layout"
)

const (
	iconFolder = "folder-symbolic"
	iconFile   = "text-x-generic-symbolic"

	parentDirLabel = ".."
)

// FileTreeConfig holds configuration for FileTree.
type FileTreeConfig struct {
	Factory layout.WidgetFactory
	Parent  input.Node
	// OnOpen runs when the selected file is clicked again.
	OnOpen func()
}

type treeEntry struct {
	path   string
	isDir  bool
	button layout.ButtonWidget
}

// FileTree is a sidebar listing the entries of one directory.
//
// Its selection is the file selection the open command reads, and the tree
// matches the file or directory tree scope depending on the selected entry.
// Clicking an entry selects it; clicking the selected entry again enters a
// directory or opens a file.
type FileTree struct {
	ctx    context.Context
	box    layout.BoxWidget
	parent input.Node
	onOpen func()

	factory  layout.WidgetFactory
	dir      string
	entries  []*treeEntry
	selected *treeEntry
}

var (
	_ input.Node         = (*FileTree)(nil)
	_ port.FileSelection = (*FileTree)(nil)
)

// NewFileTree builds an empty tree. Call SetDirectory to fill it.
func NewFileTree(ctx context.Context, cfg FileTreeConfig) *FileTree {
	box := cfg.Factory.NewBox(layout.OrientationVertical, 0)
	box.AddCssClass("webpane-tree")
	box.SetVexpand(true)

	return &FileTree{
		ctx:     ctx,
		box:     box,
		parent:  cfg.Parent,
		onOpen:  cfg.OnOpen,
		factory: cfg.Factory,
	}
}

// Widget returns the tree's root widget.
func (t *FileTree) Widget() layout.Widget { return t.box }

// Dir returns the directory currently listed.
func (t *FileTree) Dir() string { return t.dir }

// SetDirectory lists dir, replacing the current entries and clearing the
// selection. Hidden entries are skipped and directories come first.
func (t *FileTree) SetDirectory(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	list, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", abs, err)
	}

	for _, e := range t.entries {
		t.box.Remove(e.button)
	}
	t.entries = nil
	t.selected = nil
	t.dir = abs

	if parent := filepath.Dir(abs); parent != abs {
		t.addEntry(parent, parentDirLabel, true)
	}

	visible := make([]os.DirEntry, 0, len(list))
	for _, e := range list {
		if !strings.HasPrefix(e.Name(), ".") {
			visible = append(visible, e)
		}
	}
	isDir := make(map[string]bool, len(visible))
	for _, e := range visible {
		isDir[e.Name()] = entryIsDir(abs, e)
	}
	// ReadDir sorts by name; keep that order within each group.
	sort.SliceStable(visible, func(i, j int) bool {
		return isDir[visible[i].Name()] && !isDir[visible[j].Name()]
	})
	for _, e := range visible {
		t.addEntry(filepath.Join(abs, e.Name()), e.Name(), isDir[e.Name()])
	}

	logging.FromContext(t.ctx).Debug().
		Str("dir", abs).
		Int("entries", len(t.entries)).
		Msg("file tree listed")
	return nil
}

// entryIsDir follows symlinks so a link to a directory is entered, not opened.
func entryIsDir(dir string, e os.DirEntry) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}

func (t *FileTree) addEntry(path, label string, isDir bool) {
	icon := iconFile
	if isDir {
		icon = iconFolder
		label += "/"
	}
	button := t.factory.NewButton(icon)
	button.SetLabel(label)
	button.SetTooltipText(path)
	button.AddCssClass("webpane-tree-entry")

	entry := &treeEntry{path: path, isDir: isDir, button: button}
	button.ConnectClicked(func() { t.activate(entry) })

	t.entries = append(t.entries, entry)
	t.box.Append(button)
}

func (t *FileTree) activate(entry *treeEntry) {
	if t.selected != entry {
		t.selectEntry(entry)
		entry.button.GrabFocus()
		return
	}
	if entry.isDir {
		if err := t.SetDirectory(entry.path); err != nil {
			logging.FromContext(t.ctx).Warn().Err(err).Str("dir", entry.path).Msg("failed to list directory")
		}
		return
	}
	call(t.onOpen)
}

// Select selects the entry for path without moving keyboard focus.
// It reports whether the path is listed.
func (t *FileTree) Select(path string) bool {
	for _, e := range t.entries {
		if e.path == path {
			t.selectEntry(e)
			return true
		}
	}
	return false
}

func (t *FileTree) selectEntry(entry *treeEntry) {
	if t.selected != nil {
		layout.SetClass(t.selected.button, SelectedClass, false)
	}
	t.selected = entry
	layout.SetClass(entry.button, SelectedClass, true)
}

// SelectedPaths returns the selected entry's path, or nil when nothing is selected.
func (t *FileTree) SelectedPaths() []string {
	if t.selected == nil {
		return nil
	}
	return []string{t.selected.path}
}

// MatchesScope implements input.Node.
func (t *FileTree) MatchesScope(scope input.Scope) bool {
	if t.selected == nil {
		return false
	}
	if t.selected.isDir {
		return scope == input.ScopeTreeDir
	}
	return scope == input.ScopeTreeFile
}

// ParentNode implements input.Node.
func (t *FileTree) ParentNode() input.Node {
	return t.parent
}

// ContainsFocus reports whether one of the entries has keyboard focus.
func (t *FileTree) ContainsFocus() bool {
	for _, e := range t.entries {
		if e.button.HasFocus() {
			return true
		}
	}
	return false
}
