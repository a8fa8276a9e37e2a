package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/domain/url"
	"github.com/bnema/webpane/internal/logging"
)

// PaneURIPrefix identifies URIs handled by the web pane opener.
const PaneURIPrefix = "webpane://open/"

// ErrNotPaneURI is returned when an opener is asked for a URI it does not handle.
var ErrNotPaneURI = errors.New("not a web pane uri")

// OpenSource tells where the open command was invoked from.
type OpenSource int

const (
	// OpenFromWorkspace opens the homepage.
	OpenFromWorkspace OpenSource = iota
	// OpenFromEditor opens the active editor's file.
	OpenFromEditor
	// OpenFromTree opens the first selected tree entry.
	OpenFromTree
)

// String returns a human-readable representation of the source.
func (s OpenSource) String() string {
	switch s {
	case OpenFromEditor:
		return "editor"
	case OpenFromTree:
		return "tree"
	default:
		return "workspace"
	}
}

// PaneURI returns the opener URI for filePath.
func PaneURI(filePath string) string {
	return PaneURIPrefix + filePath
}

// PathFromPaneURI extracts the file path from a pane URI.
// ok is false when uri does not carry the pane prefix.
func PathFromPaneURI(uri string) (path string, ok bool) {
	if !strings.HasPrefix(uri, PaneURIPrefix) {
		return "", false
	}
	return strings.TrimPrefix(uri, PaneURIPrefix), true
}

// OpenPaneUseCase resolves what a newly opened pane displays.
type OpenPaneUseCase struct {
	selection port.FileSelection
	editor    port.ActiveEditor
}

// NewOpenPaneUseCase creates a new OpenPaneUseCase. Either provider may be nil.
func NewOpenPaneUseCase(selection port.FileSelection, editor port.ActiveEditor) *OpenPaneUseCase {
	return &OpenPaneUseCase{
		selection: selection,
		editor:    editor,
	}
}

// SourcePath returns the file the open command targets, or "" for the homepage.
func (uc *OpenPaneUseCase) SourcePath(source OpenSource) string {
	switch source {
	case OpenFromTree:
		if uc.selection == nil {
			return ""
		}
		if paths := uc.selection.SelectedPaths(); len(paths) > 0 {
			return paths[0]
		}
		return ""
	case OpenFromEditor:
		if uc.editor == nil {
			return ""
		}
		return uc.editor.ActiveFilePath()
	default:
		return ""
	}
}

// OpenPaneInput contains the parameters for opening a pane.
type OpenPaneInput struct {
	URI      string
	Defaults entity.PaneDefaults
}

// OpenPaneOutput contains the initial state of the new pane.
type OpenPaneOutput struct {
	URI        string
	SourcePath string
	State      entity.PaneState
}

// Execute builds the initial pane state for input.URI.
// It returns ErrNotPaneURI for URIs without the pane prefix.
func (uc *OpenPaneUseCase) Execute(ctx context.Context, input OpenPaneInput) (*OpenPaneOutput, error) {
	log := logging.FromContext(ctx)

	sourcePath, ok := PathFromPaneURI(input.URI)
	if !ok {
		log.Debug().Str("uri", input.URI).Msg("declining uri without pane prefix")
		return nil, ErrNotPaneURI
	}

	location := url.ResolveTemplate(sourcePath, input.Defaults.URLTemplate, input.Defaults.Homepage)
	state := entity.NewPaneState(location, input.Defaults)

	log.Info().
		Str("source_path", sourcePath).
		Str("location", location).
		Msg("opening web pane")

	return &OpenPaneOutput{
		URI:        input.URI,
		SourcePath: sourcePath,
		State:      state,
	}, nil
}
