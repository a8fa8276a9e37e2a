// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaneID uniquely identifies an open web pane.
type PaneID string

// NewPaneID returns a fresh identifier.
// Format: pane_YYYYMMDD_HHMMSS_xxxxxx (timestamp + 6 random hex chars)
func NewPaneID() PaneID {
	random := uuid.New()
	return PaneID("pane_" + time.Now().Format("20060102_150405") + "_" + random.String()[:6])
}

// Pane titles.
const (
	DefaultPaneTitle  = "Webview"
	UntitledPageTitle = "Web View"
)

// Bounds for the auto reload delay, in milliseconds.
const (
	AutoReloadWaitMin = 0
	AutoReloadWaitMax = 2000
)

// ErrInvalidPaneState is returned when a pane state fails validation or cannot be decoded.
var ErrInvalidPaneState = errors.New("invalid pane state")

// PaneDefaults is the configuration snapshot a pane is constructed from.
// It is resolved once; later configuration changes do not reach existing panes.
type PaneDefaults struct {
	Homepage       string
	URLTemplate    string
	AutoReload     bool
	HideToolbar    bool
	ShowDevTools   bool
	AutoReloadWait int
}

// DefaultPaneDefaults returns the built-in defaults used when no configuration is available.
func DefaultPaneDefaults() PaneDefaults {
	return PaneDefaults{
		Homepage:       "about:blank",
		URLTemplate:    "file://{full_path}/{name_with_ext}",
		AutoReloadWait: 0,
	}
}

// PaneState is the serializable state of a single web pane.
type PaneState struct {
	Title          string `json:"title"`
	Location       string `json:"location"`
	AutoReload     bool   `json:"autoReload"`
	HideToolbar    bool   `json:"hideToolbar"`
	ShowDevTools   bool   `json:"showDevTools"`
	AutoReloadWait int    `json:"autoReloadWait"`
}

// NewPaneState builds the initial state for a pane displaying location.
func NewPaneState(location string, defaults PaneDefaults) PaneState {
	return PaneState{
		Title:          DefaultPaneTitle,
		Location:       location,
		AutoReload:     defaults.AutoReload,
		HideToolbar:    defaults.HideToolbar,
		ShowDevTools:   defaults.ShowDevTools,
		AutoReloadWait: ClampAutoReloadWait(defaults.AutoReloadWait),
	}
}

// PaneStateUpdate is a partial update. Nil fields are left untouched.
type PaneStateUpdate struct {
	Title          *string
	Location       *string
	AutoReload     *bool
	HideToolbar    *bool
	ShowDevTools   *bool
	AutoReloadWait *int
}

// IsEmpty reports whether the update carries no field.
func (u PaneStateUpdate) IsEmpty() bool {
	return u.Title == nil && u.Location == nil && u.AutoReload == nil &&
		u.HideToolbar == nil && u.ShowDevTools == nil && u.AutoReloadWait == nil
}

// Apply merges u into the state and returns the previous value.
func (s *PaneState) Apply(u PaneStateUpdate) PaneState {
	prev := *s
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Location != nil {
		s.Location = *u.Location
	}
	if u.AutoReload != nil {
		s.AutoReload = *u.AutoReload
	}
	if u.HideToolbar != nil {
		s.HideToolbar = *u.HideToolbar
	}
	if u.ShowDevTools != nil {
		s.ShowDevTools = *u.ShowDevTools
	}
	if u.AutoReloadWait != nil {
		s.AutoReloadWait = ClampAutoReloadWait(*u.AutoReloadWait)
	}
	return prev
}

// AutoReloadDelay returns the auto reload wait as a duration.
func (s PaneState) AutoReloadDelay() time.Duration {
	return time.Duration(ClampAutoReloadWait(s.AutoReloadWait)) * time.Millisecond
}

// Validate checks the state invariants.
func (s PaneState) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Location) == "" {
		problems = append(problems, "location must not be empty")
	}
	if s.AutoReloadWait < AutoReloadWaitMin || s.AutoReloadWait > AutoReloadWaitMax {
		problems = append(problems, fmt.Sprintf("autoReloadWait must be between %d and %d (got %d)",
			AutoReloadWaitMin, AutoReloadWaitMax, s.AutoReloadWait))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPaneState, strings.Join(problems, "; "))
	}
	return nil
}

// Marshal encodes the state as the opaque blob handed to the host for persistence.
func (s PaneState) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalPaneState decodes a blob produced by Marshal. Fields missing from the
// blob take their value from defaults, the way a freshly opened pane would.
func UnmarshalPaneState(data []byte, defaults PaneDefaults) (PaneState, error) {
	var raw struct {
		Title          *string `json:"title"`
		Location       *string `json:"location"`
		AutoReload     *bool   `json:"autoReload"`
		HideToolbar    *bool   `json:"hideToolbar"`
		ShowDevTools   *bool   `json:"showDevTools"`
		AutoReloadWait *int    `json:"autoReloadWait"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return PaneState{}, fmt.Errorf("%w: %v", ErrInvalidPaneState, err)
	}

	location := defaults.Homepage
	if location == "" {
		location = "about:blank"
	}
	state := NewPaneState(location, defaults)
	state.Apply(PaneStateUpdate{
		Title:          raw.Title,
		Location:       raw.Location,
		AutoReload:     raw.AutoReload,
		HideToolbar:    raw.HideToolbar,
		ShowDevTools:   raw.ShowDevTools,
		AutoReloadWait: raw.AutoReloadWait,
	})
	return state, nil
}

// ClampAutoReloadWait bounds ms to the accepted auto reload range.
func ClampAutoReloadWait(ms int) int {
	if ms < AutoReloadWaitMin {
		return AutoReloadWaitMin
	}
	if ms > AutoReloadWaitMax {
		return AutoReloadWaitMax
	}
	return ms
}

// SavedPane is a pane persisted across application restarts. Data holds the
// blob produced by PaneState.Marshal.
type SavedPane struct {
	ID         PaneID
	SourcePath string // File the pane was opened from, empty for the homepage
	Position   int
	Data       []byte
	SavedAt    time.Time
}

// NewSavedPane serializes state into a SavedPane.
func NewSavedPane(id PaneID, sourcePath string, position int, state PaneState) (*SavedPane, error) {
	data, err := state.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal pane state: %w", err)
	}
	return &SavedPane{
		ID:         id,
		SourcePath: sourcePath,
		Position:   position,
		Data:       data,
		SavedAt:    time.Now(),
	}, nil
}

// Decode restores the pane state, filling missing fields from defaults.
func (p *SavedPane) Decode(defaults PaneDefaults) (PaneState, error) {
	return UnmarshalPaneState(p.Data, defaults)
}

// Ptr returns a pointer to v. Handy for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}
