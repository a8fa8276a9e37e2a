package usecase

import (
	"strings"

	"github.com/bnema/webpane/internal/domain/url"
)

// GoAction is the outcome of submitting the address entry.
type GoAction int

const (
	// GoReload reloads the current page.
	GoReload GoAction = iota
	// GoNavigate loads a new location.
	GoNavigate
	// GoRejected leaves the page alone and selects the address text.
	GoRejected
)

// String returns a human-readable representation of the action.
func (a GoAction) String() string {
	switch a {
	case GoReload:
		return "reload"
	case GoNavigate:
		return "navigate"
	case GoRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ResolveGo decides what submitting typed does when current is displayed.
// location is only meaningful for GoNavigate.
func ResolveGo(typed, current string) (action GoAction, location string) {
	if typed == current {
		return GoReload, current
	}
	if strings.TrimSpace(typed) == "" {
		return GoRejected, ""
	}
	normalized := url.Normalize(typed)
	if normalized == current {
		return GoReload, current
	}
	return GoNavigate, normalized
}
