// Package url provides URL derivation and manipulation utilities for web panes.
package url

import (
	"strings"
)

var knownSchemes = []string{
	"http://",
	"https://",
	"file://",
	"about:",
	"data:",
	"view-source:",
}

// HasScheme reports whether input already starts with a scheme the pane loads directly.
func HasScheme(input string) bool {
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(input, scheme) {
			return true
		}
	}
	return false
}

// Normalize turns address bar input into something the web view can load.
// Inputs with a scheme are kept as typed. Absolute paths become file URLs and
// dotted hosts get an https:// prefix.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if HasScheme(input) {
		return input
	}

	if strings.HasPrefix(input, "/") {
		return FileURL(input)
	}

	if LooksLikeURL(input) {
		return "https://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a host or URL rather than free text.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if HasScheme(input) {
		return true
	}
	if strings.HasPrefix(input, "localhost") {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}
