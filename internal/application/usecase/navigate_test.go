package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webpane/internal/application/usecase"
)

func TestResolveGo(t *testing.T) {
	tests := []struct {
		name         string
		typed        string
		current      string
		wantAction   usecase.GoAction
		wantLocation string
	}{
		{"same address reloads", "https://example.com", "https://example.com", usecase.GoReload, "https://example.com"},
		{"new address navigates", "https://other.test/page", "https://example.com", usecase.GoNavigate, "https://other.test/page"},
		{"bare host gets a scheme", "example.org", "about:blank", usecase.GoNavigate, "https://example.org"},
		{"absolute path becomes a file url", "/tmp/a.html", "about:blank", usecase.GoNavigate, "file:///tmp/a.html"},
		{"normalized equal to current reloads", "  https://example.com ", "https://example.com", usecase.GoReload, "https://example.com"},
		{"blank input is rejected", "   ", "https://example.com", usecase.GoRejected, ""},
		{"empty input is rejected", "", "https://example.com", usecase.GoRejected, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, location := usecase.ResolveGo(tt.typed, tt.current)
			assert.Equal(t, tt.wantAction, action, "action %s", action)
			assert.Equal(t, tt.wantLocation, location)
		})
	}
}

func TestGoAction_String(t *testing.T) {
	assert.Equal(t, "reload", usecase.GoReload.String())
	assert.Equal(t, "navigate", usecase.GoNavigate.String())
	assert.Equal(t, "rejected", usecase.GoRejected.String())
}
