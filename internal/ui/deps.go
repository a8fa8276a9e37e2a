// Package ui provides the GTK4 host window for web panes.
package ui

import (
	"context"
	"fmt"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/domain/repository"
	"github.com/bnema/webpane/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	// Core context and configuration
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager // optional, enables live log level changes

	// InitialPath opens a pane for this file on startup (optional).
	InitialPath string
	// RestorePanes reopens the panes saved on the last shutdown.
	RestorePanes bool

	// Infrastructure
	Factory     port.WebViewFactory
	FileWatcher port.FileWatcher
	PaneRepo    repository.PaneStateRepository // optional, disables persistence when nil
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Factory == nil {
		return ErrMissingDependency("Factory")
	}
	if d.FileWatcher == nil {
		return ErrMissingDependency("FileWatcher")
	}
	return nil
}

// ErrMissingDependency creates an error for a missing required dependency.
func ErrMissingDependency(name string) error {
	return fmt.Errorf("missing required dependency: %s", name)
}
