package repository

import (
	"context"

	"github.com/bnema/webpane/internal/domain/entity"
)

//go:generate mockgen -source=pane_state.go -destination=mocks/mock_pane_state.go -package=mock_repository

// PaneStateRepository persists open panes so they can be restored on the next start.
type PaneStateRepository interface {
	// Save creates or updates a saved pane.
	Save(ctx context.Context, pane *entity.SavedPane) error

	// ReplaceAll atomically replaces every saved pane with panes.
	ReplaceAll(ctx context.Context, panes []*entity.SavedPane) error

	// GetAll returns saved panes ordered by position.
	GetAll(ctx context.Context) ([]*entity.SavedPane, error)

	// Delete removes a saved pane by ID.
	Delete(ctx context.Context, id entity.PaneID) error

	// DeleteAll removes every saved pane and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
