package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/webpane/internal/application/port"
	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/domain/repository"
)

// LazyPaneStateRepository wraps a pane state repository with lazy database initialization.
type LazyPaneStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.PaneStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyPaneStateRepository creates a lazy-loading pane state repository.
func NewLazyPaneStateRepository(provider port.DatabaseProvider) repository.PaneStateRepository {
	return &LazyPaneStateRepository{provider: provider}
}

func (r *LazyPaneStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPaneStateRepository(db)
	})
	return r.initErr
}

func (r *LazyPaneStateRepository) Save(ctx context.Context, pane *entity.SavedPane) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, pane)
}

func (r *LazyPaneStateRepository) ReplaceAll(ctx context.Context, panes []*entity.SavedPane) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.ReplaceAll(ctx, panes)
}

func (r *LazyPaneStateRepository) GetAll(ctx context.Context) ([]*entity.SavedPane, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}

func (r *LazyPaneStateRepository) Delete(ctx context.Context, id entity.PaneID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, id)
}

func (r *LazyPaneStateRepository) DeleteAll(ctx context.Context) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteAll(ctx)
}
