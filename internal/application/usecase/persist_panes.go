package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/domain/repository"
	"github.com/bnema/webpane/internal/logging"
)

// PersistPanesUseCase saves open panes on shutdown and restores them on start.
type PersistPanesUseCase struct {
	repo repository.PaneStateRepository
}

// NewPersistPanesUseCase creates a new PersistPanesUseCase.
func NewPersistPanesUseCase(repo repository.PaneStateRepository) *PersistPanesUseCase {
	return &PersistPanesUseCase{repo: repo}
}

// PaneSnapshot is the state of one open pane at save time.
type PaneSnapshot struct {
	ID         entity.PaneID
	SourcePath string
	State      entity.PaneState
}

// RestoredPane is a saved pane decoded for reopening.
type RestoredPane struct {
	ID         entity.PaneID
	SourcePath string
	State      entity.PaneState
}

// SaveAll replaces the stored panes with panes, in order.
func (uc *PersistPanesUseCase) SaveAll(ctx context.Context, panes []PaneSnapshot) error {
	log := logging.FromContext(ctx)

	saved := make([]*entity.SavedPane, 0, len(panes))
	for i, p := range panes {
		sp, err := entity.NewSavedPane(p.ID, p.SourcePath, i, p.State)
		if err != nil {
			return fmt.Errorf("serialize pane %s: %w", p.ID, err)
		}
		saved = append(saved, sp)
	}

	if err := uc.repo.ReplaceAll(ctx, saved); err != nil {
		return fmt.Errorf("save panes: %w", err)
	}

	log.Info().Int("pane_count", len(saved)).Msg("pane states saved")
	return nil
}

// Restore decodes every saved pane. Fields missing from a saved blob take their
// value from defaults. Panes that cannot be decoded are skipped.
func (uc *PersistPanesUseCase) Restore(ctx context.Context, defaults entity.PaneDefaults) ([]RestoredPane, error) {
	log := logging.FromContext(ctx)

	saved, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved panes: %w", err)
	}

	restored := make([]RestoredPane, 0, len(saved))
	for _, sp := range saved {
		state, err := sp.Decode(defaults)
		if err == nil {
			err = state.Validate()
		}
		if err != nil {
			log.Warn().Err(err).Str("pane_id", string(sp.ID)).Msg("skipping unreadable saved pane")
			continue
		}
		restored = append(restored, RestoredPane{
			ID:         sp.ID,
			SourcePath: sp.SourcePath,
			State:      state,
		})
	}

	log.Info().
		Int("saved", len(saved)).
		Int("restored", len(restored)).
		Msg("pane states restored")
	return restored, nil
}

// List returns the saved panes without decoding them.
func (uc *PersistPanesUseCase) List(ctx context.Context) ([]*entity.SavedPane, error) {
	saved, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved panes: %w", err)
	}
	return saved, nil
}

// Forget removes one saved pane.
func (uc *PersistPanesUseCase) Forget(ctx context.Context, id entity.PaneID) error {
	if id == "" {
		return fmt.Errorf("pane id required")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete saved pane %s: %w", id, err)
	}
	return nil
}

// Clear removes every saved pane and returns how many were removed.
func (uc *PersistPanesUseCase) Clear(ctx context.Context) (int64, error) {
	n, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear saved panes: %w", err)
	}
	logging.FromContext(ctx).Info().Int64("removed", n).Msg("saved panes cleared")
	return n, nil
}
