package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/domain/repository"
	"github.com/bnema/webpane/internal/logging"
)

const (
	upsertPaneStateQuery = `
INSERT INTO pane_states (pane_id, source_path, position, state_json, saved_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(pane_id) DO UPDATE SET
    source_path = excluded.source_path,
    position    = excluded.position,
    state_json  = excluded.state_json,
    saved_at    = excluded.saved_at`

	listPaneStatesQuery = `
SELECT pane_id, source_path, position, state_json, saved_at
FROM pane_states
ORDER BY position ASC, saved_at ASC`

	deletePaneStateQuery     = `DELETE FROM pane_states WHERE pane_id = ?`
	deleteAllPaneStatesQuery = `DELETE FROM pane_states`
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type paneStateRepo struct {
	db *sql.DB
}

// NewPaneStateRepository creates a new SQLite-backed pane state repository.
func NewPaneStateRepository(db *sql.DB) repository.PaneStateRepository {
	return &paneStateRepo{db: db}
}

func (r *paneStateRepo) Save(ctx context.Context, pane *entity.SavedPane) error {
	if pane == nil {
		return errors.New("saved pane is nil")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("pane_id", string(pane.ID)).Int("position", pane.Position).Msg("saving pane state")

	return upsertPane(ctx, r.db, pane)
}

// ReplaceAll swaps the stored set for panes in a single transaction.
func (r *paneStateRepo) ReplaceAll(ctx context.Context, panes []*entity.SavedPane) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllPaneStatesQuery); err != nil {
		return fmt.Errorf("clear pane states: %w", err)
	}
	for _, pane := range panes {
		if pane == nil {
			continue
		}
		if err = upsertPane(ctx, tx, pane); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit pane states: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(panes)).Msg("pane states replaced")
	return nil
}

func (r *paneStateRepo) GetAll(ctx context.Context) ([]*entity.SavedPane, error) {
	rows, err := r.db.QueryContext(ctx, listPaneStatesQuery)
	if err != nil {
		return nil, fmt.Errorf("query pane states: %w", err)
	}
	defer rows.Close()

	var panes []*entity.SavedPane
	for rows.Next() {
		var (
			pane    entity.SavedPane
			id      string
			data    string
			savedAt int64
		)
		if err := rows.Scan(&id, &pane.SourcePath, &pane.Position, &data, &savedAt); err != nil {
			return nil, fmt.Errorf("scan pane state: %w", err)
		}
		pane.ID = entity.PaneID(id)
		pane.Data = []byte(data)
		pane.SavedAt = time.UnixMilli(savedAt)
		panes = append(panes, &pane)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pane states: %w", err)
	}
	return panes, nil
}

func (r *paneStateRepo) Delete(ctx context.Context, id entity.PaneID) error {
	logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("deleting pane state")

	if _, err := r.db.ExecContext(ctx, deletePaneStateQuery, string(id)); err != nil {
		return fmt.Errorf("delete pane state: %w", err)
	}
	return nil
}

func (r *paneStateRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAllPaneStatesQuery)
	if err != nil {
		return 0, fmt.Errorf("delete pane states: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func upsertPane(ctx context.Context, db execer, pane *entity.SavedPane) error {
	savedAt := pane.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	_, err := db.ExecContext(ctx, upsertPaneStateQuery,
		string(pane.ID),
		pane.SourcePath,
		pane.Position,
		string(pane.Data),
		savedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save pane state %s: %w", pane.ID, err)
	}
	return nil
}
