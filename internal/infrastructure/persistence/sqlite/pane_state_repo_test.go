package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/infrastructure/persistence/sqlite"
)

func savedPane(t *testing.T, id, source string, position int, location string) *entity.SavedPane {
	t.Helper()
	state := entity.NewPaneState(location, entity.DefaultPaneDefaults())
	sp, err := entity.NewSavedPane(entity.PaneID(id), source, position, state)
	require.NoError(t, err)
	return sp
}

func TestPaneStateRepository_SaveAndGetAll(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	first := savedPane(t, "pane-1", "/docs/a.html", 1, "file:///docs/a.html")
	first.SavedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := savedPane(t, "pane-2", "", 0, "about:blank")

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, entity.PaneID("pane-2"), got[0].ID, "ordered by position")
	assert.Equal(t, entity.PaneID("pane-1"), got[1].ID)
	assert.Equal(t, "/docs/a.html", got[1].SourcePath)
	assert.True(t, got[1].SavedAt.Equal(first.SavedAt))

	state, err := got[1].Decode(entity.DefaultPaneDefaults())
	require.NoError(t, err)
	assert.Equal(t, "file:///docs/a.html", state.Location)
	assert.Equal(t, entity.DefaultPaneTitle, state.Title)
}

func TestPaneStateRepository_SaveUpserts(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, savedPane(t, "pane-1", "/a.md", 0, "file:///a.md")))
	require.NoError(t, repo.Save(ctx, savedPane(t, "pane-1", "/b.md", 3, "file:///b.md")))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/b.md", got[0].SourcePath)
	assert.Equal(t, 3, got[0].Position)
}

func TestPaneStateRepository_SaveNil(t *testing.T) {
	repo := sqlite.NewPaneStateRepository(openTestDB(t))
	assert.Error(t, repo.Save(testCtx(), nil))
}

func TestPaneStateRepository_ReplaceAll(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, savedPane(t, "stale", "", 0, "about:blank")))

	require.NoError(t, repo.ReplaceAll(ctx, []*entity.SavedPane{
		savedPane(t, "pane-a", "/a.html", 0, "file:///a.html"),
		nil,
		savedPane(t, "pane-b", "/b.html", 1, "file:///b.html"),
	}))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.PaneID("pane-a"), got[0].ID)
	assert.Equal(t, entity.PaneID("pane-b"), got[1].ID)
}

func TestPaneStateRepository_ReplaceAllEmptyClears(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, savedPane(t, "pane-1", "", 0, "about:blank")))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPaneStateRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, savedPane(t, "keep", "", 0, "about:blank")))
	require.NoError(t, repo.Save(ctx, savedPane(t, "drop", "", 1, "about:blank")))

	require.NoError(t, repo.Delete(ctx, "drop"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.PaneID("keep"), got[0].ID)
}

func TestPaneStateRepository_DeleteAll(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPaneStateRepository(openTestDB(t))

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, savedPane(t, id, "", i, "about:blank")))
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, sqlite.RunMigrations(testCtx(), db))
}
