package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *repository.SQLiteDocumentsRepository {
	t.Helper()
	db, err := repository.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return repository.NewSQLiteDocumentsRepoWithDB(db)
}

func TestSQLiteDocumentsRepository(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	t.Run("empty slot", func(t *testing.T) {
		_, err := repo.Load(ctx, storageKey)
		assert.ErrorIs(t, err, errorvalues.ErrDocumentNotFound)
	})
	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, storageKey, document))
		data, err := repo.Load(ctx, storageKey)
		require.NoError(t, err)
		assert.Equal(t, document, data)
	})
	t.Run("overwrite", func(t *testing.T) {
		next := []byte(`{"logs":{},"profile":{"name":"B"}}`)
		require.NoError(t, repo.Save(ctx, storageKey, next))
		data, err := repo.Load(ctx, storageKey)
		require.NoError(t, err)
		assert.Equal(t, next, data)
	})
	t.Run("keys are independent", func(t *testing.T) {
		_, err := repo.Load(ctx, "other_key")
		assert.ErrorIs(t, err, errorvalues.ErrDocumentNotFound)
	})
}

func TestSQLiteFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	repo, err := repository.NewSQLiteDocumentsRepo(path)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, storageKey, document))

	db, err := repository.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()
	data, err := repository.NewSQLiteDocumentsRepoWithDB(db).Load(ctx, storageKey)
	require.NoError(t, err)
	assert.Equal(t, document, data)
}
