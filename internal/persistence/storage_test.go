package persistence

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/config"
)

func exerciseStorage(t *testing.T, store Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "ticketapp_session", `"tok"`))
	val, err := store.Get(ctx, "ticketapp_session")
	require.NoError(t, err)
	assert.Equal(t, `"tok"`, val)

	require.NoError(t, store.Set(ctx, "ticketapp_session", `"tok2"`))
	val, err = store.Get(ctx, "ticketapp_session")
	require.NoError(t, err)
	assert.Equal(t, `"tok2"`, val)

	require.NoError(t, store.Delete(ctx, "ticketapp_session"))
	_, err = store.Get(ctx, "ticketapp_session")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, "never-set"))
	require.NoError(t, store.Ping(ctx))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.json")
	store, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)
	exerciseStorage(t, store)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.json")

	first, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user_data", `{"email":"a@b.com","password":"secret1"}`))

	second, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)
	val, err := second.Get(ctx, "user_data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret1"}`, val)
}

func TestFileStorageCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFile(path, zap.NewNop())
	require.NoError(t, err)
	_, err = store.Get(ctx, "ticketapp_session")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	require.Error(t, store.Set(ctx, "k", "v"))
	require.Error(t, store.Ping(ctx))
}

func TestNewFileRequiresPath(t *testing.T) {
	_, err := NewFile("", zap.NewNop())
	require.Error(t, err)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, config.Config{Storage: config.StorageConfig{Backend: config.StorageBackendMemory}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, mem)

	file, err := Open(ctx, config.Config{Storage: config.StorageConfig{
		Backend:  config.StorageBackendFile,
		FilePath: filepath.Join(t.TempDir(), "p.json"),
	}}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &File{}, file)

	_, err = Open(ctx, config.Config{Storage: config.StorageConfig{Backend: config.StorageBackendPostgres}}, zap.NewNop())
	require.Error(t, err, "postgres backend needs a DSN")

	_, err = Open(ctx, config.Config{Storage: config.StorageConfig{Backend: "s3"}}, zap.NewNop())
	require.Error(t, err)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	content, err := fs.ReadFile(migrationFiles, migrationsDir+"/"+entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), "ticketflow_kv")
}

func TestRunMigrationsWithoutPool(t *testing.T) {
	require.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}
