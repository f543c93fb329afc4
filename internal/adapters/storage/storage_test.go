package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	repos, err := Open(context.Background(), config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, repos.Driver)
	assert.NoError(t, repos.Close())
}

func TestOpen_SQLiteFilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pets.db")
	cfg := config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: path}

	repos, err := Open(ctx, cfg)
	require.NoError(t, err)
	created, err := repos.Accounts.Create(ctx, accounts.Account{
		Email: "ana@example.com", PasswordHash: "h", FirstName: "Ana", LastName: "P",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	// reabrir aplica el schema de nuevo sin error y conserva los datos
	repos, err = Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	got, err := repos.Accounts.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "mongo"})
	assert.ErrorContains(t, err, "mongo")
}
