package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Contains(t, dsn(MemoryPath), "file::memory:?")
	assert.Contains(t, dsn("./data/pets.db"), "file:./data/pets.db?")
	assert.Contains(t, dsn("file:pets.db?mode=rwc"), "file:pets.db?mode=rwc&")
	assert.Contains(t, dsn("pets.db"), "_time_format=sqlite")
}

func TestConstraintErrors(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(ctx, db))

	d := Dialect()

	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password, first_name, last_name) VALUES ('a@b.co', 'h', 'A', 'B')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password, first_name, last_name) VALUES ('a@b.co', 'h', 'A', 'B')`)
	require.Error(t, err)
	assert.True(t, d.IsUniqueViolation(err))
	assert.False(t, d.IsForeignKeyViolation(err))

	// foreign_keys(1) tiene que estar activo en la conexión
	_, err = db.ExecContext(ctx, `INSERT INTO pets (user_id, name, species) VALUES (999, 'Rex', 'Dog')`)
	require.Error(t, err)
	assert.True(t, d.IsForeignKeyViolation(err))
}
