package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	pg := New(nil, Dialect{Name: "postgres", NumberedParams: true})
	lite := New(nil, Dialect{Name: "sqlite"})

	q := `UPDATE pets SET name = ? WHERE id = ? AND user_id = ?`
	assert.Equal(t, `UPDATE pets SET name = $1 WHERE id = $2 AND user_id = $3`, pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
}

func TestQueryHelpers(t *testing.T) {
	assert.Equal(t, "t.id, t.pet_id", columns("t", []string{"id", "pet_id"}))
	assert.Equal(t, "id, pet_id", columns("", []string{"id", "pet_id"}))
	assert.Equal(t, "?, ?, ?", placeholders(3))
	assert.Equal(t, "name = ?, notes = ?", assignments([]string{"name", "notes"}))
}

func TestChildQueries_ScopedByOwner(t *testing.T) {
	d := New(nil, Dialect{Name: "postgres", NumberedParams: true})
	r := d.Vaccinations()

	assert.Contains(t, r.qGet, "p.user_id = $3")
	assert.Contains(t, r.qUpdate, "pets.user_id = $8")
	assert.Contains(t, r.qDelete, "WHERE id = $1 AND pet_id = $2")
	assert.Contains(t, r.qList, "ORDER BY vaccination_date DESC, id DESC")
}

func TestNew_NilDialectFuncs(t *testing.T) {
	d := New(nil, Dialect{Name: "memory"})
	assert.False(t, d.dialect.IsUniqueViolation(assert.AnError))
	assert.False(t, d.dialect.IsForeignKeyViolation(assert.AnError))
}
