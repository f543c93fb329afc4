package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDialect_ErrorCodes(t *testing.T) {
	d := Dialect()

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: codeUniqueViolation})
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}

	assert.True(t, d.IsUniqueViolation(unique))
	assert.False(t, d.IsForeignKeyViolation(unique))
	assert.True(t, d.IsForeignKeyViolation(fk))
	assert.False(t, d.IsUniqueViolation(errors.New("23505")))
	assert.True(t, d.NumberedParams)
}

func TestSchema_CascadesFromUsers(t *testing.T) {
	cascades := 0
	for _, stmt := range schema {
		if containsAll(stmt, "REFERENCES", "ON DELETE CASCADE") {
			cascades++
		}
	}
	// pets -> users, y las cuatro tablas hijas -> pets
	assert.Equal(t, 5, cascades)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
