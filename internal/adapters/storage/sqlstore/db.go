// Package sqlstore implementa los repositorios sobre database/sql.
// Las queries se escriben con "?" y se reescriben a $n para Postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pet-health-tracker/internal/domain/pets"
)

// Dialect aísla lo poco que difiere entre motores.
type Dialect struct {
	Name string

	// NumberedParams reescribe "?" como $1, $2... (Postgres).
	NumberedParams bool

	IsUniqueViolation     func(error) bool
	IsForeignKeyViolation func(error) bool
}

type DB struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *DB {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}
	if dialect.IsForeignKeyViolation == nil {
		dialect.IsForeignKeyViolation = func(error) bool { return false }
	}
	return &DB{db: db, dialect: dialect}
}

// rebind convierte placeholders "?" al estilo del dialecto.
func (d *DB) rebind(q string) string {
	if !d.dialect.NumberedParams {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 16)
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

func (d *DB) wrap(op string, err error) error {
	return fmt.Errorf("%s: %s: %w", d.dialect.Name, op, err)
}

// ownsPet es la verificación de alcance previa a create y list de sub-registros.
func (d *DB) ownsPet(ctx context.Context, accountID, petID int64) error {
	var id int64
	err := d.db.QueryRowContext(ctx,
		d.rebind(`SELECT id FROM pets WHERE id = ? AND user_id = ?`),
		petID, accountID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.ErrNotFound
	}
	if err != nil {
		return d.wrap("check pet owner", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func columns(prefix string, cols []string) string {
	if prefix == "" {
		return strings.Join(cols, ", ")
	}
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return strings.Join(out, ", ")
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func assignments(cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c + " = ?"
	}
	return strings.Join(out, ", ")
}
