// Package sqlite es el store embebido (un solo nodo, sin servidor de base).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"pet-health-tracker/internal/adapters/storage/sqlstore"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath abre una base en memoria; útil en tests.
const MemoryPath = ":memory:"

// Open abre path con foreign keys activas en cada conexión. SQLite admite
// un solo escritor, así que el pool queda en una conexión.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Set("_time_format", "sqlite")

	if path == MemoryPath {
		return "file::memory:?" + q.Encode()
	}
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + q.Encode()
	}
	return "file:" + path + "?" + q.Encode()
}

func Dialect() sqlstore.Dialect {
	return sqlstore.Dialect{
		Name:                  "sqlite",
		IsUniqueViolation:     hasCode(sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed"),
		IsForeignKeyViolation: hasCode(sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed"),
	}
}

func New(db *sql.DB) *sqlstore.DB {
	return sqlstore.New(db, Dialect())
}

// hasCode compara el código extendido; si el driver solo reporta el
// código primario (SQLITE_CONSTRAINT) cae al mensaje de SQLite.
func hasCode(code int, msg string) func(error) bool {
	return func(err error) bool {
		var sqlErr *sqlite.Error
		if !errors.As(err, &sqlErr) {
			return false
		}
		return sqlErr.Code() == code || strings.Contains(sqlErr.Error(), msg)
	}
}
