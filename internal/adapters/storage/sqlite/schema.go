package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Mismo modelo que Postgres. Fechas y timestamps se guardan como texto
// ordenable; los DECIMAL quedan con afinidad NUMERIC.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		breed TEXT,
		date_of_birth DATE,
		gender TEXT,
		color TEXT,
		microchip_number TEXT,
		photo_url TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_user ON pets(user_id)`,
	`CREATE TABLE IF NOT EXISTS health_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		record_date DATE NOT NULL,
		weight DECIMAL(6,2),
		temperature DECIMAL(4,2),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_records_pet ON health_records(pet_id, record_date)`,
	`CREATE TABLE IF NOT EXISTS medications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		dosage TEXT,
		frequency TEXT,
		start_date DATE NOT NULL,
		end_date DATE,
		notes TEXT,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medications_pet ON medications(pet_id, start_date)`,
	`CREATE TABLE IF NOT EXISTS vaccinations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		vaccine_name TEXT NOT NULL,
		vaccination_date DATE NOT NULL,
		next_due_date DATE,
		veterinarian TEXT,
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vaccinations_pet ON vaccinations(pet_id, vaccination_date)`,
	`CREATE TABLE IF NOT EXISTS vet_visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		visit_date DATE NOT NULL,
		veterinarian TEXT,
		reason TEXT,
		diagnosis TEXT,
		treatment TEXT,
		cost DECIMAL(10,2),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vet_visits_pet ON vet_visits(pet_id, visit_date)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: migrate step %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
