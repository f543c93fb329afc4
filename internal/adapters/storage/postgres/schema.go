package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema es idempotente; se aplica en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		species VARCHAR(50) NOT NULL,
		breed VARCHAR(100),
		date_of_birth DATE,
		gender VARCHAR(20),
		color VARCHAR(50),
		microchip_number VARCHAR(50),
		photo_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_user ON pets(user_id)`,
	`CREATE TABLE IF NOT EXISTS health_records (
		id SERIAL PRIMARY KEY,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		record_date DATE NOT NULL,
		weight DECIMAL(6,2),
		temperature DECIMAL(4,2),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_records_pet ON health_records(pet_id, record_date DESC)`,
	`CREATE TABLE IF NOT EXISTS medications (
		id SERIAL PRIMARY KEY,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		name VARCHAR(200) NOT NULL,
		dosage VARCHAR(100),
		frequency VARCHAR(100),
		start_date DATE NOT NULL,
		end_date DATE,
		notes TEXT,
		active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medications_pet ON medications(pet_id, start_date DESC)`,
	`CREATE TABLE IF NOT EXISTS vaccinations (
		id SERIAL PRIMARY KEY,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		vaccine_name VARCHAR(200) NOT NULL,
		vaccination_date DATE NOT NULL,
		next_due_date DATE,
		veterinarian VARCHAR(200),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vaccinations_pet ON vaccinations(pet_id, vaccination_date DESC)`,
	`CREATE TABLE IF NOT EXISTS vet_visits (
		id SERIAL PRIMARY KEY,
		pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		visit_date DATE NOT NULL,
		veterinarian VARCHAR(200),
		reason VARCHAR(500),
		diagnosis TEXT,
		treatment TEXT,
		cost DECIMAL(10,2),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vet_visits_pet ON vet_visits(pet_id, visit_date DESC)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
