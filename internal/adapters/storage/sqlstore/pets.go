package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"pet-health-tracker/internal/domain/pets"
)

const petColumns = `id, user_id, name, species, breed, date_of_birth, gender, color, microchip_number, photo_url, created_at`

type PetsRepo struct {
	*DB
}

var _ pets.Repository = PetsRepo{}

func (d *DB) Pets() PetsRepo {
	return PetsRepo{d}
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var breed, gender, color, chip, photoURL sql.NullString
	err := s.Scan(
		&p.ID, &p.AccountID,
		&p.Name, &p.Species,
		&breed, &p.DateOfBirth, &gender, &color, &chip, &photoURL,
		timestamp{&p.CreatedAt},
	)
	if err != nil {
		return pets.Pet{}, err
	}
	p.Breed = stringPtr(breed)
	p.Gender = stringPtr(gender)
	p.Color = stringPtr(color)
	p.MicrochipNumber = stringPtr(chip)
	p.PhotoURL = stringPtr(photoURL)
	return p, nil
}

func (r PetsRepo) Create(ctx context.Context, accountID int64, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`
		INSERT INTO pets (
			user_id, name, species, breed, date_of_birth,
			gender, color, microchip_number, photo_url, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+petColumns),
		accountID, p.Name, p.Species, nullString(p.Breed), p.DateOfBirth,
		nullString(p.Gender), nullString(p.Color), nullString(p.MicrochipNumber), nullString(p.PhotoURL),
		p.CreatedAt,
	)

	created, err := scanPet(row)
	if err != nil {
		if r.dialect.IsForeignKeyViolation(err) {
			return pets.Pet{}, errAccountNotFound
		}
		return pets.Pet{}, r.wrap("create pet", err)
	}
	return created, nil
}

func (r PetsRepo) GetByID(ctx context.Context, accountID, petID int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx,
		r.rebind(`SELECT `+petColumns+` FROM pets WHERE id = ? AND user_id = ?`),
		petID, accountID,
	)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	if err != nil {
		return pets.Pet{}, r.wrap("get pet", err)
	}
	return p, nil
}

func (r PetsRepo) ListByOwner(ctx context.Context, accountID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`
		SELECT `+petColumns+`
		FROM pets
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`),
		accountID,
	)
	if err != nil {
		return nil, r.wrap("list pets", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, r.wrap("scan pet", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("list pets", err)
	}
	return out, nil
}

func (r PetsRepo) Update(ctx context.Context, accountID int64, p pets.Pet) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`
		UPDATE pets SET
			name = ?, species = ?, breed = ?, date_of_birth = ?,
			gender = ?, color = ?, microchip_number = ?, photo_url = ?
		WHERE id = ? AND user_id = ?
		RETURNING `+petColumns),
		p.Name, p.Species, nullString(p.Breed), p.DateOfBirth,
		nullString(p.Gender), nullString(p.Color), nullString(p.MicrochipNumber), nullString(p.PhotoURL),
		p.ID, accountID,
	)

	updated, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	if err != nil {
		return pets.Pet{}, r.wrap("update pet", err)
	}
	return updated, nil
}

// Delete se apoya en ON DELETE CASCADE para los registros de salud.
func (r PetsRepo) Delete(ctx context.Context, accountID, petID int64) error {
	res, err := r.db.ExecContext(ctx,
		r.rebind(`DELETE FROM pets WHERE id = ? AND user_id = ?`),
		petID, accountID,
	)
	if err != nil {
		return r.wrap("delete pet", err)
	}
	return expectOne(res, pets.ErrNotFound)
}
