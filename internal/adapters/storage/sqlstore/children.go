package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
)

// childSpec describe una tabla hija de pets (registros, medicaciones, ...).
type childSpec[T any] struct {
	table    string
	columns  []string // orden de scan; siempre empieza con id, pet_id
	orderBy  string
	notFound error
	scan     func(scanner) (T, error)

	insertCols []string
	insertArgs func(T) []any
	updateCols []string
	updateArgs func(T) []any
}

// ChildRepo implementa health.Repository[T] para una tabla hija.
type ChildRepo[T any] struct {
	*DB
	spec childSpec[T]

	qInsert, qGet, qList, qUpdate, qDelete string
}

func newChildRepo[T any](d *DB, spec childSpec[T]) ChildRepo[T] {
	cols := columns("", spec.columns)
	owned := fmt.Sprintf(`EXISTS (SELECT 1 FROM pets WHERE pets.id = %s.pet_id AND pets.user_id = ?)`, spec.table)

	return ChildRepo[T]{
		DB:   d,
		spec: spec,

		qInsert: d.rebind(fmt.Sprintf(`INSERT INTO %s (pet_id, %s) VALUES (?, %s) RETURNING %s`,
			spec.table, columns("", spec.insertCols), placeholders(len(spec.insertCols)), cols)),

		qGet: d.rebind(fmt.Sprintf(`SELECT %s FROM %s t JOIN pets p ON p.id = t.pet_id WHERE t.id = ? AND t.pet_id = ? AND p.user_id = ?`,
			columns("t", spec.columns), spec.table)),

		qList: d.rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE pet_id = ? ORDER BY %s`,
			cols, spec.table, spec.orderBy)),

		qUpdate: d.rebind(fmt.Sprintf(`UPDATE %s SET %s WHERE id = ? AND pet_id = ? AND %s RETURNING %s`,
			spec.table, assignments(spec.updateCols), owned, cols)),

		qDelete: d.rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ? AND pet_id = ? AND %s`,
			spec.table, owned)),
	}
}

func (r ChildRepo[T]) Create(ctx context.Context, accountID, petID int64, v T) (T, error) {
	var zero T
	if err := r.ownsPet(ctx, accountID, petID); err != nil {
		return zero, err
	}

	args := append([]any{petID}, r.spec.insertArgs(v)...)
	created, err := r.spec.scan(r.db.QueryRowContext(ctx, r.qInsert, args...))
	if err != nil {
		// la mascota se borró entre la verificación y el insert
		if r.dialect.IsForeignKeyViolation(err) {
			return zero, pets.ErrNotFound
		}
		return zero, r.wrap("create "+r.spec.table, err)
	}
	return created, nil
}

func (r ChildRepo[T]) GetByID(ctx context.Context, accountID, petID, id int64) (T, error) {
	var zero T
	v, err := r.spec.scan(r.db.QueryRowContext(ctx, r.qGet, id, petID, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.spec.notFound
	}
	if err != nil {
		return zero, r.wrap("get "+r.spec.table, err)
	}
	return v, nil
}

func (r ChildRepo[T]) ListByPet(ctx context.Context, accountID, petID int64) ([]T, error) {
	if err := r.ownsPet(ctx, accountID, petID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, r.qList, petID)
	if err != nil {
		return nil, r.wrap("list "+r.spec.table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := r.spec.scan(rows)
		if err != nil {
			return nil, r.wrap("scan "+r.spec.table, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("list "+r.spec.table, err)
	}
	return out, nil
}

func (r ChildRepo[T]) Update(ctx context.Context, accountID, petID, id int64, v T) (T, error) {
	var zero T
	args := append(r.spec.updateArgs(v), id, petID, accountID)

	updated, err := r.spec.scan(r.db.QueryRowContext(ctx, r.qUpdate, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.spec.notFound
	}
	if err != nil {
		return zero, r.wrap("update "+r.spec.table, err)
	}
	return updated, nil
}

func (r ChildRepo[T]) Delete(ctx context.Context, accountID, petID, id int64) error {
	res, err := r.db.ExecContext(ctx, r.qDelete, id, petID, accountID)
	if err != nil {
		return r.wrap("delete "+r.spec.table, err)
	}
	return expectOne(res, r.spec.notFound)
}

var (
	_ health.RecordRepository      = ChildRepo[health.Record]{}
	_ health.MedicationRepository  = ChildRepo[health.Medication]{}
	_ health.VaccinationRepository = ChildRepo[health.Vaccination]{}
	_ health.VetVisitRepository    = ChildRepo[health.VetVisit]{}
)

func (d *DB) Records() ChildRepo[health.Record] {
	return newChildRepo(d, childSpec[health.Record]{
		table:    "health_records",
		columns:  []string{"id", "pet_id", "record_date", "weight", "temperature", "notes", "created_at", "updated_at"},
		orderBy:  "record_date DESC, id DESC",
		notFound: health.ErrRecordNotFound,
		scan: func(s scanner) (health.Record, error) {
			var rec health.Record
			var weight, temp sql.NullFloat64
			var notes sql.NullString
			err := s.Scan(&rec.ID, &rec.PetID, &rec.RecordDate, &weight, &temp, &notes,
				timestamp{&rec.CreatedAt}, timestamp{&rec.UpdatedAt})
			rec.Weight, rec.Temperature, rec.Notes = floatPtr(weight), floatPtr(temp), stringPtr(notes)
			return rec, err
		},
		insertCols: []string{"record_date", "weight", "temperature", "notes", "created_at", "updated_at"},
		insertArgs: func(rec health.Record) []any {
			return []any{rec.RecordDate, nullFloat(rec.Weight), nullFloat(rec.Temperature), nullString(rec.Notes), rec.CreatedAt, rec.UpdatedAt}
		},
		updateCols: []string{"record_date", "weight", "temperature", "notes", "updated_at"},
		updateArgs: func(rec health.Record) []any {
			return []any{rec.RecordDate, nullFloat(rec.Weight), nullFloat(rec.Temperature), nullString(rec.Notes), rec.UpdatedAt}
		},
	})
}

func (d *DB) Medications() ChildRepo[health.Medication] {
	editable := []string{"name", "dosage", "frequency", "start_date", "end_date", "notes", "active"}
	args := func(m health.Medication) []any {
		return []any{m.Name, nullString(m.Dosage), nullString(m.Frequency), m.StartDate, m.EndDate, nullString(m.Notes), m.Active}
	}

	return newChildRepo(d, childSpec[health.Medication]{
		table:    "medications",
		columns:  []string{"id", "pet_id", "name", "dosage", "frequency", "start_date", "end_date", "notes", "active", "created_at"},
		orderBy:  "start_date DESC, id DESC",
		notFound: health.ErrMedicationNotFound,
		scan: func(s scanner) (health.Medication, error) {
			var m health.Medication
			var dosage, frequency, notes sql.NullString
			err := s.Scan(&m.ID, &m.PetID, &m.Name, &dosage, &frequency, &m.StartDate, &m.EndDate, &notes, &m.Active,
				timestamp{&m.CreatedAt})
			m.Dosage, m.Frequency, m.Notes = stringPtr(dosage), stringPtr(frequency), stringPtr(notes)
			return m, err
		},
		insertCols: append(editable, "created_at"),
		insertArgs: func(m health.Medication) []any { return append(args(m), m.CreatedAt) },
		updateCols: editable,
		updateArgs: args,
	})
}

func (d *DB) Vaccinations() ChildRepo[health.Vaccination] {
	editable := []string{"vaccine_name", "vaccination_date", "next_due_date", "veterinarian", "notes"}
	args := func(v health.Vaccination) []any {
		return []any{v.VaccineName, v.VaccinationDate, v.NextDueDate, nullString(v.Veterinarian), nullString(v.Notes)}
	}

	return newChildRepo(d, childSpec[health.Vaccination]{
		table:    "vaccinations",
		columns:  []string{"id", "pet_id", "vaccine_name", "vaccination_date", "next_due_date", "veterinarian", "notes", "created_at"},
		orderBy:  "vaccination_date DESC, id DESC",
		notFound: health.ErrVaccinationNotFound,
		scan: func(s scanner) (health.Vaccination, error) {
			var v health.Vaccination
			var vet, notes sql.NullString
			err := s.Scan(&v.ID, &v.PetID, &v.VaccineName, &v.VaccinationDate, &v.NextDueDate, &vet, &notes,
				timestamp{&v.CreatedAt})
			v.Veterinarian, v.Notes = stringPtr(vet), stringPtr(notes)
			return v, err
		},
		insertCols: append(editable, "created_at"),
		insertArgs: func(v health.Vaccination) []any { return append(args(v), v.CreatedAt) },
		updateCols: editable,
		updateArgs: args,
	})
}

func (d *DB) VetVisits() ChildRepo[health.VetVisit] {
	editable := []string{"visit_date", "veterinarian", "reason", "diagnosis", "treatment", "cost", "notes"}
	args := func(v health.VetVisit) []any {
		return []any{v.VisitDate, nullString(v.Veterinarian), nullString(v.Reason), nullString(v.Diagnosis),
			nullString(v.Treatment), nullFloat(v.Cost), nullString(v.Notes)}
	}

	return newChildRepo(d, childSpec[health.VetVisit]{
		table:    "vet_visits",
		columns:  []string{"id", "pet_id", "visit_date", "veterinarian", "reason", "diagnosis", "treatment", "cost", "notes", "created_at"},
		orderBy:  "visit_date DESC, id DESC",
		notFound: health.ErrVetVisitNotFound,
		scan: func(s scanner) (health.VetVisit, error) {
			var v health.VetVisit
			var vet, reason, diagnosis, treatment, notes sql.NullString
			var cost sql.NullFloat64
			err := s.Scan(&v.ID, &v.PetID, &v.VisitDate, &vet, &reason, &diagnosis, &treatment, &cost, &notes,
				timestamp{&v.CreatedAt})
			v.Veterinarian, v.Reason, v.Diagnosis = stringPtr(vet), stringPtr(reason), stringPtr(diagnosis)
			v.Treatment, v.Cost, v.Notes = stringPtr(treatment), floatPtr(cost), stringPtr(notes)
			return v, err
		},
		insertCols: append(editable, "created_at"),
		insertArgs: func(v health.VetVisit) []any { return append(args(v), v.CreatedAt) },
		updateCols: editable,
		updateArgs: args,
	})
}

// Health arma los cuatro repos para health.NewService.
func (d *DB) Health() health.Repositories {
	return health.Repositories{
		Records:      d.Records(),
		Medications:  d.Medications(),
		Vaccinations: d.Vaccinations(),
		VetVisits:    d.VetVisits(),
	}
}
