package health

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"pet-health-tracker/internal/platform/apperror"
	"pet-health-tracker/internal/platform/civil"
	"pet-health-tracker/internal/platform/fields"
)

// Límites de columnas.
const (
	MaxMedicationNameLen = 200
	MaxDosageLen         = 100
	MaxFrequencyLen      = 100
	MaxVaccineNameLen    = 200
	MaxVeterinarianLen   = 200
	MaxReasonLen         = 500

	// DECIMAL(p,2): el máximo exclusivo es 10^(p-2).
	maxWeight      = 1e4
	maxTemperature = 1e2
	maxCost        = 1e8
)

// Input construye la entidad T a partir de un cuerpo ya decodificado.
type Input[T any] interface {
	build(petID int64, now time.Time) (T, error)
}

type RecordInput struct {
	RecordDate  civil.NullDate
	Weight      *float64
	Temperature *float64
	Notes       *string
}

func (in RecordInput) build(petID int64, now time.Time) (Record, error) {
	var (
		rec = Record{PetID: petID, CreatedAt: now, UpdatedAt: now}
		err error
	)
	if rec.RecordDate, err = requiredDate("recordDate", in.RecordDate); err != nil {
		return Record{}, err
	}
	if rec.Weight, err = decimal("weight", in.Weight, maxWeight); err != nil {
		return Record{}, err
	}
	if rec.Temperature, err = decimal("temperature", in.Temperature, maxTemperature); err != nil {
		return Record{}, err
	}
	if rec.Notes, err = fields.Optional("notes", in.Notes, fields.Unlimited); err != nil {
		return Record{}, err
	}
	return rec, nil
}

type MedicationInput struct {
	Name      string
	Dosage    *string
	Frequency *string
	StartDate civil.NullDate
	EndDate   civil.NullDate
	Notes     *string

	// Active nil equivale a true (default de la columna).
	Active *bool
}

func (in MedicationInput) build(petID int64, now time.Time) (Medication, error) {
	var (
		m   = Medication{PetID: petID, CreatedAt: now, EndDate: in.EndDate, Active: true}
		err error
	)
	if m.Name, err = fields.Required("name", in.Name, MaxMedicationNameLen, "name is required"); err != nil {
		return Medication{}, err
	}
	if m.StartDate, err = requiredDate("startDate", in.StartDate); err != nil {
		return Medication{}, err
	}
	if m.Dosage, err = fields.Optional("dosage", in.Dosage, MaxDosageLen); err != nil {
		return Medication{}, err
	}
	if m.Frequency, err = fields.Optional("frequency", in.Frequency, MaxFrequencyLen); err != nil {
		return Medication{}, err
	}
	if m.Notes, err = fields.Optional("notes", in.Notes, fields.Unlimited); err != nil {
		return Medication{}, err
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	return m, nil
}

type VaccinationInput struct {
	VaccineName     string
	VaccinationDate civil.NullDate
	NextDueDate     civil.NullDate
	Veterinarian    *string
	Notes           *string
}

func (in VaccinationInput) build(petID int64, now time.Time) (Vaccination, error) {
	var (
		v   = Vaccination{PetID: petID, CreatedAt: now, NextDueDate: in.NextDueDate}
		err error
	)
	if v.VaccineName, err = fields.Required("vaccineName", in.VaccineName, MaxVaccineNameLen, "vaccineName is required"); err != nil {
		return Vaccination{}, err
	}
	if v.VaccinationDate, err = requiredDate("vaccinationDate", in.VaccinationDate); err != nil {
		return Vaccination{}, err
	}
	if v.Veterinarian, err = fields.Optional("veterinarian", in.Veterinarian, MaxVeterinarianLen); err != nil {
		return Vaccination{}, err
	}
	if v.Notes, err = fields.Optional("notes", in.Notes, fields.Unlimited); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

type VetVisitInput struct {
	VisitDate    civil.NullDate
	Veterinarian *string
	Reason       *string
	Diagnosis    *string
	Treatment    *string
	Cost         *float64
	Notes        *string
}

func (in VetVisitInput) build(petID int64, now time.Time) (VetVisit, error) {
	var (
		v   = VetVisit{PetID: petID, CreatedAt: now}
		err error
	)
	if v.VisitDate, err = requiredDate("visitDate", in.VisitDate); err != nil {
		return VetVisit{}, err
	}
	if v.Veterinarian, err = fields.Optional("veterinarian", in.Veterinarian, MaxVeterinarianLen); err != nil {
		return VetVisit{}, err
	}
	if v.Reason, err = fields.Optional("reason", in.Reason, MaxReasonLen); err != nil {
		return VetVisit{}, err
	}
	if v.Diagnosis, err = fields.Optional("diagnosis", in.Diagnosis, fields.Unlimited); err != nil {
		return VetVisit{}, err
	}
	if v.Treatment, err = fields.Optional("treatment", in.Treatment, fields.Unlimited); err != nil {
		return VetVisit{}, err
	}
	if v.Cost, err = decimal("cost", in.Cost, maxCost); err != nil {
		return VetVisit{}, err
	}
	if v.Notes, err = fields.Optional("notes", in.Notes, fields.Unlimited); err != nil {
		return VetVisit{}, err
	}
	return v, nil
}

func requiredDate(field string, d civil.NullDate) (civil.Date, error) {
	if !d.Valid {
		return civil.Date{}, apperror.Validation(field, field+" is required")
	}
	return d.Date, nil
}

// decimal redondea a 2 decimales como la columna y rechaza lo que no entra.
func decimal(field string, v *float64, limit float64) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	x := *v
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, apperror.Validation(field, field+" must be a number")
	}
	if x < 0 {
		return nil, apperror.Validation(field, field+" must not be negative")
	}
	x = math.Round(x*100) / 100
	if x >= limit {
		return nil, apperror.Validation(field, fmt.Sprintf("%s must be less than %s", field, strconv.FormatFloat(limit, 'f', -1, 64)))
	}
	return &x, nil
}
