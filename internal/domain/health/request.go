package health

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"pet-health-tracker/internal/platform/apperror"
	"pet-health-tracker/internal/platform/civil"
)

// Decimal acepta un número JSON o una string numérica ("12.5"), que es lo
// que mandan los formularios del cliente. null y "" son ausencia.
type Decimal struct {
	Value float64
	Valid bool
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Decimal{}
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return apperror.Validation("", "decimal fields must be numbers")
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*d = Decimal{}
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return apperror.Validation("", "decimal fields must be numbers")
	}
	*d = Decimal{Value: f, Valid: true}
	return nil
}

func (d Decimal) Ptr() *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}

// Requests: camelCase, que es el contrato del cliente web.

type recordRequest struct {
	RecordDate  civil.NullDate `json:"recordDate" swaggertype:"string" example:"2024-03-01"`
	Weight      Decimal        `json:"weight" swaggertype:"number" example:"12.5"`
	Temperature Decimal        `json:"temperature" swaggertype:"number" example:"38.6"`
	Notes       *string        `json:"notes"`
}

type medicationRequest struct {
	Name      string         `json:"name"`
	Dosage    *string        `json:"dosage"`
	Frequency *string        `json:"frequency"`
	StartDate civil.NullDate `json:"startDate" swaggertype:"string" example:"2024-03-01"`
	EndDate   civil.NullDate `json:"endDate" swaggertype:"string"`
	Notes     *string        `json:"notes"`
	Active    *bool          `json:"active"`
}

type vaccinationRequest struct {
	VaccineName     string         `json:"vaccineName"`
	VaccinationDate civil.NullDate `json:"vaccinationDate" swaggertype:"string" example:"2024-03-01"`
	NextDueDate     civil.NullDate `json:"nextDueDate" swaggertype:"string"`
	Veterinarian    *string        `json:"veterinarian"`
	Notes           *string        `json:"notes"`
}

type vetVisitRequest struct {
	VisitDate    civil.NullDate `json:"visitDate" swaggertype:"string" example:"2024-03-01"`
	Veterinarian *string        `json:"veterinarian"`
	Reason       *string        `json:"reason"`
	Diagnosis    *string        `json:"diagnosis"`
	Treatment    *string        `json:"treatment"`
	Cost         Decimal        `json:"cost" swaggertype:"number" example:"80"`
	Notes        *string        `json:"notes"`
}

func (r recordRequest) toInput() RecordInput {
	return RecordInput{
		RecordDate:  r.RecordDate,
		Weight:      r.Weight.Ptr(),
		Temperature: r.Temperature.Ptr(),
		Notes:       r.Notes,
	}
}

func (r medicationRequest) toInput() MedicationInput {
	return MedicationInput{
		Name:      r.Name,
		Dosage:    r.Dosage,
		Frequency: r.Frequency,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Notes:     r.Notes,
		Active:    r.Active,
	}
}

func (r vaccinationRequest) toInput() VaccinationInput {
	return VaccinationInput{
		VaccineName:     r.VaccineName,
		VaccinationDate: r.VaccinationDate,
		NextDueDate:     r.NextDueDate,
		Veterinarian:    r.Veterinarian,
		Notes:           r.Notes,
	}
}

func (r vetVisitRequest) toInput() VetVisitInput {
	return VetVisitInput{
		VisitDate:    r.VisitDate,
		Veterinarian: r.Veterinarian,
		Reason:       r.Reason,
		Diagnosis:    r.Diagnosis,
		Treatment:    r.Treatment,
		Cost:         r.Cost.Ptr(),
		Notes:        r.Notes,
	}
}

// Responses: nombres de columna (snake_case).

type recordResponse struct {
	ID          int64      `json:"id"`
	PetID       int64      `json:"pet_id"`
	RecordDate  civil.Date `json:"record_date" swaggertype:"string"`
	Weight      *float64   `json:"weight"`
	Temperature *float64   `json:"temperature"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type medicationResponse struct {
	ID        int64          `json:"id"`
	PetID     int64          `json:"pet_id"`
	Name      string         `json:"name"`
	Dosage    *string        `json:"dosage"`
	Frequency *string        `json:"frequency"`
	StartDate civil.Date     `json:"start_date" swaggertype:"string"`
	EndDate   civil.NullDate `json:"end_date" swaggertype:"string"`
	Notes     *string        `json:"notes"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
}

type vaccinationResponse struct {
	ID              int64          `json:"id"`
	PetID           int64          `json:"pet_id"`
	VaccineName     string         `json:"vaccine_name"`
	VaccinationDate civil.Date     `json:"vaccination_date" swaggertype:"string"`
	NextDueDate     civil.NullDate `json:"next_due_date" swaggertype:"string"`
	Veterinarian    *string        `json:"veterinarian"`
	Notes           *string        `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
}

type vetVisitResponse struct {
	ID           int64      `json:"id"`
	PetID        int64      `json:"pet_id"`
	VisitDate    civil.Date `json:"visit_date" swaggertype:"string"`
	Veterinarian *string    `json:"veterinarian"`
	Reason       *string    `json:"reason"`
	Diagnosis    *string    `json:"diagnosis"`
	Treatment    *string    `json:"treatment"`
	Cost         *float64   `json:"cost"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		PetID:       r.PetID,
		RecordDate:  r.RecordDate,
		Weight:      r.Weight,
		Temperature: r.Temperature,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:        m.ID,
		PetID:     m.PetID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Notes:     m.Notes,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	return vaccinationResponse{
		ID:              v.ID,
		PetID:           v.PetID,
		VaccineName:     v.VaccineName,
		VaccinationDate: v.VaccinationDate,
		NextDueDate:     v.NextDueDate,
		Veterinarian:    v.Veterinarian,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
	}
}

func toVetVisitResponse(v VetVisit) vetVisitResponse {
	return vetVisitResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		VisitDate:    v.VisitDate,
		Veterinarian: v.Veterinarian,
		Reason:       v.Reason,
		Diagnosis:    v.Diagnosis,
		Treatment:    v.Treatment,
		Cost:         v.Cost,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
}
