package health

import (
	"encoding/json"
	"testing"
	"time"

	"pet-health-tracker/internal/platform/apperror"
	"pet-health-tracker/internal/platform/civil"
	"pet-health-tracker/internal/platform/fields"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDecimal_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		value float64
	}{
		{`12.5`, true, 12.5},
		{`"38.6"`, true, 38.6},
		{`" 7 "`, true, 7},
		{`""`, false, 0},
		{`null`, false, 0},
	}
	for _, tc := range cases {
		var d Decimal
		require.NoError(t, json.Unmarshal([]byte(tc.in), &d), tc.in)
		assert.Equal(t, tc.valid, d.Valid, tc.in)
		assert.InDelta(t, tc.value, d.Value, 1e-9, tc.in)
	}

	var d Decimal
	err := json.Unmarshal([]byte(`"heavy"`), &d)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Nil(t, d.Ptr())
}

func TestDecimal_Rounding(t *testing.T) {
	w := 12.345
	got, err := decimal("weight", &w, maxWeight)
	require.NoError(t, err)
	assert.InDelta(t, 12.35, *got, 1e-9)

	for _, bad := range []float64{-1, 10000, 9999.999} {
		v := bad
		_, err := decimal("weight", &v, maxWeight)
		assert.ErrorIs(t, err, apperror.ErrValidation, bad)
	}

	got, err = decimal("cost", nil, maxCost)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordInput_Build(t *testing.T) {
	_, err := RecordInput{}.build(1, now)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "recordDate", appErr.Field)
	assert.Equal(t, "recordDate is required", appErr.Message)

	rec, err := RecordInput{
		RecordDate: civil.NewNullDate(civil.MustParseDate("2024-03-01")),
		Notes:      fields.Ptr("   "),
	}.build(7, now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.PetID)
	assert.Nil(t, rec.Notes)
	assert.Equal(t, now, rec.CreatedAt)
	assert.Equal(t, now, rec.UpdatedAt)
}

func TestMedicationInput_ActiveDefaultsTrue(t *testing.T) {
	in := MedicationInput{
		Name:      "Carprofen",
		StartDate: civil.NewNullDate(civil.MustParseDate("2024-01-01")),
		EndDate:   civil.NewNullDate(civil.MustParseDate("2023-12-01")),
	}
	m, err := in.build(1, now)
	require.NoError(t, err)
	assert.True(t, m.Active)
	// end_date anterior a start_date se acepta tal cual
	assert.Equal(t, -1, m.EndDate.Date.Compare(m.StartDate))

	in.Active = fields.Ptr(false)
	m, err = in.build(1, now)
	require.NoError(t, err)
	assert.False(t, m.Active)

	in.Name = "  "
	_, err = in.build(1, now)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestVaccinationAndVisitInput_Required(t *testing.T) {
	_, err := VaccinationInput{VaccinationDate: civil.NewNullDate(civil.MustParseDate("2024-01-01"))}.build(1, now)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = VaccinationInput{VaccineName: "Rabies"}.build(1, now)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = VetVisitInput{Reason: fields.Ptr("Checkup")}.build(1, now)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	cost := 80.0
	v, err := VetVisitInput{VisitDate: civil.NewNullDate(civil.MustParseDate("2024-02-14")), Cost: &cost}.build(1, now)
	require.NoError(t, err)
	assert.InDelta(t, 80, *v.Cost, 1e-9)
}

func TestResponses_SnakeCase(t *testing.T) {
	b, err := json.Marshal(toMedicationResponse(Medication{
		ID: 1, PetID: 2, Name: "X",
		StartDate: civil.MustParseDate("2024-01-01"),
		Active:    true,
	}))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "2024-01-01", m["start_date"])
	assert.Nil(t, m["end_date"])
	assert.Equal(t, true, m["active"])
	assert.Contains(t, m, "pet_id")
}
