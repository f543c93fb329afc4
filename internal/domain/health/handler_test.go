package health_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"pet-health-tracker/internal/adapters/storage/memory"
	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router http.Handler
	ana    int64
	bob    int64
	rex    int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	ana, err := store.Accounts().Create(ctx, accounts.Account{Email: "ana@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)
	bob, err := store.Accounts().Create(ctx, accounts.Account{Email: "bob@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)
	rex, err := store.Pets().Create(ctx, ana.ID, pets.Pet{Name: "Rex", Species: "Dog", CreatedAt: time.Now()})
	require.NoError(t, err)

	r := chi.NewRouter()
	health.RegisterRoutes(r, health.NewService(store.Health()))

	return fixture{router: r, ana: ana.ID, bob: bob.ID, rex: rex.ID}
}

func (f fixture) do(t *testing.T, accountID int64, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{AccountID: accountID}))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func petPath(id int64, rest string) string {
	return "/health/pets/" + itoa(id) + rest
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestRecords_CRUD(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, f.ana, http.MethodPost, petPath(f.rex, "/records"),
		`{"recordDate":"2024-03-01","weight":"12.5","temperature":38.6,"notes":"ok"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[map[string]any](t, rec)
	assert.Equal(t, "2024-03-01", created["record_date"])
	assert.InDelta(t, 12.5, created["weight"], 1e-9)
	assert.EqualValues(t, f.rex, created["pet_id"])
	id := int64(created["id"].(float64))

	rec = f.do(t, f.ana, http.MethodPut, petPath(f.rex, "/records/"+itoa(id)), `{"recordDate":"2024-03-02"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]any](t, rec)
	assert.Nil(t, updated["weight"])
	assert.Nil(t, updated["notes"])
	assert.Equal(t, created["created_at"], updated["created_at"])

	rec = f.do(t, f.ana, http.MethodGet, petPath(f.rex, "/records/"+itoa(id)), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, f.ana, http.MethodDelete, petPath(f.rex, "/records/"+itoa(id)), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Health record deleted successfully", decode[map[string]string](t, rec)["message"])

	rec = f.do(t, f.ana, http.MethodDelete, petPath(f.rex, "/records/"+itoa(id)), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Health record not found", decode[map[string]string](t, rec)["error"])
}

func TestVaccinations_ListedByDateDesc(t *testing.T) {
	f := newFixture(t)

	for _, d := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		rec := f.do(t, f.ana, http.MethodPost, petPath(f.rex, "/vaccinations"),
			`{"vaccineName":"Rabies","vaccinationDate":"`+d+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := f.do(t, f.ana, http.MethodGet, petPath(f.rex, "/vaccinations"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]any](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-03-01", list[0]["vaccination_date"])
	assert.Equal(t, "2024-02-01", list[1]["vaccination_date"])
	assert.Equal(t, "2024-01-01", list[2]["vaccination_date"])
}

func TestMedications_DefaultActive(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, f.ana, http.MethodPost, petPath(f.rex, "/medications"),
		`{"name":"Carprofen","dosage":"25mg","startDate":"2024-01-01","endDate":""}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	m := decode[map[string]any](t, rec)
	assert.Equal(t, true, m["active"])
	assert.Nil(t, m["end_date"])
}

func TestOtherAccount_SeesPetNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, f.bob, http.MethodGet, petPath(f.rex, "/vet-visits"), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Pet not found", decode[map[string]string](t, rec)["error"])

	rec = f.do(t, f.bob, http.MethodPost, petPath(f.rex, "/vet-visits"), `{"visitDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, f.ana, http.MethodPost, petPath(f.rex, "/vet-visits"), `{"visitDate":"2024-01-01","cost":"80"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int64(decode[map[string]any](t, rec)["id"].(float64))

	rec = f.do(t, f.bob, http.MethodGet, petPath(f.rex, "/vet-visits/"+itoa(id)), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationAndIDs(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"missing date", http.MethodPost, petPath(f.rex, "/records"), `{"weight":3}`, http.StatusBadRequest},
		{"bad date", http.MethodPost, petPath(f.rex, "/records"), `{"recordDate":"01/03/2024"}`, http.StatusBadRequest},
		{"negative weight", http.MethodPost, petPath(f.rex, "/records"), `{"recordDate":"2024-03-01","weight":-2}`, http.StatusBadRequest},
		{"text cost", http.MethodPost, petPath(f.rex, "/vet-visits"), `{"visitDate":"2024-03-01","cost":"a lot"}`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, petPath(f.rex, "/vaccinations"), `{"vaccineName":"x","vaccinationDate":"2024-03-01","pet_id":9}`, http.StatusBadRequest},
		{"non numeric pet", http.MethodGet, "/health/pets/abc/records", "", http.StatusNotFound},
		{"non numeric id", http.MethodGet, petPath(f.rex, "/records/abc"), "", http.StatusNotFound},
		{"missing pet", http.MethodGet, "/health/pets/999/records", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, f.ana, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}
