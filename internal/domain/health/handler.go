package health

import (
	"net/http"

	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes asume que r ya está detrás de middleware.RequireAuth.
func RegisterRoutes(r chi.Router, svc *Service) {
	records := resource[Record, RecordInput, recordRequest]{
		coll:     svc.Records,
		notFound: ErrRecordNotFound,
		input:    recordRequest.toInput,
		output:   func(v Record) any { return toRecordResponse(v) },
	}
	medications := resource[Medication, MedicationInput, medicationRequest]{
		coll:     svc.Medications,
		notFound: ErrMedicationNotFound,
		input:    medicationRequest.toInput,
		output:   func(v Medication) any { return toMedicationResponse(v) },
	}
	vaccinations := resource[Vaccination, VaccinationInput, vaccinationRequest]{
		coll:     svc.Vaccinations,
		notFound: ErrVaccinationNotFound,
		input:    vaccinationRequest.toInput,
		output:   func(v Vaccination) any { return toVaccinationResponse(v) },
	}
	vetVisits := resource[VetVisit, VetVisitInput, vetVisitRequest]{
		coll:     svc.VetVisits,
		notFound: ErrVetVisitNotFound,
		input:    vetVisitRequest.toInput,
		output:   func(v VetVisit) any { return toVetVisitResponse(v) },
	}

	r.Route("/health/pets/{petID}", func(hr chi.Router) {
		hr.Get("/records", listRecordsHandler(records))
		hr.Post("/records", createRecordHandler(records))
		hr.Get("/records/{id}", getRecordHandler(records))
		hr.Put("/records/{id}", updateRecordHandler(records))
		hr.Delete("/records/{id}", deleteRecordHandler(records))

		hr.Get("/medications", listMedicationsHandler(medications))
		hr.Post("/medications", createMedicationHandler(medications))
		hr.Get("/medications/{id}", getMedicationHandler(medications))
		hr.Put("/medications/{id}", updateMedicationHandler(medications))
		hr.Delete("/medications/{id}", deleteMedicationHandler(medications))

		hr.Get("/vaccinations", listVaccinationsHandler(vaccinations))
		hr.Post("/vaccinations", createVaccinationHandler(vaccinations))
		hr.Get("/vaccinations/{id}", getVaccinationHandler(vaccinations))
		hr.Put("/vaccinations/{id}", updateVaccinationHandler(vaccinations))
		hr.Delete("/vaccinations/{id}", deleteVaccinationHandler(vaccinations))

		hr.Get("/vet-visits", listVetVisitsHandler(vetVisits))
		hr.Post("/vet-visits", createVetVisitHandler(vetVisits))
		hr.Get("/vet-visits/{id}", getVetVisitHandler(vetVisits))
		hr.Put("/vet-visits/{id}", updateVetVisitHandler(vetVisits))
		hr.Delete("/vet-visits/{id}", deleteVetVisitHandler(vetVisits))
	})
}

// resource implementa los cinco handlers de un tipo de registro.
type resource[T any, I Input[T], Req any] struct {
	coll     *Collection[T, I]
	notFound error
	input    func(Req) I
	output   func(T) any
}

// scope resuelve cuenta y mascota de la ruta; si falla ya respondió.
func (res resource[T, I, Req]) scope(w http.ResponseWriter, r *http.Request) (accountID, petID int64, ok bool) {
	accountID, err := middleware.AccountID(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return 0, 0, false
	}
	petID, ok = respond.IDParam(r, "petID")
	if !ok {
		respond.Error(w, r, pets.ErrNotFound)
		return 0, 0, false
	}
	return accountID, petID, true
}

func (res resource[T, I, Req]) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := respond.IDParam(r, "id")
	if !ok {
		respond.Error(w, r, res.notFound)
	}
	return id, ok
}

func (res resource[T, I, Req]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, petID, ok := res.scope(w, r)
		if !ok {
			return
		}

		items, err := res.coll.List(r.Context(), accountID, petID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]any, 0, len(items))
		for _, v := range items {
			out = append(out, res.output(v))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func (res resource[T, I, Req]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, petID, ok := res.scope(w, r)
		if !ok {
			return
		}

		var req Req
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		v, err := res.coll.Create(r.Context(), accountID, petID, res.input(req))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, res.output(v))
	}
}

func (res resource[T, I, Req]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, petID, ok := res.scope(w, r)
		if !ok {
			return
		}
		id, ok := res.itemID(w, r)
		if !ok {
			return
		}

		v, err := res.coll.Get(r.Context(), accountID, petID, id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, res.output(v))
	}
}

func (res resource[T, I, Req]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, petID, ok := res.scope(w, r)
		if !ok {
			return
		}
		id, ok := res.itemID(w, r)
		if !ok {
			return
		}

		var req Req
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		v, err := res.coll.Update(r.Context(), accountID, petID, id, res.input(req))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, res.output(v))
	}
}

func (res resource[T, I, Req]) delete(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, petID, ok := res.scope(w, r)
		if !ok {
			return
		}
		id, ok := res.itemID(w, r)
		if !ok {
			return
		}

		if err := res.coll.Delete(r.Context(), accountID, petID, id); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Message(w, http.StatusOK, message)
	}
}
