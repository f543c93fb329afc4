package pets

import (
	"net/http"
	"time"

	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/civil"
	"pet-health-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes asume que r ya está detrás de middleware.RequireAuth.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// petRequest es el perfil completo de la mascota (create y update).
type petRequest struct {
	Name            string         `json:"name"`
	Species         string         `json:"species"`
	Breed           *string        `json:"breed"`
	DateOfBirth     civil.NullDate `json:"dateOfBirth" swaggertype:"string" example:"2020-05-17"`
	Gender          *string        `json:"gender"`
	Color           *string        `json:"color"`
	MicrochipNumber *string        `json:"microchipNumber"`
	PhotoURL        *string        `json:"photoUrl"`
}

// petResponse conserva los nombres de columna (snake_case) que lee el cliente.
type petResponse struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"user_id"`
	Name            string         `json:"name"`
	Species         string         `json:"species"`
	Breed           *string        `json:"breed"`
	DateOfBirth     civil.NullDate `json:"date_of_birth" swaggertype:"string"`
	Gender          *string        `json:"gender"`
	Color           *string        `json:"color"`
	MicrochipNumber *string        `json:"microchip_number"`
	PhotoURL        *string        `json:"photo_url"`
	CreatedAt       time.Time      `json:"created_at"`
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Description Devuelve las mascotas de la cuenta autenticada, más recientes primero.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de cuenta para depuración"
// @Success 200 {array} petResponse
// @Failure 401 {object} map[string]string "sin token"
// @Failure 500 {object} map[string]string "Server error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		items, err := svc.ListByOwner(r.Context(), accountID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Description Devuelve 404 tanto si la mascota no existe como si pertenece a otra cuenta.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {object} map[string]string "sin token"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		petID, ok := respond.IDParam(r, "petID")
		if !ok {
			respond.Error(w, r, ErrNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), accountID, petID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota para la cuenta autenticada. name y species son obligatorios; dateOfBirth en formato YYYY-MM-DD.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body petRequest true "Perfil de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} map[string]string "Name and species are required / json inválido"
// @Failure 401 {object} map[string]string "sin token"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req petRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), accountID, req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplazo completo del perfil: los campos opcionales omitidos quedan en null.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Perfil completo"
// @Success 200 {object} petResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		petID, ok := respond.IDParam(r, "petID")
		if !ok {
			respond.Error(w, r, ErrNotFound)
			return
		}

		var req petRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), accountID, petID, req.toInput())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Borra la mascota y, en cascada, todos sus registros de salud.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		petID, ok := respond.IDParam(r, "petID")
		if !ok {
			respond.Error(w, r, ErrNotFound)
			return
		}

		if err := svc.Delete(r.Context(), accountID, petID); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Message(w, http.StatusOK, "Pet deleted successfully")
	}
}

func (req petRequest) toInput() Input {
	return Input{
		Name:            req.Name,
		Species:         req.Species,
		Breed:           req.Breed,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Color:           req.Color,
		MicrochipNumber: req.MicrochipNumber,
		PhotoURL:        req.PhotoURL,
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:              p.ID,
		UserID:          p.AccountID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		DateOfBirth:     p.DateOfBirth,
		Gender:          p.Gender,
		Color:           p.Color,
		MicrochipNumber: p.MicrochipNumber,
		PhotoURL:        p.PhotoURL,
		CreatedAt:       p.CreatedAt,
	}
}
