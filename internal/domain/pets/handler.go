package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-grooming-manager/internal/domain/validation"
	"pet-grooming-manager/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})

	// Mascotas de un dueño (selector del formulario de turnos).
	r.Get("/clients/{clientID}/pets", listPetsByClientHandler(svc))
}

type petRequest struct {
	Name      string   `json:"name"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed"`
	BirthDate string   `json:"birth_date"` // YYYY-MM-DD
	Weight    *float64 `json:"weight"`
	ClientID  string   `json:"client_id"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string  `json:"name"`
	Species   *string  `json:"species"`
	Breed     *string  `json:"breed"`
	BirthDate *string  `json:"birth_date"`
	Weight    *float64 `json:"weight"`
	ClientID  *string  `json:"client_id"`
	Status    *string  `json:"status"`
	Notes     *string  `json:"notes"`
}

type petResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Species   string         `json:"species"`
	Breed     string         `json:"breed"`
	BirthDate string         `json:"birth_date"`
	Weight    float64        `json:"weight"`
	ClientID  string         `json:"client_id"`
	Status    string         `json:"status"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Owner     *ownerResponse `json:"owner,omitempty"`
}

type ownerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// @Summary  List or search pets (joined with owner)
// @Tags     pets
// @Produce  json
// @Param    q query string false "substring over name, breed and species"
// @Success  200 {array} petResponse
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary  Create pet
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    payload body petRequest true "pet fields"
// @Success  201 {object} petResponse
// @Failure  422 {object} map[string]any
// @Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), Input{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			BirthDate: req.BirthDate,
			Weight:    req.Weight,
			ClientID:  req.ClientID,
			Status:    req.Status,
			Notes:     req.Notes,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// @Summary  Get pet by id (with owner)
// @Tags     pets
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {object} petResponse
// @Failure  404 {string} string
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writePetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary  Update pet (partial)
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID path string true "pet id"
// @Param    payload body updatePetRequest true "fields to change"
// @Success  200 {object} petResponse
// @Router   /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			BirthDate: req.BirthDate,
			Weight:    req.Weight,
			ClientID:  req.ClientID,
			Status:    req.Status,
			Notes:     req.Notes,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary  Delete pet
// @Tags     pets
// @Param    petID path string true "pet id"
// @Success  204 {string} string ""
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writePetError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  List pets of a client
// @Tags     pets
// @Produce  json
// @Param    clientID path string true "client id"
// @Success  200 {array} petResponse
// @Router   /clients/{clientID}/pets [get]
func listPetsByClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByClient(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet) petResponse {
	out := petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate.Format("2006-01-02"),
		Weight:    p.Weight,
		ClientID:  p.ClientID,
		Status:    string(p.Status),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if p.Owner != nil {
		out.Owner = &ownerResponse{
			ID:        p.Owner.ID,
			FirstName: p.Owner.FirstName,
			LastName:  p.Owner.LastName,
		}
	}
	return out
}

func writePetError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
