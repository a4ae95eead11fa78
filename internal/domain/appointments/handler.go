package appointments

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
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/service-types", serviceTypesHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
		ar.Patch("/{appointmentID}/status", updateStatusHandler(svc))
		ar.Patch("/{appointmentID}/photos", updatePhotosHandler(svc))
	})
}

type appointmentRequest struct {
	PetID           string   `json:"pet_id"`
	DateTime        string   `json:"date_time"` // YYYY-MM-DDTHH:mm
	ServiceType     string   `json:"service_type"`
	Status          string   `json:"status"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	Price           *float64 `json:"price"`
	Photos          *Photos  `json:"photos"`
}

type updateAppointmentRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	PetID           *string  `json:"pet_id"`
	DateTime        *string  `json:"date_time"`
	ServiceType     *string  `json:"service_type"`
	Status          *string  `json:"status"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           *string  `json:"notes"`
	Price           *float64 `json:"price"`
	Photos          *Photos  `json:"photos"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updatePhotosRequest struct {
	Photos *Photos `json:"photos"`
}

type appointmentResponse struct {
	ID              string          `json:"id"`
	PetID           string          `json:"pet_id"`
	DateTime        string          `json:"date_time"`
	ServiceType     string          `json:"service_type"`
	Status          string          `json:"status"`
	DurationMinutes int             `json:"duration_minutes"`
	Notes           string          `json:"notes,omitempty"`
	Price           *float64        `json:"price,omitempty"`
	Photos          *Photos         `json:"photos,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Pet             *petRefResponse `json:"pet,omitempty"`
}

type petRefResponse struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Owner ownerRefResponse `json:"owner"`
}

type ownerRefResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// listAppointmentsHandler lista turnos; soporta ?q= (búsqueda) y
// ?from=&to= (rango YYYY-MM-DDTHH:mm, la vista agenda).
// @Summary  List, search or range-filter appointments
// @Tags     appointments
// @Produce  json
// @Param    q    query string false "substring over pet name, owner name and service type"
// @Param    from query string false "range start, YYYY-MM-DDTHH:mm"
// @Param    to   query string false "range end, YYYY-MM-DDTHH:mm"
// @Success  200 {array} appointmentResponse
// @Router   /appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			items []Appointment
			err   error
		)

		from := strings.TrimSpace(r.URL.Query().Get("from"))
		to := strings.TrimSpace(r.URL.Query().Get("to"))
		if from != "" || to != "" {
			fromT, err1 := time.Parse("2006-01-02T15:04", from)
			toT, err2 := time.Parse("2006-01-02T15:04", to)
			if err1 != nil || err2 != nil {
				http.Error(w, "from/to must be YYYY-MM-DDTHH:mm", http.StatusBadRequest)
				return
			}
			items, err = svc.ListByDateRange(r.Context(), fromT, toT)
		} else {
			items, err = svc.Search(r.Context(), r.URL.Query().Get("q"))
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary  Create appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    payload body appointmentRequest true "appointment fields"
// @Success  201 {object} appointmentResponse
// @Failure  422 {object} map[string]any
// @Router   /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), Input{
			PetID:           req.PetID,
			DateTime:        req.DateTime,
			ServiceType:     req.ServiceType,
			Status:          req.Status,
			DurationMinutes: req.DurationMinutes,
			Notes:           req.Notes,
			Price:           req.Price,
			Photos:          req.Photos,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// @Summary  Get appointment by id (with pet and owner)
// @Tags     appointments
// @Produce  json
// @Param    appointmentID path string true "appointment id"
// @Success  200 {object} appointmentResponse
// @Failure  404 {string} string
// @Router   /appointments/{appointmentID} [get]
func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// @Summary  Update appointment (partial)
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    appointmentID path string true "appointment id"
// @Param    payload body updateAppointmentRequest true "fields to change"
// @Success  200 {object} appointmentResponse
// @Router   /appointments/{appointmentID} [patch]
func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "appointmentID"), UpdateInput{
			PetID:           req.PetID,
			DateTime:        req.DateTime,
			ServiceType:     req.ServiceType,
			Status:          req.Status,
			DurationMinutes: req.DurationMinutes,
			Notes:           req.Notes,
			Price:           req.Price,
			Photos:          req.Photos,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// @Summary  Update appointment status
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    appointmentID path string true "appointment id"
// @Param    payload body updateStatusRequest true "new status"
// @Success  200 {object} appointmentResponse
// @Router   /appointments/{appointmentID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), req.Status)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// @Summary  Replace appointment before/after photos
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    appointmentID path string true "appointment id"
// @Param    payload body updatePhotosRequest true "photo URL lists"
// @Success  200 {object} appointmentResponse
// @Router   /appointments/{appointmentID}/photos [patch]
func updatePhotosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updatePhotosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdatePhotos(r.Context(), chi.URLParam(r, "appointmentID"), req.Photos)
		if err != nil {
			writeAppointmentError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

// @Summary  Delete appointment
// @Tags     appointments
// @Param    appointmentID path string true "appointment id"
// @Success  204 {string} string ""
// @Router   /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			writeAppointmentError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary  Suggested service types for the appointment form
// @Tags     appointments
// @Produce  json
// @Success  200 {array} string
// @Router   /appointments/service-types [get]
func serviceTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, svc.SuggestedServiceTypes())
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	out := appointmentResponse{
		ID:              a.ID,
		PetID:           a.PetID,
		DateTime:        a.DateTime.Format("2006-01-02T15:04"),
		ServiceType:     a.ServiceType,
		Status:          string(a.Status),
		DurationMinutes: a.DurationMinutes,
		Notes:           a.Notes,
		Price:           a.Price,
		Photos:          a.Photos,
		CreatedAt:       a.CreatedAt,
	}
	if a.Pet != nil {
		out.Pet = &petRefResponse{
			ID:   a.Pet.ID,
			Name: a.Pet.Name,
			Owner: ownerRefResponse{
				ID:        a.Pet.Owner.ID,
				FirstName: a.Pet.Owner.FirstName,
				LastName:  a.Pet.Owner.LastName,
			},
		}
	}
	return out
}

func writeAppointmentError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
