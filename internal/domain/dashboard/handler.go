package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-grooming-manager/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", statsHandler(svc))
}

type statsResponse struct {
	TotalClients      int `json:"total_clients"`
	ActiveClients     int `json:"active_clients"`
	TotalPets         int `json:"total_pets"`
	TotalAppointments int `json:"total_appointments"`
}

// @Summary  Dashboard counters
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} statsResponse
// @Router   /dashboard [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(statsResponse{
			TotalClients:      st.TotalClients,
			ActiveClients:     st.ActiveClients,
			TotalPets:         st.TotalPets,
			TotalAppointments: st.TotalAppointments,
		})
	}
}
