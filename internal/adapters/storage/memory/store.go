package memory

import (
	"errors"
	"strings"
	"sync"

	"pet-grooming-manager/internal/domain/appointments"
	"pet-grooming-manager/internal/domain/clients"
	"pet-grooming-manager/internal/domain/pets"
)

// Store guarda las tres tablas en memoria detrás de un solo lock, para que
// las lecturas con join (pet -> dueño, turno -> mascota -> dueño) sean
// consistentes. Es el doble de pruebas del backend hosteado: misma semántica
// de orden, búsqueda y restricciones de FK que el adapter de Postgres.
type Store struct {
	mu           sync.RWMutex
	clients      map[string]clients.Client
	pets         map[string]pets.Pet
	appointments map[string]appointments.Appointment
}

func NewStore() *Store {
	return &Store{
		clients:      make(map[string]clients.Client),
		pets:         make(map[string]pets.Pet),
		appointments: make(map[string]appointments.Appointment),
	}
}

func (s *Store) Clients() clients.Repository           { return &clientsRepo{s} }
func (s *Store) Pets() pets.Repository                 { return &petsRepo{s} }
func (s *Store) Appointments() appointments.Repository { return &appointmentsRepo{s} }

var errIDRequired = errors.New("id required")

// containsFold: substring case-insensitive, el equivalente del ILIKE '%q%'.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
