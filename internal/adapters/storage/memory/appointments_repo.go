package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-grooming-manager/internal/domain/appointments"
)

type appointmentsRepo struct {
	s *Store
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errIDRequired
	}
	if _, exists := r.s.appointments[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	a.Pet = nil
	r.s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	r.fillPet(&a)
	return a, nil
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		r.fillPet(&a)
		out = append(out, a)
	}
	sortAppointments(out)
	return out, nil
}

func (r *appointmentsRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.s.appointments {
		if a.DateTime.Before(from) || a.DateTime.After(to) {
			continue
		}
		r.fillPet(&a)
		out = append(out, a)
	}
	sortAppointments(out)
	return out, nil
}

func (r *appointmentsRepo) Search(ctx context.Context, q string) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.s.appointments {
		r.fillPet(&a)

		// Busca sobre campos propios y del join, igual que el OR en SQL.
		match := containsFold(a.ServiceType, q)
		if a.Pet != nil {
			match = match ||
				containsFold(a.Pet.Name, q) ||
				containsFold(a.Pet.Owner.FirstName, q) ||
				containsFold(a.Pet.Owner.LastName, q)
		}
		if match {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.appointments[a.ID]; !exists {
		return appointments.ErrNotFound
	}
	a.Pet = nil
	r.s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.appointments[id]; !exists {
		return appointments.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

// fillPet se llama con el lock tomado.
func (r *appointmentsRepo) fillPet(a *appointments.Appointment) {
	p, ok := r.s.pets[a.PetID]
	if !ok {
		return
	}
	ref := &appointments.PetRef{ID: p.ID, Name: p.Name}
	if c, ok := r.s.clients[p.ClientID]; ok {
		ref.Owner = appointments.OwnerRef{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
	}
	a.Pet = ref
}

func sortAppointments(out []appointments.Appointment) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].DateTime.Before(out[j].DateTime)
		}
		return out[i].ID < out[j].ID
	})
}
