package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-grooming-manager/internal/domain/pets"
)

type petsRepo struct {
	s *Store
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errIDRequired
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	p.Owner = nil
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	r.fillOwner(&p)
	return p, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.s.pets))
	for _, p := range r.s.pets {
		r.fillOwner(&p)
		out = append(out, p)
	}
	sortPets(out)
	return out, nil
}

func (r *petsRepo) ListByClient(ctx context.Context, clientID string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.ClientID == clientID {
			r.fillOwner(&p)
			out = append(out, p)
		}
	}
	sortPets(out)
	return out, nil
}

func (r *petsRepo) Search(ctx context.Context, q string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if containsFold(p.Name, q) || containsFold(p.Breed, q) || containsFold(p.Species, q) {
			r.fillOwner(&p)
			out = append(out, p)
		}
	}
	sortPets(out)
	return out, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; !exists {
		return pets.ErrNotFound
	}
	p.Owner = nil
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[id]; !exists {
		return pets.ErrNotFound
	}

	// Misma restricción que el FK en Postgres: con turnos no se borra.
	for _, a := range r.s.appointments {
		if a.PetID == id {
			return errors.New("pet is referenced by appointments")
		}
	}

	delete(r.s.pets, id)
	return nil
}

// fillOwner se llama con el lock tomado.
func (r *petsRepo) fillOwner(p *pets.Pet) {
	if c, ok := r.s.clients[p.ClientID]; ok {
		p.Owner = &pets.Owner{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
	}
}

func sortPets(out []pets.Pet) {
	sort.Slice(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if ni != nj {
			return ni < nj
		}
		return out[i].ID < out[j].ID
	})
}
