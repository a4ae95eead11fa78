package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-grooming-manager/internal/domain/clients"
)

type clientsRepo struct {
	s *Store
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errIDRequired
	}
	if _, exists := r.s.clients[c.ID]; exists {
		return errors.New("client already exists")
	}
	c.Pets = nil
	r.s.clients[c.ID] = c
	return nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}

	// Embebe el resumen de mascotas, como el select con join por id.
	for _, p := range r.s.pets {
		if p.ClientID == c.ID {
			c.Pets = append(c.Pets, clients.PetSummary{ID: p.ID, Name: p.Name, Species: p.Species})
		}
	}
	sort.Slice(c.Pets, func(i, j int) bool { return c.Pets[i].Name < c.Pets[j].Name })

	return c, nil
}

func (r *clientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	sortClients(out)
	return out, nil
}

func (r *clientsRepo) Search(ctx context.Context, q string) ([]clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clients.Client, 0)
	for _, c := range r.s.clients {
		if containsFold(c.FirstName, q) || containsFold(c.LastName, q) || containsFold(c.Email, q) {
			out = append(out, c)
		}
	}
	sortClients(out)
	return out, nil
}

func (r *clientsRepo) Update(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[c.ID]; !exists {
		return clients.ErrNotFound
	}
	c.Pets = nil
	r.s.clients[c.ID] = c
	return nil
}

func (r *clientsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[id]; !exists {
		return clients.ErrNotFound
	}

	// Misma restricción que el FK en Postgres: con mascotas no se borra.
	for _, p := range r.s.pets {
		if p.ClientID == id {
			return errors.New("client is referenced by pets")
		}
	}

	delete(r.s.clients, id)
	return nil
}

// Orden del listado: apellido asc, nombre de desempate (estable para tests).
func sortClients(out []clients.Client) {
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].LastName), strings.ToLower(out[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
	})
}
