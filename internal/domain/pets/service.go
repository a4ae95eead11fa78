package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-grooming-manager/internal/domain/validation"
)

var (
	ErrNotFound = errors.New("pet not found")
)

// ClientDirectory resuelve referencias de dueño contra el módulo clients.
// Interface propia para evitar ciclos de imports; clients.Service la
// satisface directo con su método ClientExists.
type ClientDirectory interface {
	ClientExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    Repository
	clients ClientDirectory
	now     func() time.Time
}

func NewService(repo Repository, clients ClientDirectory) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if errs := Validate(in); errs != nil {
		return Pet{}, &validation.Error{Fields: errs}
	}

	clientID := strings.TrimSpace(in.ClientID)
	ok, err := s.clients.ClientExists(ctx, clientID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, &validation.Error{Fields: map[string]string{"client_id": "Owner not found"}}
	}

	bd, _ := time.Parse("2006-01-02", strings.TrimSpace(in.BirthDate)) // validado por el schema

	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		ClientID:  clientID,
		BirthDate: bd,
		Weight:    *in.Weight,
		Status:    Status(strings.TrimSpace(in.Status)),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve todas las mascotas ordenadas por nombre, con su dueño.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// ListByClient lista las mascotas de un dueño, ordenadas por nombre.
func (s *Service) ListByClient(ctx context.Context, clientID string) ([]Pet, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// Search filtra por substring (case-insensitive) sobre nombre, raza y
// especie. Query vacía equivale a List.
func (s *Service) Search(ctx context.Context, q string) ([]Pet, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, q)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name      *string
	Species   *string
	Breed     *string
	BirthDate *string
	Weight    *float64
	ClientID  *string
	Status    *string
	Notes     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	weight := current.Weight
	if in.Weight != nil {
		weight = *in.Weight
	}

	merged := Input{
		Name:      pick(in.Name, current.Name),
		Species:   pick(in.Species, current.Species),
		Breed:     pick(in.Breed, current.Breed),
		BirthDate: pick(in.BirthDate, current.BirthDate.Format("2006-01-02")),
		Weight:    &weight,
		ClientID:  pick(in.ClientID, current.ClientID),
		Status:    pick(in.Status, string(current.Status)),
		Notes:     pick(in.Notes, current.Notes),
	}

	if errs := Validate(merged); errs != nil {
		return Pet{}, &validation.Error{Fields: errs}
	}

	// Si cambió el dueño, la nueva referencia tiene que existir.
	if in.ClientID != nil {
		ok, err := s.clients.ClientExists(ctx, strings.TrimSpace(merged.ClientID))
		if err != nil {
			return Pet{}, err
		}
		if !ok {
			return Pet{}, &validation.Error{Fields: map[string]string{"client_id": "Owner not found"}}
		}
	}

	bd, _ := time.Parse("2006-01-02", strings.TrimSpace(merged.BirthDate))

	current.Name = strings.TrimSpace(merged.Name)
	current.Species = strings.TrimSpace(merged.Species)
	current.Breed = strings.TrimSpace(merged.Breed)
	current.BirthDate = bd
	current.Weight = weight
	current.ClientID = strings.TrimSpace(merged.ClientID)
	current.Status = Status(strings.TrimSpace(merged.Status))
	current.Notes = strings.TrimSpace(merged.Notes)
	current.Owner = nil // el join se rellena en lecturas, no se persiste

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// PetExists resuelve referencias de mascota desde el módulo appointments.
func (s *Service) PetExists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func pick(p *string, cur string) string {
	if p != nil {
		return *p
	}
	return cur
}
