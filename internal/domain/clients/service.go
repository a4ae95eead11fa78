package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-grooming-manager/internal/domain/validation"
)

var (
	ErrNotFound = errors.New("client not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Client, error) {
	if errs := Validate(in); errs != nil {
		return Client{}, &validation.Error{Fields: errs}
	}

	c := Client{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
		IsActive:  *in.IsActive,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos los clientes ordenados por apellido.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Search filtra por substring (case-insensitive) sobre nombre, apellido y
// email. Query vacía equivale a List: misma semántica que el listado completo.
func (s *Service) Search(ctx context.Context, q string) ([]Client, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, q)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	Notes     *string
	IsActive  *bool
}

// Update aplica solo los campos enviados y revalida el estado resultante
// completo, para que un PATCH parcial no pueda dejar la ficha inválida.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Client, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	active := current.IsActive
	if in.IsActive != nil {
		active = *in.IsActive
	}

	merged := Input{
		FirstName: pick(in.FirstName, current.FirstName),
		LastName:  pick(in.LastName, current.LastName),
		Email:     pick(in.Email, current.Email),
		Phone:     pick(in.Phone, current.Phone),
		Address:   pick(in.Address, current.Address),
		Notes:     pick(in.Notes, current.Notes),
		IsActive:  &active,
	}

	if errs := Validate(merged); errs != nil {
		return Client{}, &validation.Error{Fields: errs}
	}

	current.FirstName = strings.TrimSpace(merged.FirstName)
	current.LastName = strings.TrimSpace(merged.LastName)
	current.Email = strings.TrimSpace(merged.Email)
	current.Phone = strings.TrimSpace(merged.Phone)
	current.Address = strings.TrimSpace(merged.Address)
	current.Notes = strings.TrimSpace(merged.Notes)
	current.IsActive = active
	current.Pets = nil // el join se rellena en lecturas, no se persiste

	if err := s.repo.Update(ctx, current); err != nil {
		return Client{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ClientExists resuelve referencias de dueño desde el módulo pets.
// Método propio para no exponer el Repository fuera del módulo.
func (s *Service) ClientExists(ctx context.Context, id string) (bool, error) {
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
