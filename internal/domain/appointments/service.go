package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-grooming-manager/internal/domain/validation"
)

var (
	ErrNotFound = errors.New("appointment not found")
)

// PetDirectory resuelve referencias de mascota contra el módulo pets.
// pets.Service la satisface directo con su método PetExists.
type PetDirectory interface {
	PetExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo Repository
	pets PetDirectory
	now  func() time.Time
}

func NewService(repo Repository, pets PetDirectory) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	if errs := Validate(in); errs != nil {
		return Appointment{}, &validation.Error{Fields: errs}
	}

	petID := strings.TrimSpace(in.PetID)
	ok, err := s.pets.PetExists(ctx, petID)
	if err != nil {
		return Appointment{}, err
	}
	if !ok {
		return Appointment{}, &validation.Error{Fields: map[string]string{"pet_id": "Pet not found"}}
	}

	dt, _ := time.Parse("2006-01-02T15:04", strings.TrimSpace(in.DateTime)) // validado por el schema

	a := Appointment{
		ID:              uuid.NewString(),
		PetID:           petID,
		DateTime:        dt,
		ServiceType:     strings.TrimSpace(in.ServiceType),
		DurationMinutes: *in.DurationMinutes,
		Status:          Status(strings.TrimSpace(in.Status)),
		Notes:           strings.TrimSpace(in.Notes),
		Price:           in.Price,
		Photos:          in.Photos,
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// List devuelve todos los turnos por fecha ascendente, con mascota y dueño.
func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// ListByDateRange lista turnos con from <= date_time <= to (la vista agenda).
func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	return s.repo.ListByDateRange(ctx, from, to)
}

// Search filtra por substring (case-insensitive) sobre nombre de la mascota,
// nombre y apellido del dueño y tipo de servicio. Query vacía equivale a List.
func (s *Service) Search(ctx context.Context, q string) ([]Appointment, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, q)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	PetID           *string
	DateTime        *string
	ServiceType     *string
	Status          *string
	DurationMinutes *int
	Notes           *string
	Price           *float64
	Photos          *Photos
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Appointment, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	duration := current.DurationMinutes
	if in.DurationMinutes != nil {
		duration = *in.DurationMinutes
	}
	price := current.Price
	if in.Price != nil {
		price = in.Price
	}
	photos := current.Photos
	if in.Photos != nil {
		photos = in.Photos
	}

	merged := Input{
		PetID:           pick(in.PetID, current.PetID),
		DateTime:        pick(in.DateTime, current.DateTime.Format("2006-01-02T15:04")),
		ServiceType:     pick(in.ServiceType, current.ServiceType),
		Status:          pick(in.Status, string(current.Status)),
		DurationMinutes: &duration,
		Notes:           pick(in.Notes, current.Notes),
		Price:           price,
		Photos:          photos,
	}

	if errs := Validate(merged); errs != nil {
		return Appointment{}, &validation.Error{Fields: errs}
	}

	if in.PetID != nil {
		ok, err := s.pets.PetExists(ctx, strings.TrimSpace(merged.PetID))
		if err != nil {
			return Appointment{}, err
		}
		if !ok {
			return Appointment{}, &validation.Error{Fields: map[string]string{"pet_id": "Pet not found"}}
		}
	}

	dt, _ := time.Parse("2006-01-02T15:04", strings.TrimSpace(merged.DateTime))

	current.PetID = strings.TrimSpace(merged.PetID)
	current.DateTime = dt
	current.ServiceType = strings.TrimSpace(merged.ServiceType)
	current.DurationMinutes = duration
	current.Status = Status(strings.TrimSpace(merged.Status))
	current.Notes = strings.TrimSpace(merged.Notes)
	current.Price = price
	current.Photos = photos
	current.Pet = nil // el join se rellena en lecturas, no se persiste

	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// UpdateStatus es el atajo de la lista de turnos (marcar completado/cancelado).
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (Appointment, error) {
	status = strings.TrimSpace(status)
	if !validStatus(Status(status)) {
		return Appointment{}, &validation.Error{Fields: map[string]string{"status": "Invalid status"}}
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	current.Status = Status(status)
	current.Pet = nil
	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

// UpdatePhotos reemplaza el set completo de fotos antes/después.
func (s *Service) UpdatePhotos(ctx context.Context, id string, photos *Photos) (Appointment, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	current.Photos = photos
	current.Pet = nil
	if err := s.repo.Update(ctx, current); err != nil {
		return Appointment{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SuggestedServiceTypes devuelve una copia (los handlers no deben mutar la base).
func (s *Service) SuggestedServiceTypes() []string {
	out := make([]string, len(ServiceTypes))
	copy(out, ServiceTypes)
	return out
}

func pick(p *string, cur string) string {
	if p != nil {
		return *p
	}
	return cur
}
