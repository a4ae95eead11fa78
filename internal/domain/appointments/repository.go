package appointments

import (
	"context"
	"time"
)

// Repository: las lecturas devuelven Appointment con Pet (y su dueño)
// rellenado, siempre ordenado por date_time ascendente.
type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Appointment, error)
	Search(ctx context.Context, q string) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
}
