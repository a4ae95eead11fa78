package dashboard

import (
	"context"

	"pet-grooming-manager/internal/domain/appointments"
	"pet-grooming-manager/internal/domain/clients"
	"pet-grooming-manager/internal/domain/pets"
)

// Stats son los contadores de la pantalla de inicio.
type Stats struct {
	TotalClients      int
	ActiveClients     int
	TotalPets         int
	TotalAppointments int
}

type Service struct {
	clients      *clients.Service
	pets         *pets.Service
	appointments *appointments.Service
}

func NewService(c *clients.Service, p *pets.Service, a *appointments.Service) *Service {
	return &Service{
		clients:      c,
		pets:         p,
		appointments: a,
	}
}

// Stats cuenta sobre los listados completos. Con los volúmenes de una
// peluquería alcanza; si crece, conviene bajar esto a COUNTs en el repo.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	cs, err := s.clients.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	ps, err := s.pets.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	as, err := s.appointments.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	out := Stats{
		TotalClients:      len(cs),
		TotalPets:         len(ps),
		TotalAppointments: len(as),
	}
	for _, c := range cs {
		if c.IsActive {
			out.ActiveClients++
		}
	}
	return out, nil
}
