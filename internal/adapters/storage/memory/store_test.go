package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-grooming-manager/internal/domain/appointments"
	"pet-grooming-manager/internal/domain/clients"
	"pet-grooming-manager/internal/domain/pets"
)

func seedClient(t *testing.T, s *Store, id, first, last, email string) {
	t.Helper()
	err := s.Clients().Create(context.Background(), clients.Client{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     "555-123-4567",
		IsActive:  true,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed client %s: %v", id, err)
	}
}

func seedPet(t *testing.T, s *Store, id, name, clientID string) {
	t.Helper()
	err := s.Pets().Create(context.Background(), pets.Pet{
		ID:        id,
		Name:      name,
		Species:   "Dog",
		Breed:     "Mixed",
		ClientID:  clientID,
		BirthDate: time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC),
		Weight:    8.5,
		Status:    pets.StatusActive,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed pet %s: %v", id, err)
	}
}

func seedAppointment(t *testing.T, s *Store, id, petID string, at time.Time) {
	t.Helper()
	err := s.Appointments().Create(context.Background(), appointments.Appointment{
		ID:              id,
		PetID:           petID,
		DateTime:        at,
		ServiceType:     "Grooming",
		DurationMinutes: 60,
		Status:          appointments.StatusScheduled,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		t.Fatalf("seed appointment %s: %v", id, err)
	}
}

func TestClientsRepo_ListOrderAndSearch(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Zoe", "Acosta", "zoe@example.com")
	seedClient(t, s, "c2", "Ana", "Benítez", "ana@example.com")
	seedClient(t, s, "c3", "Bruno", "acosta", "bruno@example.com")

	out, err := s.Clients().List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	// apellido asc (case-insensitive), nombre de desempate
	wantIDs := []string{"c3", "c1", "c2"}
	for i, want := range wantIDs {
		if out[i].ID != want {
			t.Fatalf("order mismatch at %d: want %s, got %s", i, want, out[i].ID)
		}
	}

	found, err := s.Clients().Search(context.Background(), "ACOSTA")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches for 'ACOSTA', got %d", len(found))
	}

	found, err = s.Clients().Search(context.Background(), "bruno@")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 1 || found[0].ID != "c3" {
		t.Fatalf("expected email match c3, got %#v", found)
	}
}

func TestClientsRepo_GetByID_EmbedsPetSummaries(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Ana", "Benítez", "ana@example.com")
	seedPet(t, s, "p2", "Rocky", "c1")
	seedPet(t, s, "p1", "Milo", "c1")
	seedPet(t, s, "p3", "Luna", "other-client")

	c, err := s.Clients().GetByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(c.Pets) != 2 {
		t.Fatalf("expected 2 pet summaries, got %d", len(c.Pets))
	}
	// resumen ordenado por nombre
	if c.Pets[0].Name != "Milo" || c.Pets[1].Name != "Rocky" {
		t.Fatalf("expected [Milo Rocky], got %#v", c.Pets)
	}
}

func TestClientsRepo_Delete_RestrictedByPets(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Ana", "Benítez", "ana@example.com")
	seedPet(t, s, "p1", "Milo", "c1")

	if err := s.Clients().Delete(context.Background(), "c1"); err == nil {
		t.Fatalf("expected delete restricted while pets exist")
	}

	if err := s.Pets().Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	if err := s.Clients().Delete(context.Background(), "c1"); err != nil {
		t.Fatalf("expected delete after pets removed, got %v", err)
	}

	_, err := s.Clients().GetByID(context.Background(), "c1")
	if !errors.Is(err, clients.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPetsRepo_JoinAndListByClient(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Ana", "Benítez", "ana@example.com")
	seedPet(t, s, "p1", "Milo", "c1")
	seedPet(t, s, "p2", "Luna", "c1")
	seedPet(t, s, "p3", "Rocky", "c-other")

	p, err := s.Pets().GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if p.Owner == nil || p.Owner.FirstName != "Ana" || p.Owner.LastName != "Benítez" {
		t.Fatalf("expected owner join, got %#v", p.Owner)
	}

	mine, err := s.Pets().ListByClient(context.Background(), "c1")
	if err != nil {
		t.Fatalf("ListByClient error: %v", err)
	}
	if len(mine) != 2 || mine[0].Name != "Luna" || mine[1].Name != "Milo" {
		t.Fatalf("expected [Luna Milo], got %#v", mine)
	}
}

func TestPetsRepo_Delete_RestrictedByAppointments(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Ana", "Benítez", "ana@example.com")
	seedPet(t, s, "p1", "Milo", "c1")
	seedAppointment(t, s, "a1", "p1", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC))

	if err := s.Pets().Delete(context.Background(), "p1"); err == nil {
		t.Fatalf("expected delete restricted while appointments exist")
	}

	if err := s.Appointments().Delete(context.Background(), "a1"); err != nil {
		t.Fatalf("delete appointment: %v", err)
	}
	if err := s.Pets().Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("expected delete after appointments removed, got %v", err)
	}
}

func TestAppointmentsRepo_OrderRangeAndSearch(t *testing.T) {
	s := NewStore()
	seedClient(t, s, "c1", "Ana", "Benítez", "ana@example.com")
	seedPet(t, s, "p1", "Milo", "c1")

	d1 := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	d3 := time.Date(2026, 3, 20, 16, 0, 0, 0, time.UTC)
	seedAppointment(t, s, "a1", "p1", d1)
	seedAppointment(t, s, "a2", "p1", d2)
	seedAppointment(t, s, "a3", "p1", d3)

	out, err := s.Appointments().List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if out[0].ID != "a2" || out[1].ID != "a1" || out[2].ID != "a3" {
		t.Fatalf("expected date asc [a2 a1 a3], got %#v", out)
	}
	if out[0].Pet == nil || out[0].Pet.Name != "Milo" || out[0].Pet.Owner.LastName != "Benítez" {
		t.Fatalf("expected pet+owner join, got %#v", out[0].Pet)
	}

	// rango inclusivo en ambos bordes
	ranged, err := s.Appointments().ListByDateRange(context.Background(), d2, d1)
	if err != nil {
		t.Fatalf("ListByDateRange error: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("expected 2 in range, got %d", len(ranged))
	}

	// busca también sobre los campos del join
	found, err := s.Appointments().Search(context.Background(), "milo")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 matches by pet name, got %d", len(found))
	}

	found, err = s.Appointments().Search(context.Background(), "benítez")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 matches by owner last name, got %d", len(found))
	}

	found, err = s.Appointments().Search(context.Background(), "nail")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected no matches, got %d", len(found))
	}
}
