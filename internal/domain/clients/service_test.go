package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-grooming-manager/internal/domain/validation"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID       map[string]Client
	createCall int
	searchCall int
	listCall   int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Client{}}
}

func (r *testRepo) Create(ctx context.Context, c Client) error {
	r.createCall++
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return Client{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) List(ctx context.Context) ([]Client, error) {
	r.listCall++
	out := make([]Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *testRepo) Search(ctx context.Context, q string) ([]Client, error) {
	r.searchCall++
	return nil, nil
}

func (r *testRepo) Update(ctx context.Context, c Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndPersists(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	in := validInput()
	in.FirstName = "  María "
	in.Email = " maria@example.com "

	c, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected generated id")
	}
	if c.FirstName != "María" || c.Email != "maria@example.com" {
		t.Fatalf("expected trimmed fields, got %q / %q", c.FirstName, c.Email)
	}
	if c.CreatedAt != now {
		t.Fatalf("expected CreatedAt = now")
	}

	stored, err := repo.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetByID after create: %v", err)
	}
	if stored.LastName != "González" {
		t.Fatalf("expected persisted client, got %#v", stored)
	}
}

func TestService_Create_InvalidInput_NoRepoCall(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := validInput()
	in.Email = "bad"

	_, err := svc.Create(context.Background(), in)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if verr.Fields["email"] != "Please enter a valid email address" {
		t.Fatalf("expected email message, got %#v", verr.Fields)
	}
	if repo.createCall != 0 {
		t.Fatalf("expected no repo call on invalid input, got %d", repo.createCall)
	}
}

func TestService_Update_PartialMergesAndRevalidates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newPhone := "(555) 987-6543"
	updated, err := svc.Update(context.Background(), c.ID, UpdateInput{Phone: &newPhone})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Phone != newPhone {
		t.Fatalf("expected phone updated, got %q", updated.Phone)
	}
	if updated.FirstName != c.FirstName || updated.Email != c.Email {
		t.Fatalf("expected untouched fields preserved, got %#v", updated)
	}

	// un PATCH que deja la ficha inválida se rechaza entero
	bad := "x"
	_, err = svc.Update(context.Background(), c.ID, UpdateInput{FirstName: &bad})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if verr.Fields["first_name"] != "First name must be at least 2 characters" {
		t.Fatalf("expected first_name message, got %#v", verr.Fields)
	}

	stored, _ := repo.GetByID(context.Background(), c.ID)
	if stored.FirstName != c.FirstName {
		t.Fatalf("invalid patch should not persist, got %q", stored.FirstName)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "Ana"
	_, err := svc.Update(context.Background(), "nope", UpdateInput{FirstName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Search_EmptyQueryFallsBackToList(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Search(context.Background(), "   "); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if repo.listCall != 1 || repo.searchCall != 0 {
		t.Fatalf("expected List for blank query, got list=%d search=%d", repo.listCall, repo.searchCall)
	}

	if _, err := svc.Search(context.Background(), "mar"); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if repo.searchCall != 1 {
		t.Fatalf("expected Search for non-blank query, got %d", repo.searchCall)
	}
}

func TestService_ClientExists(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	ok, err := svc.ClientExists(context.Background(), c.ID)
	if err != nil || !ok {
		t.Fatalf("expected exists=true, got ok=%v err=%v", ok, err)
	}

	ok, err = svc.ClientExists(context.Background(), "nope")
	if err != nil || ok {
		t.Fatalf("expected exists=false sin error, got ok=%v err=%v", ok, err)
	}
}
