package clients

import (
	"strings"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func validInput() Input {
	return Input{
		FirstName: "María",
		LastName:  "González",
		Email:     "maria@example.com",
		Phone:     "555-123-4567",
		Address:   "Av. Siempre Viva 742",
		Notes:     "prefiere turnos a la mañana",
		IsActive:  boolPtr(true),
	}
}

func TestValidate_OK(t *testing.T) {
	if errs := Validate(validInput()); errs != nil {
		t.Fatalf("expected nil errors, got %#v", errs)
	}
}

func TestValidate_Names(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "First name is required"},
		{"only spaces", "   ", "First name is required"},
		{"too short", "A", "First name must be at least 2 characters"},
		{"too long", strings.Repeat("a", 51), "First name must not exceed 50 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.FirstName = tc.value
			errs := Validate(in)
			if errs == nil || errs["first_name"] != tc.want {
				t.Fatalf("first_name=%q: expected %q, got %#v", tc.value, tc.want, errs)
			}
		})
	}

	// mismas reglas para apellido, con su propio label
	in := validInput()
	in.LastName = ""
	errs := Validate(in)
	if errs == nil || errs["last_name"] != "Last name is required" {
		t.Fatalf("expected last_name required, got %#v", errs)
	}
}

func TestValidate_Email(t *testing.T) {
	in := validInput()
	in.Email = ""
	if errs := Validate(in); errs == nil || errs["email"] != "Email is required" {
		t.Fatalf("expected email required, got %#v", errs)
	}

	for _, bad := range []string{"not-an-email", "a@b", "a b@c.com", "@c.com"} {
		in := validInput()
		in.Email = bad
		if errs := Validate(in); errs == nil || errs["email"] != "Please enter a valid email address" {
			t.Fatalf("email=%q: expected invalid, got %#v", bad, errs)
		}
	}

	for _, good := range []string{"a@b.co", "maria.gonzalez@pets.example.com"} {
		in := validInput()
		in.Email = good
		if errs := Validate(in); errs != nil {
			t.Fatalf("email=%q: expected valid, got %#v", good, errs)
		}
	}
}

func TestValidate_Phone(t *testing.T) {
	good := []string{
		"555-123-4567",
		"5551234567",
		"(555) 123-4567",
		"+1 (555) 123-4567",
		"+12 555.123.4567",
	}
	for _, p := range good {
		in := validInput()
		in.Phone = p
		if errs := Validate(in); errs != nil {
			t.Fatalf("phone=%q: expected valid, got %#v", p, errs)
		}
	}

	bad := []string{"12345", "555-123", "abc-def-ghij", "555-123-45678"}
	for _, p := range bad {
		in := validInput()
		in.Phone = p
		if errs := Validate(in); errs == nil || errs["phone"] != "Please enter a valid phone number" {
			t.Fatalf("phone=%q: expected invalid, got %#v", p, errs)
		}
	}

	in := validInput()
	in.Phone = ""
	if errs := Validate(in); errs == nil || errs["phone"] != "Phone number is required" {
		t.Fatalf("expected phone required, got %#v", errs)
	}
}

func TestValidate_OptionalLengths(t *testing.T) {
	in := validInput()
	in.Address = ""
	in.Notes = ""
	if errs := Validate(in); errs != nil {
		t.Fatalf("address/notes vacíos deberían pasar, got %#v", errs)
	}

	in = validInput()
	in.Address = strings.Repeat("x", 201)
	if errs := Validate(in); errs == nil || errs["address"] != "Address must not exceed 200 characters" {
		t.Fatalf("expected address too long, got %#v", errs)
	}

	in = validInput()
	in.Notes = strings.Repeat("x", 1001)
	if errs := Validate(in); errs == nil || errs["notes"] != "Notes must not exceed 1000 characters" {
		t.Fatalf("expected notes too long, got %#v", errs)
	}
}

func TestValidate_IsActive(t *testing.T) {
	in := validInput()
	in.IsActive = nil
	if errs := Validate(in); errs == nil || errs["is_active"] != "Active status is required" {
		t.Fatalf("expected is_active required, got %#v", errs)
	}

	// false explícito es válido: el puntero distingue "no enviado" de "inactivo"
	in = validInput()
	in.IsActive = boolPtr(false)
	if errs := Validate(in); errs != nil {
		t.Fatalf("is_active=false debería pasar, got %#v", errs)
	}
}
