package clients

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input son los campos tal como llegan del formulario de cliente.
// IsActive es puntero para distinguir "false" de "no enviado".
type Input struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	IsActive  *bool
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Teléfono estilo norteamericano: +código opcional, área con o sin
	// paréntesis, grupos 3-3-4 con separadores flexibles.
	phoneRe = regexp.MustCompile(`^(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
)

// Validate aplica las reglas del formulario de clientes.
// Devuelve nil si todo está bien; si no, campo -> mensaje. Nunca panics:
// el resultado siempre es un mapa consumible por el formulario.
func Validate(in Input) map[string]string {
	errs := map[string]string{}

	checkPersonName(errs, "first_name", "First name", in.FirstName)
	checkPersonName(errs, "last_name", "Last name", in.LastName)

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}

	phone := strings.TrimSpace(in.Phone)
	switch {
	case phone == "":
		errs["phone"] = "Phone number is required"
	case !phoneRe.MatchString(phone):
		errs["phone"] = "Please enter a valid phone number"
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Address)) > 200 {
		errs["address"] = "Address must not exceed 200 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Notes)) > 1000 {
		errs["notes"] = "Notes must not exceed 1000 characters"
	}

	if in.IsActive == nil {
		errs["is_active"] = "Active status is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkPersonName(errs map[string]string, field, label, v string) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs[field] = label + " is required"
	case utf8.RuneCountInString(v) < 2:
		errs[field] = label + " must be at least 2 characters"
	case utf8.RuneCountInString(v) > 50:
		errs[field] = label + " must not exceed 50 characters"
	}
}
