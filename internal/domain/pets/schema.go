package pets

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Input son los campos del formulario de mascota. BirthDate viaja como texto
// YYYY-MM-DD (así lo manda el date picker) y Weight es puntero para
// distinguir 0 de "no enviado".
type Input struct {
	Name      string
	Species   string
	Breed     string
	BirthDate string
	Weight    *float64
	ClientID  string
	Status    string
	Notes     string
}

var birthDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate aplica las reglas del formulario de mascotas.
// Devuelve nil si todo está bien; si no, campo -> mensaje.
func Validate(in Input) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = "Pet name is required"
	case utf8.RuneCountInString(name) < 2:
		errs["name"] = "Name must be at least 2 characters"
	case utf8.RuneCountInString(name) > 50:
		errs["name"] = "Name must not exceed 50 characters"
	}

	checkText(errs, "species", "Species", in.Species)
	checkText(errs, "breed", "Breed", in.Breed)

	bd := strings.TrimSpace(in.BirthDate)
	switch {
	case bd == "":
		errs["birth_date"] = "Birth date is required"
	case !birthDateRe.MatchString(bd):
		errs["birth_date"] = "Birth date must be in YYYY-MM-DD format"
	default:
		// El regex deja pasar 2024-13-45; el parse no.
		if _, err := time.Parse("2006-01-02", bd); err != nil {
			errs["birth_date"] = "Birth date must be in YYYY-MM-DD format"
		}
	}

	switch {
	case in.Weight == nil:
		errs["weight"] = "Weight is required"
	case *in.Weight < 0.1:
		errs["weight"] = "Weight must be greater than 0"
	case *in.Weight > 200:
		errs["weight"] = "Weight must not exceed 200 kg"
	}

	if strings.TrimSpace(in.ClientID) == "" {
		errs["client_id"] = "Owner is required"
	}

	status := strings.TrimSpace(in.Status)
	switch {
	case status == "":
		errs["status"] = "Status is required"
	case Status(status) != StatusActive && Status(status) != StatusInactive:
		errs["status"] = "Invalid status"
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Notes)) > 1000 {
		errs["notes"] = "Notes must not exceed 1000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkText(errs map[string]string, field, label, v string) {
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
