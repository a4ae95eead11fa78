package appointments

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Input son los campos del formulario de turno. DateTime viaja como texto
// YYYY-MM-DDTHH:mm (formato del datetime picker); DurationMinutes es puntero
// para distinguir 0 de "no enviado".
type Input struct {
	PetID           string
	DateTime        string
	ServiceType     string
	Status          string
	DurationMinutes *int
	Notes           string
	Price           *float64
	Photos          *Photos
}

var dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)

// Validate aplica las reglas del formulario de turnos.
// Devuelve nil si todo está bien; si no, campo -> mensaje.
func Validate(in Input) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(in.PetID) == "" {
		errs["pet_id"] = "Pet is required"
	}

	dt := strings.TrimSpace(in.DateTime)
	switch {
	case dt == "":
		errs["date_time"] = "Date and time are required"
	case !dateTimeRe.MatchString(dt):
		errs["date_time"] = "Date and time must be in YYYY-MM-DDTHH:mm format"
	default:
		if _, err := time.Parse("2006-01-02T15:04", dt); err != nil {
			errs["date_time"] = "Date and time must be in YYYY-MM-DDTHH:mm format"
		}
	}

	st := strings.TrimSpace(in.ServiceType)
	switch {
	case st == "":
		errs["service_type"] = "Service type is required"
	case utf8.RuneCountInString(st) < 2:
		errs["service_type"] = "Service type must be at least 2 characters"
	case utf8.RuneCountInString(st) > 50:
		errs["service_type"] = "Service type must not exceed 50 characters"
	}

	status := strings.TrimSpace(in.Status)
	switch {
	case status == "":
		errs["status"] = "Status is required"
	case !validStatus(Status(status)):
		errs["status"] = "Invalid status"
	}

	switch {
	case in.DurationMinutes == nil:
		errs["duration_minutes"] = "Duration is required"
	case *in.DurationMinutes < 15:
		errs["duration_minutes"] = "Duration must be at least 15 minutes"
	case *in.DurationMinutes > 480:
		errs["duration_minutes"] = "Duration must not exceed 8 hours"
	case *in.DurationMinutes%15 != 0:
		errs["duration_minutes"] = "Duration must be in 15-minute increments"
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.Notes)) > 1000 {
		errs["notes"] = "Notes must not exceed 1000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
