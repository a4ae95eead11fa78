package appointments

import "time"

// Status define los estados de un turno.
// @Enum scheduled, completed, cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ServiceTypes son las sugerencias del formulario. El tipo de servicio
// sigue siendo texto libre; esta lista solo alimenta el autocompletado.
var ServiceTypes = []string{
	"Grooming",
	"Nail Trimming",
	"Bath",
	"Haircut",
	"Teeth Cleaning",
	"Ear Cleaning",
	"Full Service",
}

// Appointment es un turno de peluquería. Referencia a un Pet obligatorio;
// el cliente se deriva transitivamente vía la mascota.
type Appointment struct {
	ID    string
	PetID string

	DateTime        time.Time // con minutos, sin segundos
	ServiceType     string
	DurationMinutes int // 15 a 480, múltiplo de 15
	Status          Status
	Notes           string

	Price  *float64
	Photos *Photos

	CreatedAt time.Time

	// Pet es el resumen (mascota + dueño) que rellenan las lecturas con join.
	Pet *PetRef
}

// Photos agrupa URLs de fotos antes/después del servicio.
type Photos struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

type PetRef struct {
	ID    string
	Name  string
	Owner OwnerRef
}

type OwnerRef struct {
	ID        string
	FirstName string
	LastName  string
}
