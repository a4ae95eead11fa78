package pets

import "time"

// Status define los estados de una mascota.
// @Enum active, inactive
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Pet es el perfil de una mascota atendida en la peluquería.
// Pertenece siempre a un Client (ClientID obligatorio).
type Pet struct {
	ID       string
	Name     string
	Species  string
	Breed    string
	ClientID string

	BirthDate time.Time // solo fecha (DATE en Postgres)
	Weight    float64   // kg, 0.1 a 200 inclusive
	Status    Status
	Notes     string

	CreatedAt time.Time

	// Owner es el resumen del dueño que rellenan las lecturas con join.
	Owner *Owner
}

// Owner es lo que el formulario necesita para mostrar "Nombre Apellido"
// en el selector de dueño. Resumen local para no importar el módulo clients.
type Owner struct {
	ID        string
	FirstName string
	LastName  string
}
