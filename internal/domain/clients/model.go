package clients

import "time"

// Client es la ficha del dueño en la peluquería.
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	IsActive  bool

	CreatedAt time.Time

	// Pets viene embebido solo en lecturas por id. Es un resumen local,
	// no la entidad del módulo pets (evita ciclos de imports).
	Pets []PetSummary
}

type PetSummary struct {
	ID      string
	Name    string
	Species string
}
