package validation

// Error agrupa violaciones de formulario por campo.
// Los schemas de cada módulo devuelven el mapa campo -> mensaje; los services
// lo envuelven en este error y los handlers lo bajan como 422 con el mapa
// intacto, listo para pintarse inline en el formulario.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return "validation failed"
}
