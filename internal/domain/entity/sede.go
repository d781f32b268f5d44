package entity

import "time"

// Sede representa una sede o sucursal de la cadena (multi-sede).
// Dato de referencia: se consulta, nunca lo muta este núcleo.
type Sede struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
}
