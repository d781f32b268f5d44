package entity

import "time"

// Client representa un cliente (contraparte de ventas y devoluciones de cliente).
// Registro de solo lectura para este núcleo.
type Client struct {
	ID        int64
	Name      string
	Document  string // NIT o cédula
	Phone     string
	Email     string
	CreatedAt time.Time
}
