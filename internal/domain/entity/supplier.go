package entity

import "time"

// Supplier representa un proveedor (contraparte de compras y devoluciones a proveedor).
type Supplier struct {
	ID        int64
	Name      string
	Document  string
	Phone     string
	Email     string
	CreatedAt time.Time
}
