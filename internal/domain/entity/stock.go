package entity

import "time"

// Stock representa el registro de stock de un producto en una sede
// (clave compuesta producto+sede). Los umbrales se fijan al crear el registro.
type Stock struct {
	ProductID int64
	SedeID    int64
	Quantity  int64
	MinQty    int64
	MaxQty    int64
	UpdatedAt time.Time
}

// BelowMinimum indica si el stock está en o por debajo de su umbral mínimo.
func (s Stock) BelowMinimum() bool {
	return s.Quantity <= s.MinQty
}
