// Package stockdraft contiene la lógica pura del borrador de stock multi-sede:
// líneas por sede, rangos de cantidad y ajustes en cascada entre campos.
package stockdraft

// DefaultCeiling es el tope global de unidades por registro de stock.
const DefaultCeiling int64 = 5000

// Limits agrupa los límites configurables del borrador. Se inyecta desde la
// configuración para que los tests puedan parametrizar el tope.
type Limits struct {
	Ceiling int64
}

// DefaultLimits devuelve los límites por defecto.
func DefaultLimits() Limits {
	return Limits{Ceiling: DefaultCeiling}
}

// ceiling devuelve el tope efectivo (el default si el configurado no es válido).
func (l Limits) ceiling() int64 {
	if l.Ceiling <= 0 {
		return DefaultCeiling
	}
	return l.Ceiling
}
