package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock se maneja por sede en
// la entidad Stock; este núcleo consulta el catálogo pero no lo modifica.
type Product struct {
	ID          int64
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta actual
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
