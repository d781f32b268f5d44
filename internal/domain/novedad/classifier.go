// Package novedad clasifica los tipos de novedad de inventario: qué campos
// auxiliares exige cada tipo y en qué dirección mueve el stock.
package novedad

import (
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// FieldRequirements indica qué campos auxiliares exige un tipo de novedad.
type FieldRequirements struct {
	NeedsClient      bool
	NeedsSupplier    bool
	NeedsDestination bool
}

// Requirements devuelve los campos exigidos por el tipo. Mapeo exhaustivo del
// conjunto cerrado; los códigos no reconocidos se tratan como TipoOtro.
func Requirements(t entity.MovementType) FieldRequirements {
	switch t {
	case entity.TipoTraslado:
		return FieldRequirements{NeedsDestination: true}
	case entity.TipoVenta, entity.TipoDevolucionCliente:
		return FieldRequirements{NeedsClient: true}
	case entity.TipoCompra, entity.TipoDevolucionProveedor:
		return FieldRequirements{NeedsSupplier: true}
	default:
		return FieldRequirements{}
	}
}

// Direction es el sentido en que una novedad mueve el stock de la sede origen.
type Direction int

const (
	DirectionIn  Direction = iota // entra stock a la sede
	DirectionOut                  // sale stock de la sede
)

// StockDirection devuelve el sentido del movimiento en la sede origen.
// Un traslado es salida en el origen y entrada en el destino.
func StockDirection(t entity.MovementType) Direction {
	switch t {
	case entity.TipoVenta, entity.TipoDevolucionProveedor, entity.TipoTraslado:
		return DirectionOut
	default:
		// Compra, devolución de cliente y ajustes genéricos suman stock.
		return DirectionIn
	}
}

// Normalize limpia los campos auxiliares que el tipo seleccionado no exige,
// para que un cambio de tipo no arrastre selecciones obsoletas.
func Normalize(m *entity.Movement) {
	req := Requirements(m.Type)
	if !req.NeedsClient {
		m.ClientID = nil
	}
	if !req.NeedsSupplier {
		m.SupplierID = nil
	}
	if !req.NeedsDestination {
		m.DestSedeID = nil
	}
}

// Validate verifica la novedad contra su tipo. Toda validación ocurre antes de
// tocar la red o la base de datos.
func Validate(m *entity.Movement) error {
	if m.ProductID <= 0 || m.SedeID <= 0 || m.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	// A lo sumo una contraparte, y solo si el tipo la exige.
	if m.ClientID != nil && m.SupplierID != nil {
		return domain.ErrInvalidInput
	}
	req := Requirements(m.Type)
	if req.NeedsClient && m.ClientID == nil {
		return domain.ErrInvalidInput
	}
	if req.NeedsSupplier && m.SupplierID == nil {
		return domain.ErrInvalidInput
	}
	if req.NeedsDestination {
		if m.DestSedeID == nil || *m.DestSedeID == m.SedeID {
			return domain.ErrInvalidInput
		}
	}
	if !req.NeedsClient && m.ClientID != nil {
		return domain.ErrInvalidInput
	}
	if !req.NeedsSupplier && m.SupplierID != nil {
		return domain.ErrInvalidInput
	}
	if !req.NeedsDestination && m.DestSedeID != nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// ReceivingSede devuelve la sede que recibe stock con esta novedad, o 0 si la
// novedad no suma stock en ninguna sede. Es la sede cuyo registro de stock
// puede faltar y disparar el sub-flujo de alta con umbrales.
func ReceivingSede(m *entity.Movement) int64 {
	if m.Type == entity.TipoTraslado {
		if m.DestSedeID != nil {
			return *m.DestSedeID
		}
		return 0
	}
	if StockDirection(m.Type) == DirectionIn {
		return m.SedeID
	}
	return 0
}
