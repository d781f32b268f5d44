package entity

import "time"

// MovementType es el código cerrado de tipos de novedad de inventario.
type MovementType string

// Tipos de novedad. El conjunto es cerrado: cualquier otro código se trata
// como TipoOtro (sin contraparte ni destino).
const (
	TipoVenta               MovementType = "VENTA"
	TipoCompra              MovementType = "COMPRA"
	TipoTraslado            MovementType = "TRASLADO"
	TipoDevolucionCliente   MovementType = "DEVOLUCION_CLIENTE"
	TipoDevolucionProveedor MovementType = "DEVOLUCION_PROVEEDOR"
	TipoOtro                MovementType = "OTRO"
)

// MovementTypes lista los tipos de novedad conocidos, en orden estable para
// catálogos y formularios.
func MovementTypes() []MovementType {
	return []MovementType{
		TipoVenta, TipoCompra, TipoTraslado,
		TipoDevolucionCliente, TipoDevolucionProveedor, TipoOtro,
	}
}

// Movement representa una novedad de inventario sobre un producto en una sede.
// DestSedeID solo aplica a traslados; ClientID y SupplierID son mutuamente
// excluyentes y solo aplican si el tipo los exige.
type Movement struct {
	ID         string // UUID
	Type       MovementType
	ProductID  int64
	SedeID     int64  // sede origen
	DestSedeID *int64 // solo TRASLADO
	ClientID   *int64 // VENTA, DEVOLUCION_CLIENTE
	SupplierID *int64 // COMPRA, DEVOLUCION_PROVEEDOR
	Quantity   int64  // siempre > 0; la dirección la define el tipo
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
	CreatedBy  string // UserID
}
