package movement

import (
	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/novedad"
)

// displayNames nombres legibles de los tipos de novedad para formularios.
var displayNames = map[entity.MovementType]string{
	entity.TipoVenta:               "Venta",
	entity.TipoCompra:              "Compra",
	entity.TipoTraslado:            "Traslado entre sedes",
	entity.TipoDevolucionCliente:   "Devolución de cliente",
	entity.TipoDevolucionProveedor: "Devolución a proveedor",
	entity.TipoOtro:                "Otro",
}

// TypeCatalog devuelve los tipos de novedad con los campos que cada uno exige,
// listos para que el formulario muestre u oculte secciones.
func TypeCatalog() []dto.MovementTypeDTO {
	types := entity.MovementTypes()
	out := make([]dto.MovementTypeDTO, 0, len(types))
	for _, t := range types {
		req := novedad.Requirements(t)
		out = append(out, dto.MovementTypeDTO{
			ID:               string(t),
			Name:             displayNames[t],
			NeedsClient:      req.NeedsClient,
			NeedsSupplier:    req.NeedsSupplier,
			NeedsDestination: req.NeedsDestination,
		})
	}
	return out
}
