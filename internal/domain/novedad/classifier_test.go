package novedad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/novedad"
)

func ptr(v int64) *int64 { return &v }

func movimientoBase(t entity.MovementType) *entity.Movement {
	return &entity.Movement{Type: t, ProductID: 1, SedeID: 10, Quantity: 5}
}

// ──────────────────────────────────────────────────────────────────────────────
// Requirements — qué campos exige cada tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirements_PorTipo(t *testing.T) {
	casos := []struct {
		tipo entity.MovementType
		want novedad.FieldRequirements
	}{
		{entity.TipoVenta, novedad.FieldRequirements{NeedsClient: true}},
		{entity.TipoDevolucionCliente, novedad.FieldRequirements{NeedsClient: true}},
		{entity.TipoCompra, novedad.FieldRequirements{NeedsSupplier: true}},
		{entity.TipoDevolucionProveedor, novedad.FieldRequirements{NeedsSupplier: true}},
		{entity.TipoTraslado, novedad.FieldRequirements{NeedsDestination: true}},
		{entity.TipoOtro, novedad.FieldRequirements{}},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, novedad.Requirements(c.tipo), "tipo %s", c.tipo)
	}
}

// Un código no reconocido cae en el caso residual: sin contraparte ni destino.
func TestRequirements_CodigoDesconocidoSinExigencias(t *testing.T) {
	assert.Equal(t, novedad.FieldRequirements{}, novedad.Requirements("AJUSTE_CONTEO"))
}

func TestStockDirection_PorTipo(t *testing.T) {
	assert.Equal(t, novedad.DirectionOut, novedad.StockDirection(entity.TipoVenta))
	assert.Equal(t, novedad.DirectionOut, novedad.StockDirection(entity.TipoDevolucionProveedor))
	assert.Equal(t, novedad.DirectionOut, novedad.StockDirection(entity.TipoTraslado))
	assert.Equal(t, novedad.DirectionIn, novedad.StockDirection(entity.TipoCompra))
	assert.Equal(t, novedad.DirectionIn, novedad.StockDirection(entity.TipoDevolucionCliente))
	assert.Equal(t, novedad.DirectionIn, novedad.StockDirection(entity.TipoOtro))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalize — limpieza al cambiar de tipo
// ──────────────────────────────────────────────────────────────────────────────

// Cambiar de traslado a venta no puede arrastrar el destino del traslado.
func TestNormalize_LimpiaCamposObsoletos(t *testing.T) {
	m := movimientoBase(entity.TipoVenta)
	m.DestSedeID = ptr(20) // residuo de una selección anterior de TRASLADO
	m.SupplierID = ptr(7)  // residuo de COMPRA
	m.ClientID = ptr(3)

	novedad.Normalize(m)

	assert.Nil(t, m.DestSedeID, "el destino no aplica a una venta")
	assert.Nil(t, m.SupplierID, "el proveedor no aplica a una venta")
	require.NotNil(t, m.ClientID, "el cliente sí aplica a una venta")
	assert.Equal(t, int64(3), *m.ClientID)
}

func TestNormalize_TrasladoConservaDestino(t *testing.T) {
	m := movimientoBase(entity.TipoTraslado)
	m.DestSedeID = ptr(20)
	m.ClientID = ptr(3)

	novedad.Normalize(m)

	require.NotNil(t, m.DestSedeID)
	assert.Nil(t, m.ClientID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate — exigencias por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_VentaCompleta(t *testing.T) {
	m := movimientoBase(entity.TipoVenta)
	m.ClientID = ptr(3)
	assert.NoError(t, novedad.Validate(m))
}

func TestValidate_VentaSinClienteFalla(t *testing.T) {
	m := movimientoBase(entity.TipoVenta)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)
}

func TestValidate_CompraSinProveedorFalla(t *testing.T) {
	m := movimientoBase(entity.TipoCompra)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)
}

func TestValidate_TrasladoExigeDestinoDistinto(t *testing.T) {
	m := movimientoBase(entity.TipoTraslado)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput, "sin destino")

	m.DestSedeID = ptr(10) // igual al origen
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput, "destino igual al origen")

	m.DestSedeID = ptr(20)
	assert.NoError(t, novedad.Validate(m))
}

// Las contrapartes son mutuamente excluyentes aunque el tipo exija una.
func TestValidate_ClienteYProveedorALaVezFalla(t *testing.T) {
	m := movimientoBase(entity.TipoVenta)
	m.ClientID = ptr(3)
	m.SupplierID = ptr(7)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)
}

// Un campo presente que el tipo no exige también es inválido: el caller debe
// pasar por Normalize antes de validar.
func TestValidate_CampoExtraFalla(t *testing.T) {
	m := movimientoBase(entity.TipoOtro)
	m.ClientID = ptr(3)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)

	m = movimientoBase(entity.TipoVenta)
	m.ClientID = ptr(3)
	m.DestSedeID = ptr(20)
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)
}

func TestValidate_CantidadYReferenciasPositivas(t *testing.T) {
	m := movimientoBase(entity.TipoOtro)
	m.Quantity = 0
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)

	m = movimientoBase(entity.TipoOtro)
	m.ProductID = 0
	assert.ErrorIs(t, novedad.Validate(m), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReceivingSede — en qué sede puede faltar el registro de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestReceivingSede(t *testing.T) {
	traslado := movimientoBase(entity.TipoTraslado)
	traslado.DestSedeID = ptr(20)
	assert.Equal(t, int64(20), novedad.ReceivingSede(traslado), "el traslado recibe en el destino")

	compra := movimientoBase(entity.TipoCompra)
	compra.SupplierID = ptr(7)
	assert.Equal(t, int64(10), novedad.ReceivingSede(compra), "la compra recibe en el origen")

	venta := movimientoBase(entity.TipoVenta)
	venta.ClientID = ptr(3)
	assert.Equal(t, int64(0), novedad.ReceivingSede(venta), "una venta no recibe stock en ninguna sede")
}
