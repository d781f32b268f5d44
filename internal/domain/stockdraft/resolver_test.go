package stockdraft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
)

func ptr(v int64) *int64 { return &v }

func lineaExistente(qty int64) stockdraft.Line {
	return stockdraft.Line{Key: "l1", SedeID: 1, SedeName: "Centro", Exists: true, Quantity: ptr(qty)}
}

func lineaNueva(min, max, qty *int64) stockdraft.Line {
	return stockdraft.Line{Key: "l2", SedeID: 2, SedeName: "Norte", Exists: false, Quantity: qty, MinQty: min, MaxQty: max}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyEdit — líneas existentes
// ──────────────────────────────────────────────────────────────────────────────

// La cantidad de una línea existente se recorta al tope global y el recorte se
// reporta como aviso, nunca como error.
func TestApplyEdit_ExistenteCantidadRecortadaAlTope(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaExistente(10), stockdraft.FieldQuantity, 7200, lim)

	require.NotNil(t, out.Quantity)
	assert.Equal(t, int64(5000), *out.Quantity, "la cantidad debe quedar en el tope global")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonCeiling, adjs[0].Reason)
	assert.Equal(t, int64(7200), adjs[0].From)
	assert.Equal(t, int64(5000), adjs[0].To)
}

func TestApplyEdit_ExistenteCantidadElevadaAlPiso(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaExistente(10), stockdraft.FieldQuantity, 0, lim)

	require.NotNil(t, out.Quantity)
	assert.Equal(t, int64(1), *out.Quantity, "una línea existente nunca puede quedar en cero")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonFloor, adjs[0].Reason)
}

func TestApplyEdit_ExistenteCantidadValidaSinAjustes(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaExistente(10), stockdraft.FieldQuantity, 4999, lim)

	assert.Equal(t, int64(4999), *out.Quantity)
	assert.Empty(t, adjs, "un valor dentro de rango no genera avisos")
}

// Editar umbrales sobre una línea existente se ignora: los umbrales solo
// aplican a registros nuevos.
func TestApplyEdit_ExistenteIgnoraUmbrales(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	base := lineaExistente(10)

	out, adjs := stockdraft.ApplyEdit(base, stockdraft.FieldMin, 5, lim)
	assert.Nil(t, out.MinQty, "el mínimo no aplica a líneas existentes")
	assert.Empty(t, adjs)

	out, adjs = stockdraft.ApplyEdit(base, stockdraft.FieldMax, 50, lim)
	assert.Nil(t, out.MaxQty, "el máximo no aplica a líneas existentes")
	assert.Empty(t, adjs)
}

// El tope global es configurable; un tope inválido cae al valor por defecto.
func TestApplyEdit_TopeConfigurable(t *testing.T) {
	lim := stockdraft.Limits{Ceiling: 100}
	out, adjs := stockdraft.ApplyEdit(lineaExistente(10), stockdraft.FieldQuantity, 250, lim)
	assert.Equal(t, int64(100), *out.Quantity)
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonCeiling, adjs[0].Reason)

	out, _ = stockdraft.ApplyEdit(lineaExistente(10), stockdraft.FieldQuantity, 250, stockdraft.Limits{Ceiling: -1})
	assert.Equal(t, int64(250), *out.Quantity, "un tope inválido usa el default de 5000")
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyEdit — líneas nuevas: umbrales y cascadas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyEdit_NuevaMinimoNegativoSubeACero(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(nil, nil, nil), stockdraft.FieldMin, -5, lim)

	require.NotNil(t, out.MinQty)
	assert.Equal(t, int64(0), *out.MinQty)
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonFloor, adjs[0].Reason)
}

// El mínimo nunca cruza por encima del máximo: se recorta contra su par.
func TestApplyEdit_NuevaMinimoRecortadoContraMaximo(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(nil, ptr(20), nil), stockdraft.FieldMin, 80, lim)

	assert.Equal(t, int64(20), *out.MinQty, "el mínimo queda igualado al máximo")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonCrossed, adjs[0].Reason)
}

func TestApplyEdit_NuevaMaximoRecortadoContraMinimo(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(30), nil, nil), stockdraft.FieldMax, 10, lim)

	assert.Equal(t, int64(30), *out.MaxQty, "el máximo queda igualado al mínimo")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonCrossed, adjs[0].Reason)
}

// Subir el mínimo por encima de la cantidad la arrastra hacia arriba.
func TestApplyEdit_NuevaMinimoArrastraCantidad(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(5), ptr(100), ptr(10)), stockdraft.FieldMin, 40, lim)

	assert.Equal(t, int64(40), *out.MinQty)
	assert.Equal(t, int64(40), *out.Quantity, "la cantidad sigue al mínimo")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.FieldQuantity, adjs[0].Field)
	assert.Equal(t, stockdraft.ReasonCascade, adjs[0].Reason)
}

// Bajar el máximo por debajo de la cantidad la arrastra hacia abajo.
func TestApplyEdit_NuevaMaximoArrastraCantidad(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(5), ptr(100), ptr(90)), stockdraft.FieldMax, 50, lim)

	assert.Equal(t, int64(50), *out.MaxQty)
	assert.Equal(t, int64(50), *out.Quantity, "la cantidad sigue al máximo")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonCascade, adjs[0].Reason)
}

// La cantidad de una línea nueva vive en [max(1, mínimo), máximo].
func TestApplyEdit_NuevaCantidadAcotadaPorUmbrales(t *testing.T) {
	lim := stockdraft.DefaultLimits()

	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(10), ptr(50), nil), stockdraft.FieldQuantity, 3, lim)
	assert.Equal(t, int64(10), *out.Quantity, "por debajo del mínimo sube al mínimo")
	require.Len(t, adjs, 1)
	assert.Equal(t, stockdraft.ReasonRange, adjs[0].Reason)

	out, adjs = stockdraft.ApplyEdit(lineaNueva(ptr(10), ptr(50), nil), stockdraft.FieldQuantity, 70, lim)
	assert.Equal(t, int64(50), *out.Quantity, "por encima del máximo baja al máximo")
	require.Len(t, adjs, 1)
}

// Con mínimo cero el piso de la cantidad sigue siendo 1.
func TestApplyEdit_NuevaPisoUnoConMinimoCero(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(0), ptr(50), nil), stockdraft.FieldQuantity, 0, lim)

	assert.Equal(t, int64(1), *out.Quantity)
	require.Len(t, adjs, 1)
}

// Un valor gigante sobre el mínimo dispara tope global, recorte contra el
// máximo y cascada de la cantidad, en ese orden.
func TestApplyEdit_NuevaAjustesEncadenados(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	out, adjs := stockdraft.ApplyEdit(lineaNueva(ptr(5), ptr(60), ptr(10)), stockdraft.FieldMin, 9000, lim)

	assert.Equal(t, int64(60), *out.MinQty)
	assert.Equal(t, int64(60), *out.Quantity)
	require.Len(t, adjs, 3)
	assert.Equal(t, stockdraft.ReasonCeiling, adjs[0].Reason)
	assert.Equal(t, stockdraft.ReasonCrossed, adjs[1].Reason)
	assert.Equal(t, stockdraft.ReasonCascade, adjs[2].Reason)
}

// Aplicar dos veces la misma edición es idempotente: la segunda pasada no
// produce avisos nuevos.
func TestApplyEdit_Idempotente(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	l1, adjs1 := stockdraft.ApplyEdit(lineaNueva(ptr(5), ptr(100), ptr(10)), stockdraft.FieldMin, 40, lim)
	require.NotEmpty(t, adjs1)

	l2, adjs2 := stockdraft.ApplyEdit(l1, stockdraft.FieldMin, *l1.MinQty, lim)
	assert.Empty(t, adjs2, "reaplicar el valor ya resuelto no genera avisos")
	assert.Equal(t, l1, l2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate — completitud y rango
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ExistenteCompleta(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	assert.Empty(t, lineaExistente(10).Validate(lim))
}

func TestValidate_CantidadRequerida(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	l := stockdraft.Line{Key: "l1", SedeID: 1, Exists: true}
	issues := l.Validate(lim)
	require.Len(t, issues, 1)
	assert.Equal(t, stockdraft.FieldQuantity, issues[0].Field)
}

// Una línea nueva sin umbrales no está lista para confirmar aunque tenga
// cantidad.
func TestValidate_NuevaExigeUmbrales(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	issues := lineaNueva(nil, nil, ptr(10)).Validate(lim)
	require.Len(t, issues, 2)
	assert.Equal(t, stockdraft.FieldMin, issues[0].Field)
	assert.Equal(t, stockdraft.FieldMax, issues[1].Field)
}

func TestValidate_NuevaCompletaSinProblemas(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	assert.Empty(t, lineaNueva(ptr(5), ptr(50), ptr(20)).Validate(lim))
}

func TestValidate_NuevaCantidadFueraDeRango(t *testing.T) {
	lim := stockdraft.DefaultLimits()
	issues := lineaNueva(ptr(10), ptr(50), ptr(60)).Validate(lim)
	require.Len(t, issues, 1)
	assert.Equal(t, stockdraft.FieldQuantity, issues[0].Field)
}
