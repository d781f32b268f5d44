package stockdraft

// Field identifica el campo editable de una línea de borrador.
type Field string

const (
	FieldQuantity Field = "quantity"
	FieldMin      Field = "minimum"
	FieldMax      Field = "maximum"
)

// Motivos de ajuste. Son señales informativas para que el caller las muestre
// como avisos al usuario; nunca errores.
const (
	ReasonCeiling = "tope_global"     // valor recortado al tope global
	ReasonFloor   = "piso"            // valor elevado al piso permitido
	ReasonRange   = "fuera_de_rango"  // cantidad llevada al borde más cercano
	ReasonCrossed = "umbral_cruzado"  // mínimo/máximo recortado contra su par
	ReasonCascade = "ajuste_cascada"  // la cantidad siguió al umbral editado
)

// Adjustment describe un recorte o ajuste en cascada aplicado durante una edición.
type Adjustment struct {
	Field  Field
	From   int64
	To     int64
	Reason string
}

// ApplyEdit aplica una edición de campo sobre la línea y devuelve la línea
// resultante junto con los ajustes realizados. Nunca falla: toda entrada
// inválida se recorta en silencio y se reporta como ajuste informativo.
//
// Orden de las reglas:
//  1. Cualquier campo se recorta al tope global.
//  2. Cantidad en línea existente: piso 1.
//  3. Cantidad en línea nueva: piso max(1, mínimo), techo máximo (tope si no hay).
//  4. Mínimo: se recorta contra el máximo; si supera la cantidad, la arrastra.
//  5. Máximo: se recorta contra el mínimo; si queda bajo la cantidad, la arrastra.
func ApplyEdit(l Line, field Field, value int64, lim Limits) (Line, []Adjustment) {
	var adjs []Adjustment
	top := lim.ceiling()

	// Regla 1: tope global para los tres campos.
	if value > top {
		adjs = append(adjs, Adjustment{Field: field, From: value, To: top, Reason: ReasonCeiling})
		value = top
	}

	switch field {
	case FieldQuantity:
		floor, ceil := QuantityBounds(l, lim)
		if value < floor {
			adjs = append(adjs, Adjustment{Field: FieldQuantity, From: value, To: floor, Reason: clampReason(l)})
			value = floor
		} else if value > ceil {
			adjs = append(adjs, Adjustment{Field: FieldQuantity, From: value, To: ceil, Reason: ReasonRange})
			value = ceil
		}
		l.Quantity = &value

	case FieldMin:
		if l.Exists {
			// Los umbrales no aplican a registros existentes; se ignora la edición.
			return l, adjs
		}
		if value < 0 {
			adjs = append(adjs, Adjustment{Field: FieldMin, From: value, To: 0, Reason: ReasonFloor})
			value = 0
		}
		if l.MaxQty != nil && value > *l.MaxQty {
			adjs = append(adjs, Adjustment{Field: FieldMin, From: value, To: *l.MaxQty, Reason: ReasonCrossed})
			value = *l.MaxQty
		}
		l.MinQty = &value
		// Cascada: la cantidad nunca queda por debajo del nuevo mínimo.
		if l.Quantity != nil && *l.Quantity < value {
			adjs = append(adjs, Adjustment{Field: FieldQuantity, From: *l.Quantity, To: value, Reason: ReasonCascade})
			q := value
			l.Quantity = &q
		}

	case FieldMax:
		if l.Exists {
			return l, adjs
		}
		if value < 0 {
			adjs = append(adjs, Adjustment{Field: FieldMax, From: value, To: 0, Reason: ReasonFloor})
			value = 0
		}
		if l.MinQty != nil && value < *l.MinQty {
			adjs = append(adjs, Adjustment{Field: FieldMax, From: value, To: *l.MinQty, Reason: ReasonCrossed})
			value = *l.MinQty
		}
		l.MaxQty = &value
		// Cascada: la cantidad nunca queda por encima del nuevo máximo.
		if l.Quantity != nil && *l.Quantity > value {
			adjs = append(adjs, Adjustment{Field: FieldQuantity, From: *l.Quantity, To: value, Reason: ReasonCascade})
			q := value
			l.Quantity = &q
		}
	}

	return l, adjs
}

// clampReason distingue el piso fijo de una línea existente del rango derivado
// de los umbrales de una línea nueva (solo afecta el motivo reportado).
func clampReason(l Line) string {
	if l.Exists {
		return ReasonFloor
	}
	return ReasonRange
}
