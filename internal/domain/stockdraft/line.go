package stockdraft

// Line es una línea de borrador para una sede dentro de la edición de stock de
// un producto. Una sede aparece a lo sumo una vez en el borrador.
//
// Si Exists es true el registro ya está en la sede: los umbrales no aplican
// (nil) y la cantidad legal es 1..tope. Si es false la línea creará un registro
// nuevo: los umbrales son obligatorios y acotan la cantidad.
type Line struct {
	Key      string // clave única de la sesión de edición
	SedeID   int64
	SedeName string // denormalizado para mostrar
	Exists   bool
	Quantity *int64
	MinQty   *int64 // nil cuando Exists
	MaxQty   *int64 // nil cuando Exists
}

// Issue describe un campo de la línea que incumple completitud o rango.
type Issue struct {
	Field   Field
	Message string
}

// QuantityBounds devuelve el rango legal [floor, ceil] para la cantidad de la
// línea según su estado actual.
func QuantityBounds(l Line, lim Limits) (floor, ceil int64) {
	top := lim.ceiling()
	if l.Exists {
		return 1, top
	}
	floor = 1
	if l.MinQty != nil && *l.MinQty > 1 {
		floor = *l.MinQty
	}
	ceil = top
	if l.MaxQty != nil {
		ceil = *l.MaxQty
	}
	return floor, ceil
}

// Validate devuelve los problemas de completitud y rango de la línea.
// Lista vacía = línea lista para confirmar.
func (l Line) Validate(lim Limits) []Issue {
	var issues []Issue
	if l.Quantity == nil {
		issues = append(issues, Issue{Field: FieldQuantity, Message: "cantidad requerida"})
	}
	if !l.Exists {
		if l.MinQty == nil {
			issues = append(issues, Issue{Field: FieldMin, Message: "mínimo requerido"})
		}
		if l.MaxQty == nil {
			issues = append(issues, Issue{Field: FieldMax, Message: "máximo requerido"})
		}
		if l.MinQty != nil && l.MaxQty != nil && *l.MinQty > *l.MaxQty {
			issues = append(issues, Issue{Field: FieldMin, Message: "mínimo mayor que máximo"})
		}
	}
	if l.Quantity != nil {
		floor, ceil := QuantityBounds(l, lim)
		if *l.Quantity < floor || *l.Quantity > ceil {
			issues = append(issues, Issue{Field: FieldQuantity, Message: "cantidad fuera de rango"})
		}
	}
	return issues
}
