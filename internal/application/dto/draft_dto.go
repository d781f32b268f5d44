package dto

// CreateDraftRequest abre una sesión de borrador para un producto.
type CreateDraftRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// AddSedeRequest agrega una sede al borrador.
type AddSedeRequest struct {
	SedeID int64 `json:"sede_id" validate:"required,gt=0"`
}

// UpdateLineRequest edita un campo de una línea (quantity | minimum | maximum).
type UpdateLineRequest struct {
	Field string `json:"field" validate:"required,oneof=quantity minimum maximum"`
	Value int64  `json:"value"`
}

// DraftLineResponse línea del borrador. Los punteros distinguen "sin capturar"
// de cero; min/max son null en líneas de registros existentes.
type DraftLineResponse struct {
	Key      string `json:"key"`
	SedeID   int64  `json:"sede_id"`
	SedeName string `json:"sede_name"`
	Exists   bool   `json:"exists"`
	Quantity *int64 `json:"quantity"`
	MinQty   *int64 `json:"min_qty"`
	MaxQty   *int64 `json:"max_qty"`
}

// AdjustmentDTO aviso de recorte o ajuste en cascada aplicado en una edición.
type AdjustmentDTO struct {
	Field  string `json:"field"`
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Reason string `json:"reason"`
}

// UpdateLineResponse línea resultante más los avisos de la edición.
type UpdateLineResponse struct {
	Line        DraftLineResponse `json:"line"`
	Adjustments []AdjustmentDTO   `json:"adjustments"`
}

// DraftResponse estado completo de una sesión de borrador.
type DraftResponse struct {
	SessionID   string              `json:"session_id"`
	ProductID   int64               `json:"product_id"`
	ProductName string              `json:"product_name"`
	Lines       []DraftLineResponse `json:"lines"`
}

// LineIssueDTO problema de completitud o rango detectado en la validación.
type LineIssueDTO struct {
	Key     string `json:"key"`
	SedeID  int64  `json:"sede_id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateDraftResponse resultado de validar el borrador completo.
type ValidateDraftResponse struct {
	Valid  bool           `json:"valid"`
	Issues []LineIssueDTO `json:"issues,omitempty"`
}

// LineFailureDTO fallo de persistencia de una línea durante el commit.
type LineFailureDTO struct {
	Key     string `json:"key"`
	SedeID  int64  `json:"sede_id"`
	Message string `json:"message"`
}

// CommitResultResponse resultado agregado del commit por lotes: cuenta de
// líneas confirmadas y fallidas, con el detalle de cada fallo.
type CommitResultResponse struct {
	Committed int              `json:"committed"`
	Failed    int              `json:"failed"`
	Failures  []LineFailureDTO `json:"failures,omitempty"`
}
