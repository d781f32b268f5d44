package dto

import "time"

// CreateMovementRequest entrada para registrar una novedad.
// DestSedeID solo para traslados; ClientID/SupplierID según exija el tipo.
// BootstrapMin/BootstrapMax se envían únicamente en el reintento posterior a
// la señal MISSING_STOCK_AT_DESTINATION.
type CreateMovementRequest struct {
	Type         string     `json:"type" validate:"required"`
	ProductID    int64      `json:"product_id" validate:"required,gt=0"`
	SedeID       int64      `json:"sede_id" validate:"required,gt=0"`
	DestSedeID   *int64     `json:"dest_sede_id"`
	ClientID     *int64     `json:"client_id"`
	SupplierID   *int64     `json:"supplier_id"`
	Quantity     int64      `json:"quantity" validate:"required,gt=0"`
	Date         *time.Time `json:"date"`
	Notes        string     `json:"notes"`
	BootstrapMin *int64     `json:"bootstrap_min"`
	BootstrapMax *int64     `json:"bootstrap_max"`
}

// MovementResponse salida de una novedad registrada.
type MovementResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ProductID  int64     `json:"product_id"`
	SedeID     int64     `json:"sede_id"`
	DestSedeID *int64    `json:"dest_sede_id,omitempty"`
	ClientID   *int64    `json:"client_id,omitempty"`
	SupplierID *int64    `json:"supplier_id,omitempty"`
	Quantity   int64     `json:"quantity"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MovementTypeDTO tipo de novedad con los campos que exige el formulario.
type MovementTypeDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NeedsClient      bool   `json:"needs_client"`
	NeedsSupplier    bool   `json:"needs_supplier"`
	NeedsDestination bool   `json:"needs_destination"`
}

// MovementListResponse lista paginada de novedades.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
