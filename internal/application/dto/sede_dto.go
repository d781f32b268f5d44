package dto

import "time"

// SedeResponse salida de una sede.
type SedeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SedeListResponse lista de sedes (dato de referencia, sin paginar).
type SedeListResponse struct {
	Items []SedeResponse `json:"items"`
}
