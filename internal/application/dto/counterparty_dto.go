package dto

import "time"

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
