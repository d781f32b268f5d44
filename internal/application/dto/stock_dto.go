package dto

import "time"

// StockExistsResponse salida de la sonda de existencia producto+sede.
type StockExistsResponse struct {
	ProductID int64 `json:"product_id"`
	SedeID    int64 `json:"sede_id"`
	Exists    bool  `json:"exists"`
}

// StockResponse registro de stock de un producto en una sede.
type StockResponse struct {
	ProductID int64     `json:"product_id"`
	SedeID    int64     `json:"sede_id"`
	Quantity  int64     `json:"quantity"`
	MinQty    int64     `json:"min_qty"`
	MaxQty    int64     `json:"max_qty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStockListResponse registros en o bajo su umbral mínimo.
type LowStockListResponse struct {
	Items []StockResponse `json:"items"`
}
