package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia de stock por producto+sede.
// Get y GetForUpdate devuelven nil (sin error) cuando no hay registro: la
// ausencia es un estado válido que dispara el flujo de alta con umbrales.
type StockRepository interface {
	// Exists responde si ya hay registro de stock para el par producto+sede.
	Exists(ctx context.Context, productID, sedeID int64) (bool, error)

	Get(ctx context.Context, productID, sedeID int64) (*entity.Stock, error)

	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar
	// dentro de transacciones.
	GetForUpdate(ctx context.Context, productID, sedeID int64) (*entity.Stock, error)

	// Create inserta un registro nuevo con sus umbrales. Devuelve
	// domain.ErrDuplicate si el par producto+sede ya existe.
	Create(ctx context.Context, stock *entity.Stock) error

	// AdjustQuantity fija la cantidad actual de un registro existente.
	// Devuelve domain.ErrNotFound si el registro no existe.
	AdjustQuantity(ctx context.Context, productID, sedeID, quantity int64) error

	// Update persiste cantidad y umbrales de un registro existente.
	Update(ctx context.Context, stock *entity.Stock) error

	// ListBelowMinimum lista los registros en o bajo su umbral mínimo.
	// sedeID = 0 consulta todas las sedes.
	ListBelowMinimum(ctx context.Context, sedeID int64) ([]*entity.Stock, error)
}
