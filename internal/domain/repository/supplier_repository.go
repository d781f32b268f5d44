package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// SupplierRepository define el puerto de consulta de proveedores.
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
}
