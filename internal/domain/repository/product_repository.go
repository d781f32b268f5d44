package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// ProductRepository define el puerto de consulta del catálogo de productos.
// Search busca por nombre sin distinguir acentos ni mayúsculas.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Search(ctx context.Context, term string, limit, offset int) ([]*entity.Product, error)
}
