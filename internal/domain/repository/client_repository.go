package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// ClientRepository define el puerto de consulta de clientes (solo lectura aquí;
// el CRUD completo vive en el backend administrativo).
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
}
