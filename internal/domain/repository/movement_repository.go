package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia de novedades.
type MovementRepository interface {
	Create(ctx context.Context, mov *entity.Movement) error

	// ListBySede lista las novedades más recientes de una sede (origen o destino).
	ListBySede(ctx context.Context, sedeID int64, limit, offset int) ([]*entity.Movement, error)
}
