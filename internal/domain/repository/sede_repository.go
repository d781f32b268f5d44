package repository

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
)

// SedeRepository define el puerto de consulta de sedes. Solo lectura:
// las sedes son dato de referencia que este núcleo nunca modifica.
type SedeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Sede, error)
	List(ctx context.Context) ([]*entity.Sede, error)
}
