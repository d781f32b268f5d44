package movement

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción SQL.
// Commit si el callback devuelve nil; Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
