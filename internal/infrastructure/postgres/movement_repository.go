package postgres

import (
	"context"
	"fmt"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de novedades. Pasar pool o tx.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una novedad.
func (r *MovementRepo) Create(ctx context.Context, mov *entity.Movement) error {
	query := `
		INSERT INTO movements (
			id, type, product_id, sede_id, dest_sede_id,
			client_id, supplier_id, quantity, date, notes, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, string(mov.Type), mov.ProductID, mov.SedeID, mov.DestSedeID,
		mov.ClientID, mov.SupplierID, mov.Quantity, mov.Date, mov.Notes,
		mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListBySede lista novedades que tocan la sede (origen o destino de traslado),
// más recientes primero.
func (r *MovementRepo) ListBySede(ctx context.Context, sedeID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, type, product_id, sede_id, dest_sede_id,
		       client_id, supplier_id, quantity, date, notes, created_at, created_by
		FROM movements
		WHERE sede_id = $1 OR dest_sede_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, sedeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var typ string
		if err := rows.Scan(
			&m.ID, &typ, &m.ProductID, &m.SedeID, &m.DestSedeID,
			&m.ClientID, &m.SupplierID, &m.Quantity, &m.Date, &m.Notes,
			&m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Type = entity.MovementType(typ)
		out = append(out, &m)
	}
	return out, rows.Err()
}
