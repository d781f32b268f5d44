package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

var _ repository.SedeRepository = (*SedeRepo)(nil)

// SedeRepo implementación de SedeRepository sobre PostgreSQL.
type SedeRepo struct {
	q Querier
}

// NewSedeRepository construye el adaptador de sedes. Pasar pool o tx (Querier).
func NewSedeRepository(q Querier) *SedeRepo {
	return &SedeRepo{q: q}
}

// GetByID obtiene una sede por ID; nil si no existe.
func (r *SedeRepo) GetByID(ctx context.Context, id int64) (*entity.Sede, error) {
	query := `
		SELECT id, name, address, created_at
		FROM sedes WHERE id = $1`
	var s entity.Sede
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sede: %w", err)
	}
	return &s, nil
}

// List lista todas las sedes ordenadas por nombre.
func (r *SedeRepo) List(ctx context.Context) ([]*entity.Sede, error) {
	query := `
		SELECT id, name, address, created_at
		FROM sedes ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sedes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sede
	for rows.Next() {
		var s entity.Sede
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sede: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
