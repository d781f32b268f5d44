package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). La ausencia de fila se devuelve como nil, no como error: es el
// estado que dispara el flujo de alta con umbrales.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = "product_id, sede_id, quantity, min_qty, max_qty, updated_at"

// Exists responde si hay registro de stock para el par producto+sede.
func (r *StockRepo) Exists(ctx context.Context, productID, sedeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stock WHERE product_id = $1 AND sede_id = $2)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, productID, sedeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("stock exists: %w", err)
	}
	return exists, nil
}

// Get obtiene el registro de stock; nil si no existe.
func (r *StockRepo) Get(ctx context.Context, productID, sedeID int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE product_id = $1 AND sede_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, productID, sedeID), "get stock")
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, sedeID int64) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + ` FROM stock
		WHERE product_id = $1 AND sede_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, productID, sedeID), "get stock for update")
}

// Create inserta un registro nuevo con sus umbrales.
// Devuelve domain.ErrDuplicate si el par producto+sede ya existe.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, sede_id, quantity, min_qty, max_qty, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(ctx, query,
		stock.ProductID, stock.SedeID, stock.Quantity, stock.MinQty, stock.MaxQty,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// AdjustQuantity fija la cantidad actual de un registro existente.
func (r *StockRepo) AdjustQuantity(ctx context.Context, productID, sedeID, quantity int64) error {
	query := `
		UPDATE stock SET quantity = $3, updated_at = now()
		WHERE product_id = $1 AND sede_id = $2`
	cmd, err := r.q.Exec(ctx, query, productID, sedeID, quantity)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update persiste cantidad y umbrales de un registro existente.
func (r *StockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	query := `
		UPDATE stock SET quantity = $3, min_qty = $4, max_qty = $5, updated_at = now()
		WHERE product_id = $1 AND sede_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		stock.ProductID, stock.SedeID, stock.Quantity, stock.MinQty, stock.MaxQty,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBelowMinimum lista los registros en o bajo su umbral mínimo.
// sedeID = 0 consulta todas las sedes.
func (r *StockRepo) ListBelowMinimum(ctx context.Context, sedeID int64) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + ` FROM stock
		WHERE quantity <= min_qty AND ($1 = 0 OR sede_id = $1)
		ORDER BY sede_id, product_id`
	rows, err := r.q.Query(ctx, query, sedeID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.SedeID, &s.Quantity, &s.MinQty, &s.MaxQty, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ProductID, &s.SedeID, &s.Quantity, &s.MinQty, &s.MaxQty, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
