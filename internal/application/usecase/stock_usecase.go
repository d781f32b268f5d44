package usecase

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// StockUseCase consultas de stock: sonda de existencia y lista de bajo stock.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Exists responde si el par producto+sede ya tiene registro de stock.
func (uc *StockUseCase) Exists(ctx context.Context, productID, sedeID int64) (*dto.StockExistsResponse, error) {
	exists, err := uc.repo.Exists(ctx, productID, sedeID)
	if err != nil {
		return nil, err
	}
	return &dto.StockExistsResponse{ProductID: productID, SedeID: sedeID, Exists: exists}, nil
}

// ListBelowMinimum lista los registros en o bajo su umbral mínimo.
// sedeID = 0 consulta todas las sedes.
func (uc *StockUseCase) ListBelowMinimum(ctx context.Context, sedeID int64) (*dto.LowStockListResponse, error) {
	list, err := uc.repo.ListBelowMinimum(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LowStockListResponse{Items: make([]dto.StockResponse, 0, len(list))}
	for _, s := range list {
		resp.Items = append(resp.Items, dto.StockResponse{
			ProductID: s.ProductID,
			SedeID:    s.SedeID,
			Quantity:  s.Quantity,
			MinQty:    s.MinQty,
			MaxQty:    s.MaxQty,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return resp, nil
}
