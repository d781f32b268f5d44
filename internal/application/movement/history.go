package movement

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// HistoryUseCase consulta de novedades por sede (vista de historial).
type HistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo}
}

// ListBySede lista las novedades más recientes que tocan la sede (como origen
// o como destino de traslado).
func (uc *HistoryUseCase) ListBySede(ctx context.Context, sedeID int64, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListBySede(ctx, sedeID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementListResponse{Page: dto.PageResponse{Limit: limit, Offset: offset}}
	for _, m := range list {
		resp.Items = append(resp.Items, *toMovementResponse(m))
	}
	return resp, nil
}
