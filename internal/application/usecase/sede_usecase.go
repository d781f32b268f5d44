package usecase

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// SedeUseCase consultas de sedes (dato de referencia, solo lectura).
type SedeUseCase struct {
	repo repository.SedeRepository
}

// NewSedeUseCase construye el caso de uso.
func NewSedeUseCase(repo repository.SedeRepository) *SedeUseCase {
	return &SedeUseCase{repo: repo}
}

// List lista todas las sedes.
func (uc *SedeUseCase) List(ctx context.Context) (*dto.SedeListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.SedeListResponse{Items: make([]dto.SedeResponse, 0, len(list))}
	for _, s := range list {
		resp.Items = append(resp.Items, toSedeResponse(s))
	}
	return resp, nil
}

// GetByID obtiene una sede por ID.
func (uc *SedeUseCase) GetByID(ctx context.Context, id int64) (*dto.SedeResponse, error) {
	sede, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSedeResponse(sede)
	return &resp, nil
}

func toSedeResponse(s *entity.Sede) dto.SedeResponse {
	return dto.SedeResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}
