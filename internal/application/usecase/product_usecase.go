package usecase

import (
	"context"
	"strings"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lista productos; con term busca por nombre sin distinguir acentos.
func (uc *ProductUseCase) List(ctx context.Context, term string, limit, offset int) (*dto.ProductListResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if strings.TrimSpace(term) != "" {
		list, err = uc.repo.Search(ctx, term, limit, offset)
	} else {
		list, err = uc.repo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		resp.Items = append(resp.Items, toProductResponse(p))
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
