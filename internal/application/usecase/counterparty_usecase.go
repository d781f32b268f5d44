package usecase

import (
	"context"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
)

// ClientUseCase consultas de clientes (contrapartes de ventas).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClientListResponse{
		Items: make([]dto.ClientResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, c := range list {
		resp.Items = append(resp.Items, toClientResponse(c))
	}
	return resp, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(client)
	return &resp, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// SupplierUseCase consultas de proveedores (contrapartes de compras).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.SupplierListResponse{
		Items: make([]dto.SupplierResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		resp.Items = append(resp.Items, toSupplierResponse(s))
	}
	return resp, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Document:  s.Document,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
