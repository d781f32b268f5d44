// Package movement registra novedades de inventario: valida contra el
// clasificador de tipos, aplica el movimiento de stock en transacción y maneja
// el sub-flujo de alta de stock en destino con un único reintento.
package movement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/novedad"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
)

// SubmitUseCase registra una novedad de inventario.
type SubmitUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	sedeRepo     repository.SedeRepository
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	stockRepo    repository.StockRepository
	limits       stockdraft.Limits
}

// NewSubmitUseCase construye el caso de uso.
func NewSubmitUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	sedeRepo repository.SedeRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	stockRepo repository.StockRepository,
	limits stockdraft.Limits,
) *SubmitUseCase {
	return &SubmitUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		sedeRepo:     sedeRepo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		stockRepo:    stockRepo,
		limits:       limits,
	}
}

// Submit valida y registra la novedad.
//
// La validación local (clasificador + referencias) ocurre completa antes de
// cualquier operación de persistencia. Si al aplicar falta el registro de
// stock en la sede que recibe, la señal ErrMissingStockAtDestination se
// propaga al caller salvo que la petición traiga umbrales de alta: en ese caso
// se crea el registro en destino y se reintenta UNA vez; un segundo fallo es
// terminal.
func (uc *SubmitUseCase) Submit(ctx context.Context, in dto.CreateMovementRequest, userID string) (*dto.MovementResponse, error) {
	if in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	mov := &entity.Movement{
		ID:         uuid.New().String(),
		Type:       entity.MovementType(in.Type),
		ProductID:  in.ProductID,
		SedeID:     in.SedeID,
		DestSedeID: in.DestSedeID,
		ClientID:   in.ClientID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		Date:       date,
		Notes:      in.Notes,
		CreatedAt:  now,
		CreatedBy:  userID,
	}

	// El cambio de tipo no arrastra contrapartes ni destino obsoletos.
	novedad.Normalize(mov)
	if err := novedad.Validate(mov); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, mov); err != nil {
		return nil, err
	}

	err := uc.apply(ctx, mov)
	if errors.Is(err, domain.ErrMissingStockAtDestination) && in.BootstrapMin != nil && in.BootstrapMax != nil {
		if err := uc.bootstrapStock(ctx, mov, *in.BootstrapMin, *in.BootstrapMax); err != nil {
			return nil, err
		}
		// Reintento único; un segundo fallo se propaga tal cual.
		err = uc.apply(ctx, mov)
	}
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// checkReferences verifica que producto, sedes y contraparte existan.
func (uc *SubmitUseCase) checkReferences(ctx context.Context, mov *entity.Movement) error {
	product, err := uc.productRepo.GetByID(ctx, mov.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	sede, err := uc.sedeRepo.GetByID(ctx, mov.SedeID)
	if err != nil {
		return err
	}
	if sede == nil {
		return domain.ErrNotFound
	}
	if mov.DestSedeID != nil {
		dest, err := uc.sedeRepo.GetByID(ctx, *mov.DestSedeID)
		if err != nil {
			return err
		}
		if dest == nil {
			return domain.ErrNotFound
		}
	}
	if mov.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *mov.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
	}
	if mov.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(ctx, *mov.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// apply mueve el stock y guarda la novedad dentro de una transacción.
func (uc *SubmitUseCase) apply(ctx context.Context, mov *entity.Movement) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		switch novedad.StockDirection(mov.Type) {
		case novedad.DirectionOut:
			if err := debit(ctx, stockRepo, mov.ProductID, mov.SedeID, mov.Quantity); err != nil {
				return err
			}
			if mov.Type == entity.TipoTraslado {
				if err := credit(ctx, stockRepo, mov.ProductID, *mov.DestSedeID, mov.Quantity); err != nil {
					return err
				}
			}
		case novedad.DirectionIn:
			if err := credit(ctx, stockRepo, mov.ProductID, mov.SedeID, mov.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Create(ctx, mov)
	})
}

// bootstrapStock crea el registro de stock faltante en la sede receptora con
// los umbrales aportados por el usuario (cantidad inicial cero; el reintento
// de la novedad la carga).
func (uc *SubmitUseCase) bootstrapStock(ctx context.Context, mov *entity.Movement, minQty, maxQty int64) error {
	ceiling := uc.limits.Ceiling
	if ceiling <= 0 {
		ceiling = stockdraft.DefaultCeiling
	}
	if minQty < 0 || minQty > maxQty || maxQty > ceiling {
		return domain.ErrInvalidInput
	}
	sedeID := novedad.ReceivingSede(mov)
	if sedeID == 0 {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.Create(ctx, &entity.Stock{
		ProductID: mov.ProductID,
		SedeID:    sedeID,
		MinQty:    minQty,
		MaxQty:    maxQty,
		UpdatedAt: time.Now(),
	})
}

// debit descuenta stock en la sede; sin registro o sin saldo suficiente, falla.
func debit(ctx context.Context, stockRepo repository.StockRepository, productID, sedeID, qty int64) error {
	stock, err := stockRepo.GetForUpdate(ctx, productID, sedeID)
	if err != nil {
		return err
	}
	if stock == nil || stock.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	stock.Quantity -= qty
	stock.UpdatedAt = time.Now()
	return stockRepo.Update(ctx, stock)
}

// credit suma stock en la sede receptora; sin registro, dispara la señal de
// alta con umbrales.
func credit(ctx context.Context, stockRepo repository.StockRepository, productID, sedeID, qty int64) error {
	stock, err := stockRepo.GetForUpdate(ctx, productID, sedeID)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrMissingStockAtDestination
	}
	stock.Quantity += qty
	stock.UpdatedAt = time.Now()
	return stockRepo.Update(ctx, stock)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		Type:       string(m.Type),
		ProductID:  m.ProductID,
		SedeID:     m.SedeID,
		DestSedeID: m.DestSedeID,
		ClientID:   m.ClientID,
		SupplierID: m.SupplierID,
		Quantity:   m.Quantity,
		Date:       m.Date,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}
