package draft

import (
	"context"
	"time"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/entity"
	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
)

// Commit aplica todas las líneas del borrador a la persistencia. Precondición:
// el borrador valida limpio y tiene al menos una línea; si no, devuelve
// domain.ErrInvalidInput sin tocar la base.
//
// Las líneas se lanzan en paralelo (direcciones disjuntas por el invariante de
// sede única) y se espera al grupo completo. El resultado agrega éxitos y
// fallos por línea: las líneas confirmadas salen del borrador, las fallidas
// quedan intactas para reintentar. Si todas confirman, la sesión se destruye.
func (s *Service) Commit(ctx context.Context, sessionID string) (*dto.CommitResultResponse, error) {
	session := s.store.Get(sessionID)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	lines := session.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if issues := session.ValidateAll(s.limits); len(issues) > 0 {
		return nil, domain.ErrInvalidInput
	}

	type lineOutcome struct {
		line stockdraft.Line
		err  error
	}
	results := make(chan lineOutcome, len(lines))
	for _, line := range lines {
		go func(line stockdraft.Line) {
			results <- lineOutcome{line: line, err: s.commitLine(ctx, session.ProductID, line)}
		}(line)
	}

	res := &dto.CommitResultResponse{}
	var committed []string
	for range lines {
		out := <-results
		if out.err != nil {
			res.Failed++
			res.Failures = append(res.Failures, dto.LineFailureDTO{
				Key:     out.line.Key,
				SedeID:  out.line.SedeID,
				Message: out.err.Error(),
			})
			continue
		}
		res.Committed++
		committed = append(committed, out.line.Key)
	}

	session.removeCommitted(committed)
	if res.Failed == 0 {
		s.store.Delete(sessionID)
	}
	return res, nil
}

// commitLine persiste una línea: ajuste sobre el registro existente o alta de
// un registro nuevo con sus umbrales.
func (s *Service) commitLine(ctx context.Context, productID int64, line stockdraft.Line) error {
	if line.Exists {
		return s.stockRepo.AdjustQuantity(ctx, productID, line.SedeID, *line.Quantity)
	}
	return s.stockRepo.Create(ctx, &entity.Stock{
		ProductID: productID,
		SedeID:    line.SedeID,
		Quantity:  *line.Quantity,
		MinQty:    *line.MinQty,
		MaxQty:    *line.MaxQty,
		UpdatedAt: time.Now(),
	})
}
