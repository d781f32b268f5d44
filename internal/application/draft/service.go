package draft

import (
	"context"

	"github.com/google/uuid"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
	"github.com/dreyes/sedestock-api/internal/domain/repository"
	"github.com/dreyes/sedestock-api/internal/domain/stockdraft"
	"github.com/dreyes/sedestock-api/pkg/logger"
)

// Service orquesta las sesiones de borrador: alta de sedes con sonda de
// existencia, ediciones vía el resolutor de rangos, validación y commit.
type Service struct {
	store       *Store
	sedeRepo    repository.SedeRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	limits      stockdraft.Limits
	log         *logger.Logger
}

// NewService construye el servicio de borradores.
func NewService(
	store *Store,
	sedeRepo repository.SedeRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	limits stockdraft.Limits,
	log *logger.Logger,
) *Service {
	return &Service{
		store:       store,
		sedeRepo:    sedeRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		limits:      limits,
		log:         log,
	}
}

// Create abre una sesión de borrador para el producto dado.
func (s *Service) Create(ctx context.Context, productID int64) (*dto.DraftResponse, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	session := newSession(uuid.New().String(), product.ID, product.Name)
	s.store.Put(session)
	return toDraftResponse(session), nil
}

// Get devuelve el estado completo de la sesión.
func (s *Service) Get(sessionID string) (*dto.DraftResponse, error) {
	session := s.store.Get(sessionID)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return toDraftResponse(session), nil
}

// AddSede agrega una línea para la sede al borrador. Rechaza sedes duplicadas
// (domain.ErrDuplicate) y sedes inexistentes (domain.ErrNotFound).
//
// La sonda de existencia decide los umbrales por defecto. Si la sonda falla se
// asume que el registro NO existe (fail-open): crear un registro nuevo es
// inocuo bajo la validación del backend, y bloquear al usuario por un fallo
// transitorio no lo es. El fallo sí se registra.
func (s *Service) AddSede(ctx context.Context, sessionID string, sedeID int64) (*dto.DraftLineResponse, error) {
	session := s.store.Get(sessionID)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	if session.HasSede(sedeID) {
		return nil, domain.ErrDuplicate
	}
	sede, err := s.sedeRepo.GetByID(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if sede == nil {
		return nil, domain.ErrNotFound
	}

	exists, err := s.stockRepo.Exists(ctx, session.ProductID, sedeID)
	if err != nil {
		s.log.Warn().Err(err).
			Int64("product_id", session.ProductID).
			Int64("sede_id", sedeID).
			Msg("sonda de existencia de stock falló; se asume registro nuevo")
		exists = false
	}

	line := stockdraft.Line{
		Key:      uuid.New().String(),
		SedeID:   sede.ID,
		SedeName: sede.Name,
		Exists:   exists,
	}
	if !session.AddLine(line) {
		// Carrera entre dos peticiones por la misma sede; gana la primera.
		return nil, domain.ErrDuplicate
	}
	resp := toLineResponse(line)
	return &resp, nil
}

// UpdateLine edita un campo de la línea. Los valores fuera de rango no fallan:
// se recortan y los ajustes vuelven como avisos en la respuesta.
func (s *Service) UpdateLine(sessionID, key, field string, value int64) (*dto.UpdateLineResponse, error) {
	session := s.store.Get(sessionID)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	f, ok := parseField(field)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	line, adjs, ok := session.UpdateField(key, f, value, s.limits)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := &dto.UpdateLineResponse{Line: toLineResponse(line)}
	for _, a := range adjs {
		resp.Adjustments = append(resp.Adjustments, dto.AdjustmentDTO{
			Field: string(a.Field), From: a.From, To: a.To, Reason: a.Reason,
		})
	}
	return resp, nil
}

// RemoveLine quita una línea del borrador.
func (s *Service) RemoveLine(sessionID, key string) error {
	session := s.store.Get(sessionID)
	if session == nil {
		return domain.ErrNotFound
	}
	if !session.RemoveLine(key) {
		return domain.ErrNotFound
	}
	return nil
}

// Validate valida el borrador completo sin tocar la persistencia.
func (s *Service) Validate(sessionID string) (*dto.ValidateDraftResponse, error) {
	session := s.store.Get(sessionID)
	if session == nil {
		return nil, domain.ErrNotFound
	}
	issues := session.ValidateAll(s.limits)
	resp := &dto.ValidateDraftResponse{Valid: len(issues) == 0}
	for _, is := range issues {
		resp.Issues = append(resp.Issues, dto.LineIssueDTO{
			Key:     is.Key,
			SedeID:  is.SedeID,
			Field:   string(is.Issue.Field),
			Message: is.Issue.Message,
		})
	}
	return resp, nil
}

// Discard descarta la sesión y su estado parcial.
func (s *Service) Discard(sessionID string) {
	s.store.Delete(sessionID)
}

func parseField(field string) (stockdraft.Field, bool) {
	switch stockdraft.Field(field) {
	case stockdraft.FieldQuantity, stockdraft.FieldMin, stockdraft.FieldMax:
		return stockdraft.Field(field), true
	}
	return "", false
}

func toLineResponse(l stockdraft.Line) dto.DraftLineResponse {
	return dto.DraftLineResponse{
		Key:      l.Key,
		SedeID:   l.SedeID,
		SedeName: l.SedeName,
		Exists:   l.Exists,
		Quantity: l.Quantity,
		MinQty:   l.MinQty,
		MaxQty:   l.MaxQty,
	}
}

func toDraftResponse(s *Session) *dto.DraftResponse {
	resp := &dto.DraftResponse{
		SessionID:   s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
	}
	for _, l := range s.Lines() {
		resp.Lines = append(resp.Lines, toLineResponse(l))
	}
	return resp
}
