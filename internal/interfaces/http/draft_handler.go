package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/draft"
	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/domain"
)

// DraftHandler maneja las sesiones de borrador de stock multi-sede.
type DraftHandler struct {
	svc *draft.Service
}

// NewDraftHandler construye el handler.
func NewDraftHandler(svc *draft.Service) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// Create godoc
// @Summary      Abrir borrador de stock para un producto
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDraftRequest  true  "product_id"
// @Success      201   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	resp, err := h.svc.Create(c.Context(), in.ProductID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get devuelve el estado completo del borrador.
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	resp, err := h.svc.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
	}
	return c.JSON(resp)
}

// AddSede godoc
// @Summary      Agregar una sede al borrador
// @Description  Sondea la existencia de stock para decidir si la línea ajusta
// @Description  un registro existente o crea uno nuevo con umbrales.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la sesión"
// @Param        body  body  dto.AddSedeRequest  true  "sede_id"
// @Success      201   {object}  dto.DraftLineResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/sedes [post]
func (h *DraftHandler) AddSede(c *fiber.Ctx) error {
	var in dto.AddSedeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SedeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_id es requerido"})
	}
	resp, err := h.svc.AddSede(c.Context(), c.Params("id"), in.SedeID)
	if err != nil {
		switch err {
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEDE_DUPLICADA", Message: "la sede ya está en el borrador"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador o sede no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateLine godoc
// @Summary      Editar un campo de una línea
// @Description  Los valores fuera de rango no fallan: se recortan y los
// @Description  ajustes vuelven como avisos en la respuesta.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la sesión"
// @Param        key   path  string                 true  "Clave de la línea"
// @Param        body  body  dto.UpdateLineRequest  true  "field, value"
// @Success      200   {object}  dto.UpdateLineResponse
// @Router       /api/drafts/{id}/lines/{key} [patch]
func (h *DraftHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.svc.UpdateLine(c.Params("id"), c.Params("key"), in.Field, in.Value)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field debe ser quantity, minimum o maximum"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador o línea no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// RemoveLine quita una línea del borrador.
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.svc.RemoveLine(c.Params("id"), c.Params("key")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador o línea no encontrados"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate valida el borrador completo sin persistir.
func (h *DraftHandler) Validate(c *fiber.Ctx) error {
	resp, err := h.svc.Validate(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
	}
	return c.JSON(resp)
}

// Commit godoc
// @Summary      Confirmar el borrador
// @Description  Aplica todas las líneas en paralelo y reporta éxitos y fallos
// @Description  por línea. Las líneas fallidas quedan en el borrador para
// @Description  reintentar.
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CommitResultResponse
// @Failure      422  {object}  dto.ValidateDraftResponse
// @Router       /api/drafts/{id}/commit [post]
func (h *DraftHandler) Commit(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	resp, err := h.svc.Commit(c.Context(), sessionID)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "borrador no encontrado"})
		case domain.ErrInvalidInput:
			// Informar qué líneas bloquean el commit.
			if validation, verr := h.svc.Validate(sessionID); verr == nil {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(validation)
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el borrador no pasa validación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Discard descarta el borrador.
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	h.svc.Discard(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
