package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/application/movement"
	"github.com/dreyes/sedestock-api/internal/domain"
)

// MovementHandler maneja el registro y consulta de novedades de stock.
type MovementHandler struct {
	submit  *movement.SubmitUseCase
	history *movement.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(submit *movement.SubmitUseCase, history *movement.HistoryUseCase) *MovementHandler {
	return &MovementHandler{submit: submit, history: history}
}

// Create godoc
// @Summary      Registrar una novedad de stock
// @Description  Valida los campos según el tipo y aplica el efecto sobre el
// @Description  stock dentro de una transacción. Si la sede receptora no
// @Description  tiene registro de stock responde 409 con el código
// @Description  MISSING_STOCK_AT_DESTINATION; el cliente reenvía con
// @Description  bootstrap_min y bootstrap_max para crear el registro.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Novedad"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.submit.Submit(c.Context(), in, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la novedad no cumple los requisitos de su tipo"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, sede o tercero no encontrado"})
		case domain.ErrMissingStockAtDestination:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MISSING_STOCK_AT_DESTINATION", Message: "la sede receptora no tiene registro de stock para el producto"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la sede de origen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Types godoc
// @Summary      Catálogo de tipos de novedad
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementTypeDTO
// @Router       /api/movements/types [get]
func (h *MovementHandler) Types(c *fiber.Ctx) error {
	return c.JSON(movement.TypeCatalog())
}

// ListBySede godoc
// @Summary      Historial de novedades de una sede
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        sede_id  path   int  true   "ID de la sede"
// @Param        limit    query  int  false  "Tamaño de página"
// @Param        offset   query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/sedes/{sede_id}/movements [get]
func (h *MovementHandler) ListBySede(c *fiber.Ctx) error {
	sedeID, err := c.ParamsInt("sede_id")
	if err != nil || sedeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede_id inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	resp, err := h.history.ListBySede(c.Context(), int64(sedeID), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
