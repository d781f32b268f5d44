package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/application/usecase"
	"github.com/dreyes/sedestock-api/internal/domain"
)

// SedeHandler maneja las consultas de sedes.
type SedeHandler struct {
	uc *usecase.SedeUseCase
}

// NewSedeHandler construye el handler.
func NewSedeHandler(uc *usecase.SedeUseCase) *SedeHandler {
	return &SedeHandler{uc: uc}
}

// List godoc
// @Summary      Listar sedes
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SedeListResponse
// @Router       /api/sedes [get]
func (h *SedeHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener sede por ID
// @Tags         sedes
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la sede"
// @Success      200  {object}  dto.SedeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sedes/{id} [get]
func (h *SedeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sede no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
