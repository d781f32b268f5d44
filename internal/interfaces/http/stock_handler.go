package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/application/usecase"
)

// StockHandler maneja la sonda de existencia y la vista de bajo stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Exists godoc
// @Summary      Sonda de existencia de stock
// @Description  Responde si el par producto+sede ya tiene registro de stock.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int  true  "ID del producto"
// @Param        sede_id     query  int  true  "ID de la sede"
// @Success      200  {object}  dto.StockExistsResponse
// @Router       /api/stock/exists [get]
func (h *StockHandler) Exists(c *fiber.Ctx) error {
	productID := int64(c.QueryInt("product_id"))
	sedeID := int64(c.QueryInt("sede_id"))
	if productID <= 0 || sedeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y sede_id son requeridos"})
	}
	resp, err := h.uc.Exists(c.Context(), productID, sedeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// LowStock godoc
// @Summary      Registros en o bajo su umbral mínimo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        sede_id  query  int  false  "Filtrar por sede; vacío = todas"
// @Success      200  {object}  dto.LowStockListResponse
// @Router       /api/stock/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	sedeID := int64(c.QueryInt("sede_id"))
	resp, err := h.uc.ListBelowMinimum(c.Context(), sedeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
