package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dreyes/sedestock-api/internal/application/dto"
	"github.com/dreyes/sedestock-api/internal/application/usecase"
	"github.com/dreyes/sedestock-api/internal/domain"
)

// CounterpartyHandler expone clientes y proveedores para los formularios
// de novedades.
type CounterpartyHandler struct {
	clients   *usecase.ClientUseCase
	suppliers *usecase.SupplierUseCase
}

// NewCounterpartyHandler construye el handler.
func NewCounterpartyHandler(clients *usecase.ClientUseCase, suppliers *usecase.SupplierUseCase) *CounterpartyHandler {
	return &CounterpartyHandler{clients: clients, suppliers: suppliers}
}

// ListClients godoc
// @Summary      Listar clientes
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *CounterpartyHandler) ListClients(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	resp, err := h.clients.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetClient obtiene un cliente por ID.
func (h *CounterpartyHandler) GetClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.clients.GetByID(c.Context(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         counterparties
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/suppliers [get]
func (h *CounterpartyHandler) ListSuppliers(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	resp, err := h.suppliers.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetSupplier obtiene un proveedor por ID.
func (h *CounterpartyHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.suppliers.GetByID(c.Context(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
