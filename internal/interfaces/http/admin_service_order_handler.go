package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/serviceorder"
)

// AdminServiceOrderHandler vista de solo lectura de todas las órdenes del
// sistema (panel del administrador general; sin filtro de empresa).
type AdminServiceOrderHandler struct {
	uc *serviceorder.UseCase
}

// NewAdminServiceOrderHandler construye el handler inyectando el caso de uso.
func NewAdminServiceOrderHandler(uc *serviceorder.UseCase) *AdminServiceOrderHandler {
	return &AdminServiceOrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar todas las órdenes del sistema
// @Tags         admin-service-orders
// @Produce      json
// @Success      200  {array}  dto.ServiceOrderSummaryResponse
// @Router       /api/admin/service-orders [get]
func (h *AdminServiceOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.AdminList(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cualquier orden por ID
// @Tags         admin-service-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/service-orders/{id} [get]
func (h *AdminServiceOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.AdminGet(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
