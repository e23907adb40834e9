package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/serviceorder"
	"github.com/jhoicas/Taller-api/pkg/validate"
)

// ServiceOrderHandler maneja las peticiones HTTP del agregado orden de
// servicio (panel del gerente; acotado a su empresa).
type ServiceOrderHandler struct {
	uc       *serviceorder.UseCase
	printout *serviceorder.PrintoutUseCase
}

// NewServiceOrderHandler construye el handler inyectando los casos de uso.
func NewServiceOrderHandler(uc *serviceorder.UseCase, printout *serviceorder.PrintoutUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{uc: uc, printout: printout}
}

// Create godoc
// @Summary      Crear orden de servicio
// @Description  Crea la orden con sus líneas en una sola transacción. El total de cada línea lo calcula el servidor.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceOrderRequest  true  "Orden con sus líneas"
// @Success      201   {object}  dto.ServiceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/manager/service-orders [post]
func (h *ServiceOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener orden de servicio por ID
// @Tags         service-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/service-orders/{id} [get]
func (h *ServiceOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de la empresa
// @Description  Solo cabeceras; las líneas se consultan orden por orden.
// @Tags         service-orders
// @Produce      json
// @Success      200  {array}  dto.ServiceOrderSummaryResponse
// @Router       /api/manager/service-orders [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de servicio
// @Description  Parche de cabecera y líneas en una sola transacción: solo se escriben los campos presentes. Línea con id = actualizar; sin id = insertar; las ausentes quedan intactas.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateServiceOrderRequest  true  "Orden con sus líneas"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manager/service-orders/{id} [put]
func (h *ServiceOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de servicio
// @Description  Elimina la orden y todas sus líneas en una sola transacción.
// @Tags         service-orders
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Printout godoc
// @Summary      Comprobante PDF de la orden
// @Tags         service-orders
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/service-orders/{id}/pdf [get]
func (h *ServiceOrderHandler) Printout(c *fiber.Ctx) error {
	pdfBytes, err := h.printout.Generate(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-de-servicio.pdf"`)
	return c.Send(pdfBytes)
}
