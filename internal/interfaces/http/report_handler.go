package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/usecase"
)

// ReportHandler estadísticas de la empresa del gerente.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler inyectando el caso de uso.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Statistics godoc
// @Summary      Tablero de la empresa
// @Description  Total de órdenes, conteo por estado, total de clientes y facturación de las órdenes completadas.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/manager/statistics [get]
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
