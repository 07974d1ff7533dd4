package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/panel-inventario/internal/application/usecase"
)

// ChartsHandler maneja el panel de analítica (gráficas).
type ChartsHandler struct {
	uc *usecase.ChartsUseCase
}

// NewChartsHandler construye el handler.
func NewChartsHandler(uc *usecase.ChartsUseCase) *ChartsHandler {
	return &ChartsHandler{uc: uc}
}

// Get godoc
// @Summary      Datos de las gráficas (top de ventas y tendencia de 30 días)
// @Tags         charts
// @Produce      json
// @Success      200  {object}  dto.ChartsDTO
// @Router       /api/panel/charts [get]
//
// Siempre responde 200: si la carga falla, Available=false y las series van
// vacías (el fallo ya quedó en el log). El panel de gráficas nunca rompe el
// resto de la página.
func (h *ChartsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Load(c.Context()))
}
