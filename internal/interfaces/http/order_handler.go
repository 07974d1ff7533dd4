package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/application/usecase"
	"github.com/invorya/panel-inventario/internal/domain"
)

// OrderHandler maneja la simulación de órdenes de reorden.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Simular una orden de reorden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "alertId, quantity (0 = cantidad recomendada)"
// @Success      201   {object}  dto.OrderConfirmationDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/panel/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Simulate(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser al menos 1"})
		case errors.Is(err, domain.ErrNoSnapshot):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: "cargue el dashboard antes de ordenar"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ALERT_NOT_FOUND", Message: "la alerta no existe en los datos cargados"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
