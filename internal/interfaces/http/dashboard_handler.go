package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/application/usecase"
	"github.com/invorya/panel-inventario/internal/domain"
)

// Mensaje de la página completa de error cuando la carga conjunta falla.
const loadFailedMessage = "No se pudieron cargar los datos. Verifique que el backend esté disponible."

// DashboardHandler maneja la carga y la vista filtrada del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Refresh godoc
// @Summary      Recargar el dashboard (cinco fetches en join)
// @Tags         dashboard
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/panel/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Load(c.Context()); err != nil {
		return mapLoadError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get devuelve la vista filtrada del snapshot vigente; si todavía no hay
// carga aplicada, carga primero (arranque perezoso).
// GET /api/panel/dashboard?store=<id|all>&q=<texto>
//
// @Summary      Vista filtrada del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        store  query  string  false  "id de tienda o all"
// @Param        q      query  string  false  "búsqueda por nombre o SKU"
// @Success      200    {object}  dto.DashboardDTO
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/panel/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	if !h.uc.Loaded() {
		if err := h.uc.Load(c.Context()); err != nil {
			return mapLoadError(c, err)
		}
	}

	view, err := h.uc.View(c.Query("store"), c.Query("q"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSnapshot):
			// Solo alcanzable si la sesión se invalidó entre la carga y la
			// vista; la capa externa debe reiniciar.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión invalidada durante la carga"})
		case errors.Is(err, domain.ErrMalformedRecord):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MALFORMED_DATA", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(view)
}

// mapLoadError política de errores de la carga conjunta: sesión expirada →
// 401 (la vista se reinicia); cualquier otro fallo → 502 con el mensaje de
// página completa. No se renderiza dashboard parcial y no hay reintentos.
func mapLoadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSessionExpired) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada, inicie sesión de nuevo"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "LOAD_FAILED", Message: loadFailedMessage})
}
