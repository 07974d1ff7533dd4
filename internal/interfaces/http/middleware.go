package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/panel-inventario/internal/application/auth"
	"github.com/invorya/panel-inventario/internal/application/dto"
)

// RequireSession bloquea las rutas de datos cuando el panel está en estado
// Anónimo. El 401 con SESSION_EXPIRED es la señal para que la capa de vista
// externa vuelva a la pantalla de login; el panel no redirige por sí mismo.
func RequireSession(session *auth.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !session.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "SESSION_EXPIRED", Message: "inicie sesión para continuar",
			})
		}
		return c.Next()
	}
}
