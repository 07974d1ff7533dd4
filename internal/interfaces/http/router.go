package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/panel-inventario/internal/application/auth"
	"github.com/invorya/panel-inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	DashboardUC *usecase.DashboardUseCase
	ChartsUC    *usecase.ChartsUseCase
	OrderUC     *usecase.OrderUseCase
	Session     *auth.Session
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/panel")

	// Auth y estado de sesión (público: es lo que permite volver a entrar)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/session", authHandler.Session)

	// Rutas de datos (requieren sesión vigente)
	protected := api.Group("/", RequireSession(deps.Session))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Post("/dashboard/refresh", dashboardHandler.Refresh)
	protected.Get("/dashboard", dashboardHandler.Get)

	chartsHandler := NewChartsHandler(deps.ChartsUC)
	protected.Get("/charts", chartsHandler.Get)

	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Post("/orders", orderHandler.Create)
}
