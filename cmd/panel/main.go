package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/panel-inventario/internal/application/auth"
	"github.com/invorya/panel-inventario/internal/application/usecase"
	"github.com/invorya/panel-inventario/internal/infrastructure/backend"
	"github.com/invorya/panel-inventario/internal/infrastructure/sessionstore"
	httpRouter "github.com/invorya/panel-inventario/internal/interfaces/http"
	"github.com/invorya/panel-inventario/pkg/config"
	"github.com/invorya/panel-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando panel")

	ctx := context.Background()

	// Almacén durable de la sesión (equivalente del localStorage)
	db, err := sessionstore.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de sesión")
	}
	defer db.Close()

	store, err := sessionstore.New(db)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacén de sesión")
	}

	session := auth.NewSession(store)

	// Callback central de 401: limpiar sesión y tirar el snapshot del
	// dashboard. dashboardUC se asigna más abajo; la clausura lo captura.
	var dashboardUC *usecase.DashboardUseCase
	onUnauthorized := func() {
		if err := session.Clear(context.Background()); err != nil {
			log.Error().Err(err).Msg("limpiar sesión tras 401")
		}
		if dashboardUC != nil {
			dashboardUC.Reset()
		}
	}

	client := backend.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
		session,
		onUnauthorized,
		log,
	)

	inventoryRepo := backend.NewInventoryRepository(client)
	catalogRepo := backend.NewCatalogRepository(client)
	salesRepo := backend.NewSalesRepository(client)
	authGateway := backend.NewAuthGateway(client)

	authUC := auth.NewUseCase(authGateway, session, log)
	dashboardUC = usecase.NewDashboardUseCase(inventoryRepo, catalogRepo, log)
	chartsUC := usecase.NewChartsUseCase(salesRepo, cfg.Charts.TopLimit, log)
	orderUC := usecase.NewOrderUseCase(dashboardUC, log)

	// Restauración optimista: si hay sesión persistida se usa sin revalidar;
	// un token revocado aparece con el primer 401.
	if restored, err := authUC.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("restaurar sesión")
	} else if !restored {
		log.Info().Msg("sin sesión persistida, arrancando en anónimo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		ChartsUC:    chartsUC,
		OrderUC:     orderUC,
		Session:     session,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
