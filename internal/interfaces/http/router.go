package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/internal/application/console"
	"github.com/jhoicas/Propiedades-api/internal/domain/entity"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	AuthUC    *auth.AuthUseCase
	Console   *console.Service
	Metrics   *metrics.Metrics // nil = sin /metrics ni métricas HTTP
	JWTSecret string
	Log       zerolog.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(recover.New())
	app.Use(RequestID())
	if deps.Metrics != nil {
		app.Use(RequestLogger(deps.Log, deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	} else {
		app.Use(RequestLogger(deps.Log, nil))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)
	h := NewConsoleHandler(deps.Console)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", requireAuth, h.Logout)

	// Consola (requiere Bearer Token)
	screens := api.Group("/console", requireAuth)
	screens.Get("/:screen", h.View)
	screens.Post("/:screen/refresh", h.Refresh)
	screens.Put("/:screen/tab", h.SetTab)
	screens.Put("/:screen/search", h.SetSearch)
	screens.Delete("/:screen/items/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), h.Delete)
	screens.Delete("/:screen", h.Close)
}
