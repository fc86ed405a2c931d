package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Propiedades-api/docs"

	"github.com/jhoicas/Propiedades-api/internal/application/auth"
	"github.com/jhoicas/Propiedades-api/internal/application/console"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Propiedades-api/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/Propiedades-api/internal/interfaces/http"
	"github.com/jhoicas/Propiedades-api/pkg/config"
	"github.com/jhoicas/Propiedades-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Console.DataSource).
		Msg("iniciando aplicación")

	// Los usuarios siempre viven en PostgreSQL; la fuente de las pantallas es configurable.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var repos console.Repositories
	switch cfg.Console.DataSource {
	case config.DataSourceRemote:
		client := remote.NewClient(cfg.Console.RemoteURL, cfg.Console.RemoteTimeout, log.Component("remote"))
		repos = console.Repositories{
			Tenants:     client.Tenants(),
			Leases:      client.Leases(),
			Maintenance: client.Maintenance(),
		}
		log.Info().Str("url", cfg.Console.RemoteURL).Msg("pantallas servidas desde API remota")
	default:
		repos = console.Repositories{
			Tenants:     postgres.NewTenantRepository(pool),
			Leases:      postgres.NewLeaseRepository(pool),
			Maintenance: postgres.NewMaintenanceRepository(pool),
		}
	}

	m := metrics.New()
	consoleSvc := console.NewService(repos, console.Config{
		TenantRules: console.DefaultTenantRules(),
		Observer:    m,
	}, log.Component("console"))

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Console.RemoteTimeout + time.Second*5,
		IdleTimeout:  time.Second * 60,
	})

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: docs.FilePath,
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		AuthUC:    authUC,
		Console:   consoleSvc,
		Metrics:   m,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Component("http"),
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

	log.Info().Msg("aplicación detenida")
}
