// Package main provides the Ember settings API server.
package main

import (
	"log/slog"
	"strconv"

	"github.com/emberhq/ember/pkg/config"
	"github.com/emberhq/ember/pkg/eventbus"
	"github.com/emberhq/ember/pkg/metrics"
	"github.com/emberhq/ember/pkg/services"
	"github.com/emberhq/ember/pkg/settings"
	"github.com/emberhq/ember/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"
)

type API struct {
	logger   *slog.Logger
	store    *settings.Store
	eventBus eventbus.EventBus
	tracer   trace.Tracer
	metrics  *metrics.Metrics
	config   config.Config
	validate *validator.Validate

	app *fiber.App
}

func NewAPI(
	logger *slog.Logger,
	store *settings.Store,
	eventBus eventbus.EventBus,
	tracer trace.Tracer,
	m *metrics.Metrics,
	cfg config.Config,
) *API {
	if m == nil {
		m = metrics.New()
	}

	api := &API{
		logger:   logger,
		store:    store,
		eventBus: eventBus,
		tracer:   tracer,
		metrics:  m,
		config:   cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	api.app = api.newApp()

	return api
}

func (a *API) App() *fiber.App {
	return a.app
}

func (a *API) newApp() *fiber.App {
	settingsService := services.NewSettings(a.store, a.eventBus, a.tracer, a.metrics, a.logger)

	handlers := web.NewAPIHandlers(settingsService, a.validate, a.config.StrictPayloads)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: a.config.Server.CORS.AllowedOrigins,
	}))
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Ember API")
	})

	handlers.RegisterRoutes(app.Group("/api"))

	app.Get("/health", handlers.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(a.metrics.Handler()))

	return app
}

func (a *API) Start(port int) error {
	return a.app.Listen(":" + strconv.Itoa(port))
}

// Shutdown stops a server started with Start.
func (a *API) Shutdown() error {
	return a.app.Shutdown()
}
