// Package main provides the GeoPulse API server implementation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayush19353/geopulse-ai-app/pkg/creative"
	"github.com/ayush19353/geopulse-ai-app/pkg/otelhelper"
	filepersistence "github.com/ayush19353/geopulse-ai-app/pkg/persistence/file"
	"github.com/ayush19353/geopulse-ai-app/pkg/publisher"
	"github.com/ayush19353/geopulse-ai-app/pkg/reasoning"
	"github.com/ayush19353/geopulse-ai-app/pkg/sessions"
	"github.com/ayush19353/geopulse-ai-app/pkg/signals"
	"github.com/ayush19353/geopulse-ai-app/pkg/strategist"
	"github.com/ayush19353/geopulse-ai-app/pkg/web"
)

type API struct {
	logger   *slog.Logger
	handlers *web.APIHandlers
}

// NewAPI wires the provider clients, reasoning services, publisher, and
// session manager from the credential bundle.
func NewAPI(ctx context.Context, logger *slog.Logger, cfg Config) (*API, error) {
	err := os.MkdirAll(cfg.DataDir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	var tracer trace.Tracer

	if cfg.Tracing {
		tracer, err = otelhelper.NewTracer(ctx, "geopulse")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
	}

	aggregator := signals.NewAggregator(
		signals.NewWeatherClient(cfg.OpenWeatherAPIURL, cfg.OpenWeatherAPIKey),
		signals.NewAirQualityClient(cfg.IQAirAPIURL, cfg.IQAirAPIKey),
		signals.NewHolidayClient(cfg.CalendarificAPIURL, cfg.CalendarificAPIKey),
		signals.NewNewsClient(cfg.NewsAPIURL, cfg.NewsAPIKey),
		logger,
	)

	completer := reasoning.NewClient(reasoning.Config{
		APIURL: cfg.OpenAIAPIURL,
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.ReasoningModel,
	})

	ranker, err := strategist.New(completer, logger)
	if err != nil {
		return nil, err
	}

	renderer := creative.NewImageClient(creative.ImageConfig{
		APIURL: cfg.OpenAIAPIURL,
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.ImageModel,
		OutDir: cfg.DataDir,
	}, logger)

	drafter := creative.NewGenerator(completer, renderer, logger)

	postPublisher := publisher.New(logger,
		publisher.NewTelegram(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID),
		publisher.NewDiscord(cfg.DiscordWebhookURL),
	)

	history := filepersistence.NewRunRepository(cfg.DataDir)

	manager := sessions.NewManager(sessions.Dependencies{
		Aggregator: aggregator,
		Ranker:     ranker,
		Drafter:    drafter,
		Publisher:  postPublisher,
		History:    history,
		Tracer:     tracer,
		Logger:     logger,
	})

	validate := validator.New(validator.WithRequiredStructEnabled())

	return &API{
		logger:   logger,
		handlers: web.NewAPIHandlers(manager, history, validate),
	}, nil
}

func (a *API) App() *fiber.App {
	app := fiber.New()
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("GeoPulse API")
	})

	app.Get("/catalog", a.handlers.GetCatalog)
	app.Get("/runs", a.handlers.ListRuns)

	s := app.Group("/sessions")
	s.Post("/", a.handlers.CreateSession)
	s.Get("/:id", a.handlers.GetSession)
	s.Delete("/:id", a.handlers.CloseSession)
	s.Post("/:id/analyze", a.handlers.Analyze)
	s.Post("/:id/trigger", a.handlers.SelectTrigger)
	s.Post("/:id/generate", a.handlers.Generate)
	s.Post("/:id/publish", a.handlers.Publish)
	s.Post("/:id/restart", a.handlers.Restart)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	return app.Listen(":" + strconv.Itoa(port))
}
