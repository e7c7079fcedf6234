package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/ayush19353/geopulse-ai-app/pkg/log"
)

const defaultPort = 9080

func main() {
	logger := log.WithModule("geopulse")

	cmd := &cli.Command{
		Name:                  "geopulse",
		Usage:                 "Turn live city signals into publishable marketing posts",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory for rendered images and archived runs",
				Value:   "./data",
				Sources: cli.EnvVars("DATA_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Enable OTLP trace export",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
			&cli.StringFlag{
				Name:     "openai-api-key",
				Usage:    "API key for the reasoning and image services",
				Required: true,
				Sources:  cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "openai-api-url",
				Usage:   "Base URL for the OpenAI-compatible API",
				Value:   "https://api.openai.com/v1",
				Sources: cli.EnvVars("OPENAI_API_URL"),
			},
			&cli.StringFlag{
				Name:    "reasoning-model",
				Usage:   "Chat model used for trigger ranking and copy generation",
				Value:   "gpt-4o",
				Sources: cli.EnvVars("REASONING_MODEL"),
			},
			&cli.StringFlag{
				Name:    "image-model",
				Usage:   "Image model used for rendering",
				Value:   "dall-e-3",
				Sources: cli.EnvVars("IMAGE_MODEL"),
			},
			&cli.StringFlag{
				Name:     "openweather-api-key",
				Usage:    "API key for the weather provider",
				Required: true,
				Sources:  cli.EnvVars("OPENWEATHER_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "openweather-api-url",
				Value:   "https://api.openweathermap.org",
				Sources: cli.EnvVars("OPENWEATHER_API_URL"),
			},
			&cli.StringFlag{
				Name:     "iqair-api-key",
				Usage:    "API key for the air-quality provider",
				Required: true,
				Sources:  cli.EnvVars("IQAIR_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "iqair-api-url",
				Value:   "https://api.airvisual.com",
				Sources: cli.EnvVars("IQAIR_API_URL"),
			},
			&cli.StringFlag{
				Name:     "calendarific-api-key",
				Usage:    "API key for the holiday calendar provider",
				Required: true,
				Sources:  cli.EnvVars("CALENDARIFIC_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "calendarific-api-url",
				Value:   "https://calendarific.com",
				Sources: cli.EnvVars("CALENDARIFIC_API_URL"),
			},
			&cli.StringFlag{
				Name:     "news-api-key",
				Usage:    "API key for the news/events provider",
				Required: true,
				Sources:  cli.EnvVars("NEWS_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "news-api-url",
				Value:   "https://newsapi.org",
				Sources: cli.EnvVars("NEWS_API_URL"),
			},
			&cli.StringFlag{
				Name:     "telegram-bot-token",
				Usage:    "Telegram bot token for publishing",
				Required: true,
				Sources:  cli.EnvVars("TELEGRAM_BOT_TOKEN"),
			},
			&cli.StringFlag{
				Name:     "telegram-chat-id",
				Usage:    "Telegram chat the bot posts into",
				Required: true,
				Sources:  cli.EnvVars("TELEGRAM_CHAT_ID"),
			},
			&cli.StringFlag{
				Name:    "telegram-api-url",
				Value:   "https://api.telegram.org",
				Sources: cli.EnvVars("TELEGRAM_API_URL"),
			},
			&cli.StringFlag{
				Name:     "discord-webhook-url",
				Usage:    "Discord webhook for publishing",
				Required: true,
				Sources:  cli.EnvVars("DISCORD_WEBHOOK_URL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing GeoPulse API")

			api, err := NewAPI(ctx, logger, configFromCommand(command))
			if err != nil {
				return err
			}

			return api.Start(command.Int("port"))
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		logger.Error("GeoPulse exited with error", "error", err)
		os.Exit(1)
	}
}
