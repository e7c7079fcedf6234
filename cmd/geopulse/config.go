package main

import cli "github.com/urfave/cli/v3"

// Config is the ready-made credential and endpoint bundle the core receives
// at startup. Endpoint URLs are overridable so tests and self-hosted
// gateways can point at their own servers.
type Config struct {
	DataDir string
	Tracing bool

	OpenAIAPIKey   string
	OpenAIAPIURL   string
	ReasoningModel string
	ImageModel     string

	OpenWeatherAPIKey  string
	OpenWeatherAPIURL  string
	IQAirAPIKey        string
	IQAirAPIURL        string
	CalendarificAPIKey string
	CalendarificAPIURL string
	NewsAPIKey         string
	NewsAPIURL         string

	TelegramBotToken  string
	TelegramChatID    string
	TelegramAPIURL    string
	DiscordWebhookURL string
}

func configFromCommand(command *cli.Command) Config {
	return Config{
		DataDir: command.String("data-dir"),
		Tracing: command.Bool("tracing"),

		OpenAIAPIKey:   command.String("openai-api-key"),
		OpenAIAPIURL:   command.String("openai-api-url"),
		ReasoningModel: command.String("reasoning-model"),
		ImageModel:     command.String("image-model"),

		OpenWeatherAPIKey:  command.String("openweather-api-key"),
		OpenWeatherAPIURL:  command.String("openweather-api-url"),
		IQAirAPIKey:        command.String("iqair-api-key"),
		IQAirAPIURL:        command.String("iqair-api-url"),
		CalendarificAPIKey: command.String("calendarific-api-key"),
		CalendarificAPIURL: command.String("calendarific-api-url"),
		NewsAPIKey:         command.String("news-api-key"),
		NewsAPIURL:         command.String("news-api-url"),

		TelegramBotToken:  command.String("telegram-bot-token"),
		TelegramChatID:    command.String("telegram-chat-id"),
		TelegramAPIURL:    command.String("telegram-api-url"),
		DiscordWebhookURL: command.String("discord-webhook-url"),
	}
}
