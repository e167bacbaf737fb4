package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv           string `env:"APP_ENV" default:"development"`
	Port             string `env:"PORT" default:"8080"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	GroupChatID      int64  `env:"GROUP_CHAT_ID"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel      string `env:"OPENAI_MODEL" default:"gpt-4o-mini"`
	DatabaseURL      string `env:"DATABASE_URL"`
	RedisURL         string `env:"REDIS_URL"` // optional: in-memory name cache when unset
	CommunityName    string `env:"COMMUNITY_NAME" default:"our community"`
	LogLevel         string `env:"LOG_LEVEL" default:"info"`
	LogFormat        string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"TELEGRAM_BOT_TOKEN": cfg.TelegramBotToken,
		"OPENAI_API_KEY":     cfg.OpenAIAPIKey,
		"DATABASE_URL":       cfg.DatabaseURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.GroupChatID == 0 {
		return fmt.Errorf("GROUP_CHAT_ID is required")
	}

	return nil
}
