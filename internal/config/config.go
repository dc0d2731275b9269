package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT"`

	// Секрет для подписи JWT. Токен живет 24 часа, отзыва нет.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Настройки клиента Groq. Ключ намеренно не required:
	// его отсутствие поднимается как ошибка на запросе рекомендации,
	// остальное приложение при этом работает.
	GroqAPIKey string `env:"GROQ_API_KEY"`
	GroqModel  string `env:"GROQ_MODEL"`

	// Хост фронтенда, которому разрешен CORS.
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// Каталог с собранным SPA-бандлом.
	StaticDir string `env:"STATIC_DIR"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Значения по умолчанию выставляем вручную, а не через envDefault
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.GroqModel == "" {
		cfg.GroqModel = "llama-3.1-8b-instant"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "frontend/dist"
	}

	return &cfg, nil
}
