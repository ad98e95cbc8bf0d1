package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Gemini Config
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"15s"`

	// Mapbox Config
	MapboxAPIKey  string        `env:"MAPBOX_API_KEY"`
	MapboxBaseURL string        `env:"MAPBOX_BASE_URL"`
	MapboxTimeout time.Duration `env:"MAPBOX_TIMEOUT" envDefault:"10s"`

	// Официальные обновления (RSS)
	OfficialFeedURL     string        `env:"OFFICIAL_FEED_URL"`
	OfficialFeedTimeout time.Duration `env:"OFFICIAL_FEED_TIMEOUT" envDefault:"15s"`

	// TTL кэша по классам ключей, 0 - без срока жизни
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"720h"`
	FeedCacheTTL    time.Duration `env:"FEED_CACHE_TTL" envDefault:"1h"`
	SocialCacheTTL  time.Duration `env:"SOCIAL_CACHE_TTL" envDefault:"15m"`

	// Каталог для загружаемых изображений верификации
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"public/verify-images"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
}

const (
	defaultGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultMapboxBaseURL   = "https://api.mapbox.com/geocoding/v5/mapbox.places"
	defaultOfficialFeedURL = "https://sachet.ndma.gov.in/cap_public_website/rss/rss_india.xml"
)

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:       getEnv("GEMINI_BASE_URL", defaultGeminiBaseURL),
		GeminiTimeout:       getEnvAsDuration("GEMINI_TIMEOUT", 15*time.Second),
		MapboxAPIKey:        os.Getenv("MAPBOX_API_KEY"),
		MapboxBaseURL:       getEnv("MAPBOX_BASE_URL", defaultMapboxBaseURL),
		MapboxTimeout:       getEnvAsDuration("MAPBOX_TIMEOUT", 10*time.Second),
		OfficialFeedURL:     getEnv("OFFICIAL_FEED_URL", defaultOfficialFeedURL),
		OfficialFeedTimeout: getEnvAsDuration("OFFICIAL_FEED_TIMEOUT", 15*time.Second),
		GeocodeCacheTTL:     getEnvAsDuration("GEOCODE_CACHE_TTL", 720*time.Hour),
		FeedCacheTTL:        getEnvAsDuration("FEED_CACHE_TTL", time.Hour),
		SocialCacheTTL:      getEnvAsDuration("SOCIAL_CACHE_TTL", 15*time.Minute),
		UploadDir:           getEnv("UPLOAD_DIR", "public/verify-images"),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
