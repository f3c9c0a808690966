package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения.
// Пороговые значения геолокации собраны здесь, а не разбросаны по коду:
// политика обновлений и реестр присутствия получают их явно через конструкторы.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Пороговые значения обработки геолокации
	LocationThrottle    time.Duration `env:"LOCATION_THROTTLE" envDefault:"3s"`
	MinDistanceMeters   float64       `env:"MIN_DISTANCE_METERS" envDefault:"5"`
	StaleFixAge         time.Duration `env:"STALE_FIX_AGE" envDefault:"30s"`
	ResponderStaleAfter time.Duration `env:"RESPONDER_STALE_AFTER" envDefault:"10m"`
	SOSStaleAfter       time.Duration `env:"SOS_STALE_AFTER" envDefault:"30s"`

	// Таймауты запроса одиночного измерения
	HighAccuracyTimeout time.Duration `env:"HIGH_ACCURACY_TIMEOUT" envDefault:"10s"`
	LowAccuracyTimeout  time.Duration `env:"LOW_ACCURACY_TIMEOUT" envDefault:"20s"`

	// Routing Config
	RoutingBaseURL string        `env:"ROUTING_BASE_URL"`
	RoutingTimeout time.Duration `env:"ROUTING_TIMEOUT" envDefault:"5s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		LocationThrottle:       getEnvAsDuration("LOCATION_THROTTLE", 3*time.Second),
		MinDistanceMeters:      getEnvAsFloat("MIN_DISTANCE_METERS", 5),
		StaleFixAge:            getEnvAsDuration("STALE_FIX_AGE", 30*time.Second),
		ResponderStaleAfter:    getEnvAsDuration("RESPONDER_STALE_AFTER", 10*time.Minute),
		SOSStaleAfter:          getEnvAsDuration("SOS_STALE_AFTER", 30*time.Second),
		HighAccuracyTimeout:    getEnvAsDuration("HIGH_ACCURACY_TIMEOUT", 10*time.Second),
		LowAccuracyTimeout:     getEnvAsDuration("LOW_ACCURACY_TIMEOUT", 20*time.Second),
		RoutingBaseURL:         os.Getenv("ROUTING_BASE_URL"),
		RoutingTimeout:         getEnvAsDuration("ROUTING_TIMEOUT", 5*time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// StaleThresholdFor возвращает порог устаревания записи присутствия
// для типа субъекта: активное SOS-отслеживание устаревает куда быстрее,
// чем позиция дежурного
func (c *Config) StaleThresholdFor(kind string) time.Duration {
	if kind == "SOS_ORIGINATOR" {
		return c.SOSStaleAfter
	}
	return c.ResponderStaleAfter
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
