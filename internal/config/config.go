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
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// MongoDB Config
	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName         string        `env:"MONGO_DB_NAME" envDefault:"CampusCleanlinessDB"`
	MongoCollection     string        `env:"MONGO_COLLECTION" envDefault:"incidents"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"5s"`

	// Evidence Storage Config
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	// Redis Config (пустой REDIS_ADDR отключает кеш и очередь алертов)
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPass      string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"30s"`

	// Alert Webhook Config
	AlertWebhookURL    string        `env:"ALERT_WEBHOOK_URL"`
	AlertWebhookSecret string        `env:"ALERT_WEBHOOK_SECRET"`
	WebhookTimeout     time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookBaseDelay   time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"2s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGO_DB_NAME", "CampusCleanlinessDB"),
		MongoCollection:     getEnv("MONGO_COLLECTION", "incidents"),
		MongoConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		ReportCacheTTL:      getEnvAsDuration("REPORT_CACHE_TTL", 30*time.Second),
		AlertWebhookURL:     os.Getenv("ALERT_WEBHOOK_URL"),
		AlertWebhookSecret:  os.Getenv("ALERT_WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", 2*time.Second),
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
