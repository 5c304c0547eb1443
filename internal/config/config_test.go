package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "CampusCleanlinessDB", cfg.MongoDBName)
	assert.Equal(t, "incidents", cfg.MongoCollection)
	assert.Equal(t, 5*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Empty(t, cfg.AlertWebhookURL)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 2*time.Second, cfg.WebhookBaseDelay)
}

func TestLoadConfig_Overrides(t *testing.T) {
	// Подготовка
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MONGO_DB_NAME", "TestDB")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REPORT_CACHE_TTL", "1m")
	t.Setenv("ALERT_WEBHOOK_URL", "http://dashboard.local/alerts")
	t.Setenv("WEBHOOK_TIMEOUT", "10s")
	t.Setenv("WEBHOOK_BASE_DELAY", "500ms")

	// Действие
	cfg, err := LoadConfig()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "TestDB", cfg.MongoDBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.ReportCacheTTL)
	assert.Equal(t, "http://dashboard.local/alerts", cfg.AlertWebhookURL)
	assert.Equal(t, 10*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.WebhookBaseDelay)
}

func TestLoadConfig_InvalidDurationFallsBack(t *testing.T) {
	// Подготовка
	t.Setenv("WEBHOOK_BASE_DELAY", "not-a-duration")
	t.Setenv("REDIS_DB", "not-a-number")

	// Действие
	cfg, err := LoadConfig()

	// Проверки: некорректные значения заменяются значениями по умолчанию
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.WebhookBaseDelay)
	assert.Equal(t, 0, cfg.RedisDB)
}
