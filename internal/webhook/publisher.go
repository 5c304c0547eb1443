package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - структура для данных алерта, отправляемого дашбордам
type AlertEvent struct {
	IncidentID    string    `json:"incident_id,omitempty"`
	DetectionType string    `json:"detection_type"`
	Confidence    float64   `json:"confidence"`
	LocationID    string    `json:"location_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации алертов
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие алерта в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}

// NoopAlertPublisher используется, когда Redis не сконфигурирован
type NoopAlertPublisher struct{}

// NewNoopAlertPublisher создает публикатор-заглушку
func NewNoopAlertPublisher() *NoopAlertPublisher {
	return &NoopAlertPublisher{}
}

// Publish ничего не делает
func (p *NoopAlertPublisher) Publish(_ context.Context, _ AlertEvent) error {
	return nil
}
