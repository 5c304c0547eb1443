package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_cleanliness_system/internal/config"
	"github.com/sirupsen/logrus"
)

// AlertWorker - структура для обработки и отправки алертов внешнему вебхуку
type AlertWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewAlertWorker создает новый AlertWorker
func NewAlertWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AlertWorker {
	return &AlertWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди алертов
func (w *AlertWorker) Start(ctx context.Context) {
	w.logger.Info("Starting alert webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert webhook worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(w.cfg.WebhookBaseDelay) // Ждем перед повторной попыткой чтения очереди
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event AlertEvent
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.deliverAlert(ctx, event, payload)
			}
		}
	}()
}

// deliverAlert отправляет алерт одним запросом, без повторов:
// несработавший алерт просто логируется
func (w *AlertWorker) deliverAlert(ctx context.Context, event AlertEvent, rawPayload string) {
	log := w.logger.WithField("event_location", event.LocationID).WithField("event_type", event.DetectionType)
	log.Debug("Delivering alert event...")

	if w.cfg.AlertWebhookURL == "" {
		log.Warn("Alert webhook URL is not configured. Skipping alert delivery.")
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.AlertWebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		log.WithError(err).Error("Failed to create alert webhook request")
		return
	}

	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если ALERT_WEBHOOK_SECRET задан
	if w.cfg.AlertWebhookSecret != "" {
		signature := generateHMACSHA256(rawPayload, w.cfg.AlertWebhookSecret)
		req.Header.Set("X-Webhook-Signature", signature)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send alert webhook")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info("Alert webhook delivered successfully.")
	} else {
		log.Warnf("Alert webhook delivery failed with status code %d", resp.StatusCode)
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
