package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/shenikar/campus_cleanliness_system/internal/service"
)

const reportCacheKey = "report:latest"

// RedisReportCache кеширует агрегированный отчет в Redis.
// Кеш инвалидируется при каждой успешной записи инцидента, поэтому
// закешированный отчет не может противоречить содержимому хранилища
type RedisReportCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisReportCache создает кеш отчетов с заданным TTL
func NewRedisReportCache(client *redis.Client, ttl time.Duration) service.ReportCache {
	return &RedisReportCache{
		redisClient: client,
		ttl:         ttl,
	}
}

// GetReport пытается получить отчет из Redis; промах кеша - это (nil, nil)
func (c *RedisReportCache) GetReport(ctx context.Context) (*models.Report, error) {
	val, err := c.redisClient.Get(ctx, reportCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReport сохраняет отчет в Redis
func (c *RedisReportCache) SetReport(ctx context.Context, report *models.Report) error {
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, reportCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReport удаляет отчет из Redis кеша
func (c *RedisReportCache) InvalidateReport(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, reportCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

// NoopReportCache используется, когда Redis не сконфигурирован
type NoopReportCache struct{}

// NewNoopReportCache создает кеш-заглушку
func NewNoopReportCache() service.ReportCache {
	return &NoopReportCache{}
}

// GetReport всегда промахивается
func (c *NoopReportCache) GetReport(_ context.Context) (*models.Report, error) {
	return nil, nil
}

// SetReport ничего не сохраняет
func (c *NoopReportCache) SetReport(_ context.Context, _ *models.Report) error {
	return nil
}

// InvalidateReport ничего не делает
func (c *NoopReportCache) InvalidateReport(_ context.Context) error {
	return nil
}
