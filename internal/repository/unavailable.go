package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/shenikar/campus_cleanliness_system/internal/service"
)

// ErrStoreUnavailable возвращается операциями записи в деградированном режиме
var ErrStoreUnavailable = errors.New("incident store is unavailable")

// UnavailableRepository - деградированный режим хранилища: записи не
// выполняются, чтения возвращают пустые результаты. Выбирается один раз
// на старте процесса, если проба соединения не прошла
type UnavailableRepository struct{}

// NewUnavailableRepository создает репозиторий деградированного режима
func NewUnavailableRepository() service.IncidentRepository {
	return &UnavailableRepository{}
}

// Insert ничего не сохраняет
func (r *UnavailableRepository) Insert(_ context.Context, _ *models.Incident) (string, error) {
	return "", ErrStoreUnavailable
}

// Summary возвращает нулевые метрики
func (r *UnavailableRepository) Summary(_ context.Context) (int, int, float64, error) {
	return 0, 0, 0, nil
}

// CountByType возвращает пустую гистограмму
func (r *UnavailableRepository) CountByType(_ context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

// Timestamps возвращает пустой список
func (r *UnavailableRepository) Timestamps(_ context.Context) ([]time.Time, error) {
	return []time.Time{}, nil
}

// CountByLocation возвращает пустой список
func (r *UnavailableRepository) CountByLocation(_ context.Context) ([]models.LocationCount, error) {
	return []models.LocationCount{}, nil
}

// Available сообщает, что хранилище недоступно
func (r *UnavailableRepository) Available() bool {
	return false
}
