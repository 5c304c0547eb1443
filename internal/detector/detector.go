package detector

import (
	"context"
	"math"
	"math/rand"

	"github.com/shenikar/campus_cleanliness_system/internal/models"
)

// Detector определяет контракт модели детекции: настоящая модель сможет
// заменить симулятор, не меняя вызывающий код
type Detector interface {
	Detect(ctx context.Context, evidencePath string) (*models.Detection, error)
}

// SimulatedDetector - заглушка модели: равномерный выбор метки и уверенности
type SimulatedDetector struct{}

// NewSimulatedDetector создает симулятор детекции
func NewSimulatedDetector() *SimulatedDetector {
	return &SimulatedDetector{}
}

// Detect выдает случайный результат: одна из шести меток и
// уверенность в диапазоне [85, 100] с одним знаком после запятой
func (d *SimulatedDetector) Detect(_ context.Context, _ string) (*models.Detection, error) {
	detectionType := models.DetectionTypes[rand.Intn(len(models.DetectionTypes))]
	confidence := math.Round((85+rand.Float64()*15)*10) / 10

	return &models.Detection{
		DetectionType: detectionType,
		Confidence:    confidence,
		IsAlert:       models.IsAlertType(detectionType),
	}, nil
}
