package detector

import (
	"context"
	"testing"

	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedDetector_LabelAndConfidenceRange(t *testing.T) {
	// Подготовка
	d := NewSimulatedDetector()
	ctx := context.Background()

	known := make(map[string]bool, len(models.DetectionTypes))
	for _, dt := range models.DetectionTypes {
		known[dt] = true
	}

	// Действие + Проверки: свойства должны выполняться для любого результата
	for i := 0; i < 1000; i++ {
		result, err := d.Detect(ctx, "uploads/evidence.jpg")
		require.NoError(t, err)
		assert.True(t, known[result.DetectionType], "unexpected detection type: %s", result.DetectionType)
		assert.GreaterOrEqual(t, result.Confidence, 85.0)
		assert.LessOrEqual(t, result.Confidence, 100.0)
	}
}

func TestSimulatedDetector_AlertFlagDerivedFromType(t *testing.T) {
	// Подготовка
	d := NewSimulatedDetector()
	ctx := context.Background()

	alertSet := map[string]bool{
		"Overflowing Bin": true,
		"Spill Detected":  true,
		"Graffiti":        true,
	}

	// Действие + Проверки
	for i := 0; i < 1000; i++ {
		result, err := d.Detect(ctx, "uploads/evidence.jpg")
		require.NoError(t, err)
		assert.Equal(t, alertSet[result.DetectionType], result.IsAlert)
	}
}

func TestIsAlertType(t *testing.T) {
	// Тревожными считаются ровно три метки
	assert.True(t, models.IsAlertType("Overflowing Bin"))
	assert.True(t, models.IsAlertType("Spill Detected"))
	assert.True(t, models.IsAlertType("Graffiti"))

	assert.False(t, models.IsAlertType("Litter Detected"))
	assert.False(t, models.IsAlertType("Scattered Trash"))
	assert.False(t, models.IsAlertType("Debris Found"))
	assert.False(t, models.IsAlertType(""))
}
