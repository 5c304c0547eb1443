package v1

import (
	"time"
)

// DetectRequest DTO для формы загрузки снимка
// @Description DTO для формы загрузки снимка
type DetectRequest struct {
	// location_id попадает в имя файла снимка, поэтому его длина ограничена
	LocationID string `form:"location_id" validate:"max=128"`
}

// DetectResponse DTO для ответа на загрузку снимка
// @Description DTO для ответа на загрузку снимка
type DetectResponse struct {
	Success       bool    `json:"success"`
	IncidentID    *string `json:"incident_id"`
	Location      string  `json:"location"`
	DetectionType string  `json:"detection_type"`
	Confidence    float64 `json:"confidence"`
	IsAlert       bool    `json:"is_alert"`
}

// ErrorResponse DTO для ответа с ошибкой
// @Description DTO для ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SummaryResponse DTO для сводных метрик отчета
// @Description DTO для сводных метрик отчета
type SummaryResponse struct {
	TotalDetections int    `json:"totalDetections"`
	TotalAlerts     int    `json:"totalAlerts"`
	AvgConfidence   string `json:"avgConfidence"`
}

// HeatmapEntryResponse DTO для оценки одной локации
// @Description DTO для оценки одной локации
type HeatmapEntryResponse struct {
	Location string `json:"location"`
	Score    int    `json:"score"`
}

// ReportResponse DTO для агрегированного отчета дашборда
// @Description DTO для агрегированного отчета дашборда
type ReportResponse struct {
	GeneratedAt    time.Time              `json:"generatedAt"`
	Summary        SummaryResponse        `json:"summary"`
	DetectionTypes map[string]int         `json:"detectionTypes"`
	HourlyData     []int                  `json:"hourlyData"`
	HeatmapData    []HeatmapEntryResponse `json:"heatmapData"`
}
