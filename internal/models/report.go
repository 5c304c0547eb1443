package models

import "time"

// ReportSummary - сводные метрики по всем инцидентам
type ReportSummary struct {
	TotalDetections int    `json:"totalDetections"`
	TotalAlerts     int    `json:"totalAlerts"`
	AvgConfidence   string `json:"avgConfidence"`
}

// HeatmapEntry - оценка чистоты одной локации, обратная к числу инцидентов
type HeatmapEntry struct {
	Location string `json:"location"`
	Score    int    `json:"score"`
}

// LocationCount - число инцидентов по одной локации (вход для теплокарты)
type LocationCount struct {
	Location string `bson:"_id"`
	Count    int    `bson:"issueCount"`
}

// Report - агрегированный отчет для дашборда
type Report struct {
	GeneratedAt    time.Time      `json:"generatedAt"`
	Summary        ReportSummary  `json:"summary"`
	DetectionTypes map[string]int `json:"detectionTypes"`
	HourlyData     []int          `json:"hourlyData"`
	HeatmapData    []HeatmapEntry `json:"heatmapData"`
}
