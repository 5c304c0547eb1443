package v1

import "github.com/shenikar/campus_cleanliness_system/internal/models"

// OutcomeToDetectResponse преобразует итог обработки загрузки в DTO ответа.
// Пустой id инцидента отдается как null: запись не была сохранена
func OutcomeToDetectResponse(outcome *models.DetectionOutcome) *DetectResponse {
	var incidentID *string
	if outcome.IncidentID != "" {
		id := outcome.IncidentID
		incidentID = &id
	}
	return &DetectResponse{
		Success:       true,
		IncidentID:    incidentID,
		Location:      outcome.Location,
		DetectionType: outcome.DetectionType,
		Confidence:    outcome.Confidence,
		IsAlert:       outcome.IsAlert,
	}
}

// ReportToResponse преобразует доменную модель отчета в DTO для ответа
func ReportToResponse(report *models.Report) *ReportResponse {
	heatmap := make([]HeatmapEntryResponse, len(report.HeatmapData))
	for i, entry := range report.HeatmapData {
		heatmap[i] = HeatmapEntryResponse{
			Location: entry.Location,
			Score:    entry.Score,
		}
	}

	return &ReportResponse{
		GeneratedAt: report.GeneratedAt,
		Summary: SummaryResponse{
			TotalDetections: report.Summary.TotalDetections,
			TotalAlerts:     report.Summary.TotalAlerts,
			AvgConfidence:   report.Summary.AvgConfidence,
		},
		DetectionTypes: report.DetectionTypes,
		HourlyData:     report.HourlyData,
		HeatmapData:    heatmap,
	}
}
