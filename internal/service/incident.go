package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shenikar/campus_cleanliness_system/internal/detector"
	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/shenikar/campus_cleanliness_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов.
// Реализация выбирается один раз на старте процесса: подключенная либо
// деградированная, без повторных подключений
type IncidentRepository interface {
	Insert(ctx context.Context, incident *models.Incident) (string, error)
	Summary(ctx context.Context) (total int, alerts int, avgConfidence float64, err error)
	CountByType(ctx context.Context) (map[string]int, error)
	Timestamps(ctx context.Context) ([]time.Time, error)
	CountByLocation(ctx context.Context) ([]models.LocationCount, error)
	Available() bool
}

// ReportCache определяет контракт кеша агрегированного отчета
type ReportCache interface {
	GetReport(ctx context.Context) (*models.Report, error)
	SetReport(ctx context.Context, report *models.Report) error
	InvalidateReport(ctx context.Context) error
}

// EvidenceSaver определяет контракт сохранения снимка на диск
type EvidenceSaver interface {
	Save(image io.Reader, locationID string) (string, error)
}

// DetectionService определяет контракт обработки одной загрузки
type DetectionService interface {
	DetectAndReport(ctx context.Context, image io.Reader, locationID string) (*models.DetectionOutcome, error)
}

// ReportService определяет контракт построения отчета для дашборда
type ReportService interface {
	BuildReport(ctx context.Context) (*models.Report, error)
}

type detectionService struct {
	repo      IncidentRepository
	cache     ReportCache
	evidence  EvidenceSaver
	detector  detector.Detector
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
}

// NewDetectionService создает сервис обработки загрузок
func NewDetectionService(
	repo IncidentRepository,
	cache ReportCache,
	evidence EvidenceSaver,
	det detector.Detector,
	publisher webhook.AlertPublisher,
	logger *logrus.Logger,
) DetectionService {
	return &detectionService{
		repo:      repo,
		cache:     cache,
		evidence:  evidence,
		detector:  det,
		publisher: publisher,
		logger:    logger,
	}
}

// DetectAndReport сохраняет снимок, прогоняет детектор и дописывает инцидент
// в хранилище. Ошибки хранилища не срывают запрос: инцидент остается без id
func (s *detectionService) DetectAndReport(ctx context.Context, image io.Reader, locationID string) (*models.DetectionOutcome, error) {
	if locationID == "" {
		locationID = models.DefaultLocation
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "detection",
		"method":   "DetectAndReport",
		"location": locationID,
	})
	log.Info("Processing uploaded evidence")

	evidencePath, err := s.evidence.Save(image, locationID)
	if err != nil {
		log.WithError(err).Error("Failed to save evidence file")
		return nil, fmt.Errorf("service: could not save evidence: %w", err)
	}

	detection, err := s.detector.Detect(ctx, evidencePath)
	if err != nil {
		log.WithError(err).Error("Detector failed")
		return nil, fmt.Errorf("service: inference failed: %w", err)
	}

	incident := &models.Incident{
		DetectionType: detection.DetectionType,
		Confidence:    detection.Confidence,
		LocationID:    locationID,
		Timestamp:     time.Now(),
		Status:        models.StatusUnresolved,
		EvidencePath:  evidencePath,
	}

	// Запись в хранилище выполняется по принципу fail open:
	// при любой ошибке инцидент не сохраняется, а запрос завершается успешно
	incidentID, err := s.repo.Insert(ctx, incident)
	if err != nil {
		log.WithError(err).Warn("Incident was not persisted, continuing without id")
		incidentID = ""
	} else {
		log.WithField("incident_id", incidentID).Info("Incident persisted")
		if err := s.cache.InvalidateReport(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate report cache")
		}
	}

	if detection.IsAlert {
		event := webhook.AlertEvent{
			IncidentID:    incidentID,
			DetectionType: detection.DetectionType,
			Confidence:    detection.Confidence,
			LocationID:    locationID,
			Timestamp:     incident.Timestamp,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish alert event")
		}
	}

	return &models.DetectionOutcome{
		IncidentID:    incidentID,
		Location:      locationID,
		DetectionType: detection.DetectionType,
		Confidence:    detection.Confidence,
		IsAlert:       detection.IsAlert,
	}, nil
}

type reportService struct {
	repo   IncidentRepository
	cache  ReportCache
	logger *logrus.Logger
}

// NewReportService создает сервис построения отчетов
func NewReportService(repo IncidentRepository, cache ReportCache, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// BuildReport строит агрегированный отчет. Ошибки хранилища и кеша не
// поднимаются выше: дашборд всегда получает корректный по форме ответ
func (s *reportService) BuildReport(ctx context.Context) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "BuildReport",
	})

	if !s.repo.Available() {
		log.Debug("Store unavailable, returning default report")
		return defaultReport(), nil
	}

	cached, err := s.cache.GetReport(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read report cache")
	}
	if cached != nil {
		log.Debug("Report served from cache")
		return cached, nil
	}

	total, alerts, avgConfidence, err := s.repo.Summary(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate summary, returning default report")
		return defaultReport(), nil
	}

	typeCounts, err := s.repo.CountByType(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate detection types, returning default report")
		return defaultReport(), nil
	}

	timestamps, err := s.repo.Timestamps(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load incident timestamps, returning default report")
		return defaultReport(), nil
	}

	locationCounts, err := s.repo.CountByLocation(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate locations, returning default report")
		return defaultReport(), nil
	}

	report := &models.Report{
		GeneratedAt:    time.Now(),
		Summary:        buildSummary(total, alerts, avgConfidence),
		DetectionTypes: typeCounts,
		HourlyData:     hourlyHistogram(timestamps),
		HeatmapData:    heatmapScores(locationCounts),
	}

	if err := s.cache.SetReport(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache report")
	}

	log.WithField("total_detections", total).Info("Report built")
	return report, nil
}

// buildSummary форматирует сводные метрики.
// Средняя уверенность рендерится строкой вида "92.5%", при пустом
// хранилище - "0%"
func buildSummary(total, alerts int, avgConfidence float64) models.ReportSummary {
	avg := "0%"
	if avgConfidence != 0 {
		avg = fmt.Sprintf("%.1f%%", avgConfidence)
	}
	return models.ReportSummary{
		TotalDetections: total,
		TotalAlerts:     alerts,
		AvgConfidence:   avg,
	}
}

// hourlyHistogram раскладывает инциденты по 24 часовым корзинам.
// Час берется в локальном времени сервера
func hourlyHistogram(timestamps []time.Time) []int {
	hourly := make([]int, 24)
	for _, ts := range timestamps {
		hourly[ts.Local().Hour()]++
	}
	return hourly
}

// heatmapScores вычисляет оценку чистоты каждой локации: max(0, 100 - 5*count).
// Вход уже отсортирован по убыванию числа инцидентов
func heatmapScores(counts []models.LocationCount) []models.HeatmapEntry {
	entries := make([]models.HeatmapEntry, len(counts))
	for i, lc := range counts {
		score := 100 - lc.Count*5
		if score < 0 {
			score = 0
		}
		entries[i] = models.HeatmapEntry{
			Location: lc.Location,
			Score:    score,
		}
	}
	return entries
}

// defaultReport - фиксированный ответ для режима без хранилища:
// нулевые счетчики и пять кампусных локаций с максимальной оценкой,
// чтобы дашборды рендерились без ветвления на недоступность
func defaultReport() *models.Report {
	defaultLocations := []string{
		"Main Quad",
		"Library Entrance",
		"Cafeteria Block",
		"Dormitory A",
		"Sports Field",
	}

	heatmap := make([]models.HeatmapEntry, len(defaultLocations))
	for i, loc := range defaultLocations {
		heatmap[i] = models.HeatmapEntry{Location: loc, Score: 100}
	}

	return &models.Report{
		GeneratedAt:    time.Now(),
		Summary:        models.ReportSummary{TotalDetections: 0, TotalAlerts: 0, AvgConfidence: "0%"},
		DetectionTypes: map[string]int{},
		HourlyData:     make([]int, 24),
		HeatmapData:    heatmap,
	}
}
