package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLocation используется, когда клиент не передал location_id
const DefaultLocation = "Unknown Zone"

// StatusUnresolved - статус каждого нового инцидента; этот сервис его не меняет
const StatusUnresolved = "Unresolved"

// DetectionTypes - шесть фиксированных меток, которые выдает детектор
var DetectionTypes = []string{
	"Litter Detected",
	"Overflowing Bin",
	"Spill Detected",
	"Scattered Trash",
	"Debris Found",
	"Graffiti",
}

// alertTypes - метки, считающиеся срочными
var alertTypes = map[string]bool{
	"Overflowing Bin": true,
	"Spill Detected":  true,
	"Graffiti":        true,
}

// IsAlertType сообщает, относится ли метка к срочным.
// Флаг тревоги - чистая функция от типа детекции.
func IsAlertType(detectionType string) bool {
	return alertTypes[detectionType]
}

// AlertDetectionTypes возвращает срочные метки для условий агрегации
func AlertDetectionTypes() []string {
	return []string{"Overflowing Bin", "Spill Detected", "Graffiti"}
}

// Incident - одно зафиксированное событие детекции, привязанное к снимку и локации
type Incident struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DetectionType string             `bson:"detection_type" json:"detection_type"`
	Confidence    float64            `bson:"confidence" json:"confidence"`
	LocationID    string             `bson:"location_id" json:"location_id"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
	Status        string             `bson:"status" json:"status"`
	EvidencePath  string             `bson:"evidence_path" json:"evidence_path"`
}

// Detection - результат работы детектора по одному снимку
type Detection struct {
	DetectionType string  `json:"detection_type"`
	Confidence    float64 `json:"confidence"`
	IsAlert       bool    `json:"is_alert"`
}

// DetectionOutcome - итог обработки одной загрузки.
// Пустой IncidentID означает, что запись не была сохранена в хранилище.
type DetectionOutcome struct {
	IncidentID    string
	Location      string
	DetectionType string
	Confidence    float64
	IsAlert       bool
}
