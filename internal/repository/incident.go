package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/campus_cleanliness_system/internal/models"
	"github.com/shenikar/campus_cleanliness_system/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoIncidentRepository - репозиторий инцидентов поверх коллекции MongoDB
type MongoIncidentRepository struct {
	collection *mongo.Collection
}

// NewMongoIncidentRepository создает репозиторий поверх подключенного клиента
func NewMongoIncidentRepository(client *mongo.Client, dbName, collectionName string) service.IncidentRepository {
	return &MongoIncidentRepository{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Insert добавляет новую запись об инциденте и возвращает ее id
func (r *MongoIncidentRepository) Insert(ctx context.Context, incident *models.Incident) (string, error) {
	result, err := r.collection.InsertOne(ctx, incident)
	if err != nil {
		return "", fmt.Errorf("failed to insert incident: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// Summary считает сводные метрики одним конвейером агрегации
func (r *MongoIncidentRepository) Summary(ctx context.Context) (int, int, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalDetections", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgConfidence", Value: bson.D{{Key: "$avg", Value: "$confidence"}}},
			{Key: "totalAlerts", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$in", Value: bson.A{"$detection_type", models.AlertDetectionTypes()}}},
					1,
					0,
				}},
			}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to aggregate summary: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalDetections int     `bson:"totalDetections"`
		AvgConfidence   float64 `bson:"avgConfidence"`
		TotalAlerts     int     `bson:"totalAlerts"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode summary: %w", err)
	}

	// Пустая коллекция дает пустой результат конвейера
	if len(results) == 0 {
		return 0, 0, 0, nil
	}
	return results[0].TotalDetections, results[0].TotalAlerts, results[0].AvgConfidence, nil
}

// CountByType возвращает число инцидентов по каждой наблюдавшейся метке
func (r *MongoIncidentRepository) CountByType(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$detection_type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate detection types: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		DetectionType string `bson:"_id"`
		Count         int    `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode detection types: %w", err)
	}

	counts := make(map[string]int, len(results))
	for _, item := range results {
		counts[item.DetectionType] = item.Count
	}
	return counts, nil
}

// Timestamps возвращает отметки времени всех инцидентов.
// Часовая гистограмма складывается в процессе, чтобы корзины считались
// по локальному времени сервера, а не по UTC хранилища
func (r *MongoIncidentRepository) Timestamps(ctx context.Context) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load incident timestamps: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Timestamp time.Time `bson:"timestamp"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode incident timestamps: %w", err)
	}

	timestamps := make([]time.Time, len(docs))
	for i, doc := range docs {
		timestamps[i] = doc.Timestamp
	}
	return timestamps, nil
}

// CountByLocation возвращает число инцидентов по локациям,
// отсортированное по убыванию
func (r *MongoIncidentRepository) CountByLocation(ctx context.Context) ([]models.LocationCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location_id"},
			{Key: "issueCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "issueCount", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate locations: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make([]models.LocationCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return counts, nil
}

// Available сообщает, что хранилище подключено
func (r *MongoIncidentRepository) Available() bool {
	return true
}
