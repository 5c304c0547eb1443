package mongodb

import (
	"context"
	"fmt"

	"github.com/shenikar/campus_cleanliness_system/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoClient создает клиент MongoDB и выполняет единственную проверку соединения.
// Повторных попыток нет: если ping не прошел, вызывающая сторона переходит
// в деградированный режим на все время жизни процесса.
func NewMongoClient(ctx context.Context, appCfg *config.Config) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, appCfg.MongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент mongodb: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("не удалось выполнить ping к mongodb: %w", err)
	}

	return client, nil
}
