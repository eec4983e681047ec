package repository

import (
	"context"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationLogRepository implements NotificationLogRepository
type MongoNotificationLogRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationLogRepository creates a new notification log repository
func NewMongoNotificationLogRepository(db *mongo.Database) repository.NotificationLogRepository {
	collection := db.Collection("notification_log")

	// Index on taskId for per-task lookups
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"taskId": 1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoNotificationLogRepository{
		collection: collection,
	}
}

// Save archives one dispatched notification
func (r *MongoNotificationLogRepository) Save(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		notification.ID = primitive.NewObjectID().Hex()
	}
	if notification.DispatchedAt.IsZero() {
		notification.DispatchedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// FindByTaskID returns the most recent notifications for a task
func (r *MongoNotificationLogRepository) FindByTaskID(ctx context.Context, taskID uint, limit int) ([]*entity.Notification, error) {
	opts := options.Find().
		SetSort(bson.M{"dispatchedAt": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"taskId": taskID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
