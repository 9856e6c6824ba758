package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"eventease/database"
	"eventease/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository defines data-access methods for notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string) ([]models.Notification, error)
	// MarkRead flags a notification as read, scoped to its owner.
	MarkRead(id, userID string) error
}

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	repo := &MongoNotificationRepo{coll: database.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notification indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's notifications, newest first.
func (r *MongoNotificationRepo) ListByUser(userID string) ([]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (r *MongoNotificationRepo) MarkRead(id, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "user_id": userID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}
