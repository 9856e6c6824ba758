package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Version = 1

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// UpdateVersioned replaces the booking document guarded by its version counter.
func (r *MongoBookingRepo) UpdateVersioned(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prev := b.Version
	b.Version = prev + 1
	b.UpdatedAt = time.Now()

	filter := bson.M{"id": b.ID, "version": prev}
	result, err := r.coll.ReplaceOne(ctx, filter, b)
	if err != nil {
		b.Version = prev
		return fmt.Errorf("failed to update booking with id %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		b.Version = prev
		return ErrVersionConflict
	}
	return nil
}

// ListByUser retrieves a user's bookings, newest first, paginated.
func (r *MongoBookingRepo) ListByUser(userID string, page, limit int) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CountByUser returns the total number of bookings for a user.
func (r *MongoBookingRepo) CountByUser(userID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// CountByStatus aggregates booking counts grouped by status.
func (r *MongoBookingRepo) CountByStatus() (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking counts: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode count row: %w", err)
		}
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// TotalRevenue sums the paid amounts of completed payments.
func (r *MongoBookingRepo) TotalRevenue() (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "payment.status", Value: models.PaymentStatusCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$payment.paid_amount"}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var row struct {
		Revenue float64 `bson:"revenue"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return 0, fmt.Errorf("failed to decode revenue row: %w", err)
		}
	}
	return row.Revenue, nil
}
