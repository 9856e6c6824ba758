package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventease/database"
	"eventease/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateReview is returned when a user already reviewed the venue.
var ErrDuplicateReview = errors.New("user has already reviewed this venue")

// ReviewRepository defines data-access methods for reviews.
type ReviewRepository interface {
	Create(rev *models.Review) error
	ListByVenue(venueID string) ([]models.Review, error)
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// One review per user per venue.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "venue_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(rev *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rev.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, rev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListByVenue retrieves all reviews for a venue, newest first.
func (r *MongoReviewRepo) ListByVenue(venueID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"venue_id": venueID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
