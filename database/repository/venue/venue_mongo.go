package venueRepo

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

// VenueRepository defines data-access methods for venues.
type VenueRepository interface {
	Create(v *models.Venue) error
	Update(v *models.Venue) error
	// GetByID returns (nil, nil) when no venue matches the id.
	GetByID(id string) (*models.Venue, error)
	List(city, category string, page, limit int) ([]models.Venue, error)
	SetRating(id string, rating float64, reviewCount int) error
	Count() (int64, error)
}

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of VenueRepository using MongoDB.
func NewMongoVenueRepo() VenueRepository {
	repo := &MongoVenueRepo{coll: database.Collection("venues")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create venue indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVenueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "category", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new venue document.
func (r *MongoVenueRepo) Create(v *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// Update modifies an existing venue document.
func (r *MongoVenueRepo) Update(v *models.Venue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	v.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": v.ID}, bson.M{"$set": v})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", v.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", v.ID)
	}
	return nil
}

// GetByID retrieves a venue by its unique ID.
func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var v models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &v, nil
}

// List retrieves active venues with optional city/category filters, paginated.
func (r *MongoVenueRepo) List(city, category string, page, limit int) ([]models.Venue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := bson.M{"active": true}
	if city != "" {
		filter["city"] = city
	}
	if category != "" && category != "all" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// SetRating stores the recomputed rating aggregate for a venue.
func (r *MongoVenueRepo) SetRating(id string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update venue rating: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", id)
	}
	return nil
}

// Count returns the total number of venues.
func (r *MongoVenueRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}
