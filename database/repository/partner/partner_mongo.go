package partnerRepo

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

// ErrDuplicateApplication is returned when an application already exists
// for the email.
var ErrDuplicateApplication = errors.New("an application with this email already exists")

// PartnerRepository defines data-access methods for partner applications.
type PartnerRepository interface {
	Create(app *models.PartnerApplication) error
	// GetByID returns (nil, nil) when no application matches the id.
	GetByID(id string) (*models.PartnerApplication, error)
	List(status string) ([]models.PartnerApplication, error)
	SetStatus(id, status string) error
}

// MongoPartnerRepo implements PartnerRepository using MongoDB.
type MongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo creates a new instance of PartnerRepository using MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	repo := &MongoPartnerRepo{coll: database.Collection("partner_applications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create partner indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPartnerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// One application per email.
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new partner application document.
func (r *MongoPartnerRepo) Create(app *models.PartnerApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateApplication
		}
		return fmt.Errorf("failed to create partner application: %w", err)
	}
	return nil
}

// GetByID retrieves a partner application by its unique ID.
func (r *MongoPartnerRepo) GetByID(id string) (*models.PartnerApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.PartnerApplication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch partner application with id %s: %w", id, err)
	}
	return &app, nil
}

// List retrieves partner applications, optionally filtered by status.
func (r *MongoPartnerRepo) List(status string) ([]models.PartnerApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve partner applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.PartnerApplication
	for cursor.Next(ctx) {
		var app models.PartnerApplication
		if err := cursor.Decode(&app); err != nil {
			return nil, fmt.Errorf("failed to decode partner application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// SetStatus updates the status of a partner application.
func (r *MongoPartnerRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update partner application status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner application with id %s not found", id)
	}
	return nil
}
