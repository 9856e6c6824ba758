package contactRepo

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

// ContactRepository defines data-access methods for contact messages.
type ContactRepository interface {
	Create(c *models.Contact) error
	List() ([]models.Contact, error)
}

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &MongoContactRepo{coll: database.Collection("contacts")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new contact message.
func (r *MongoContactRepo) Create(c *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List retrieves all contact messages, newest first.
func (r *MongoContactRepo) List() ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	for cursor.Next(ctx) {
		var c models.Contact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode contact message: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
