package database

import (
	"context"
	"log"
	"sync"
	"time"

	"eventease/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client *mongo.Client
	mu     sync.Mutex
)

// InitDB establishes the MongoDB connection. It is safe to call more than
// once; subsequent calls are no-ops.
func InitDB() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	client = c
	log.Println("Connected to MongoDB successfully!")
}

// Client returns the shared MongoDB client, connecting lazily if needed.
func Client() *mongo.Client {
	mu.Lock()
	c := client
	mu.Unlock()
	if c == nil {
		InitDB()
		return Client()
	}
	return c
}

// SetClient replaces the shared client. Tests use this to inject a double.
func SetClient(c *mongo.Client) {
	mu.Lock()
	defer mu.Unlock()
	client = c
}

// Close disconnects the shared client on process shutdown.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("failed to disconnect MongoDB: %v", err)
	}
	client = nil
}

// Collection is a convenience accessor for a collection in the app database.
func Collection(name string) *mongo.Collection {
	return Client().Database(config.AppConfig.DatabaseName).Collection(name)
}
