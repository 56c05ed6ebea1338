package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

// Logical collection names. "prices" is created for forward compatibility
// with the market-price feature and has no handler yet.
const (
	UsersCollection           = "users"
	RecommendationsCollection = "recommendations"
	ArticlesCollection        = "articles"
	TechniquesCollection      = "techniques"
	PricesCollection          = "prices"
	ContactsCollection        = "contacts"
)

// Connect establishes the MongoDB connection. A failure here is not fatal for
// the process: callers are expected to log it and continue with the in-memory
// fallback stores, so every collection accessor tolerates a nil DB.
func Connect(mongoURI, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	log.Printf("Attempting to connect to MongoDB...")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	// Ping the database with a separate context
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	err = client.Ping(pingCtx, nil)
	if err != nil {
		client.Disconnect(context.Background())
		return err
	}

	Client = client

	// Prefer the database name embedded in the URI, fall back to dbName
	// Format: mongodb://.../database_name?...
	name := dbName
	if mongoURI != "" {
		parts := strings.Split(mongoURI, "/")
		if len(parts) > 3 {
			dbPart := strings.Split(parts[len(parts)-1], "?")[0]
			if dbPart != "" {
				name = dbPart
			}
		}
	}

	DB = client.Database(name)

	log.Println("✅ Connected to MongoDB")
	return nil
}

// Available reports whether the MongoDB connection was established.
func Available() bool {
	return DB != nil
}

// Collection returns the named collection, or nil when Mongo is unavailable.
func Collection(name string) *mongo.Collection {
	if DB == nil {
		return nil
	}
	return DB.Collection(name)
}

func Disconnect() error {
	if Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return Client.Disconnect(ctx)
}
