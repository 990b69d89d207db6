package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the mongo client from MONGODB_URL. Called once from main
// after the .env is loaded.
func Connect() *mongo.Client {
	mongoURL := os.Getenv("MONGODB_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func databaseName() string {
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "restaurant"
	}
	return name
}

// OpenCollection returns a handle on one of the app's collections.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(databaseName()).Collection(collectionName)
}
