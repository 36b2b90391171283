package database

import (
	"context"
	"log"
	"os"
	"time"

	// .env must be in the environment before Client is initialized below
	_ "github.com/Mehedihasan444/restuarent-management-server-side/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// creates and returns a MongoDB client instance.
func DBinstance() *mongo.Client {
	MongoDb := os.Getenv("MONGODB_URI")
	if MongoDb == "" {
		MongoDb = "mongodb://localhost:27017"
	}

	// Create a context with a timeout for connecting to MongoDB.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect the client to MongoDB. The driver dials lazily, so a missing
	// server surfaces on the first operation rather than here.
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoDb))
	if err != nil {
		log.Fatal(err)
	}
	return client // Return the MongoDB client.
}

var Client *mongo.Client = DBinstance()

// returns a reference to a MongoDB collection.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	var collection *mongo.Collection = client.Database("restaurantManagementDB").Collection(collectionName)

	return collection
}
