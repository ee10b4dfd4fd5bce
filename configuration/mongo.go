package configuration

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo connects to the document store holding prescriptions and
// pings the primary before returning.
func ConnectMongo(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Println("Error from mongo connect: ", err)
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Error from mongo ping: ", err)
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Println("Connected to mongo")
	return client, nil
}
