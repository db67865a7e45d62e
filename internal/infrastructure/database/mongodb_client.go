package database

import (
	"context"
	"log"
	"motorcar_consultancy/internal/infrastructure/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	defaultMongoDatabase = "motorcar_consultancy"
	mongoConnectTimeout  = 10 * time.Second
)

// ConnectMongoDB opens a client and resolves the database named by
// MONGODB_DATABASE, or else by the path of MONGODB_URI.
//
// Connecting does not require the server to be up; readiness is reported by
// the health check.
func ConnectMongoDB(ctx context.Context, cfg config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}

	name := MongoDatabaseName(cfg)
	log.Printf("[database][mongodb] client ready database=%s", name)
	return client, client.Database(name), nil
}

func MongoDatabaseName(cfg config.Config) string {
	if cfg.MongoDatabase != "" {
		return cfg.MongoDatabase
	}
	if cs, err := connstring.Parse(cfg.MongoURI); err == nil && cs.Database != "" {
		return cs.Database
	}
	return defaultMongoDatabase
}
