package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongoDB dials the document store and verifies it answers within
// connectTimeout before any collection is touched.
func ConnectMongoDB(ctx context.Context, uri, database string, connectTimeout time.Duration) (*mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(connectTimeout).
		SetMaxPoolSize(64).
		SetMinPoolSize(4)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return client.Database(database), nil
}
