package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is the generic document store client: single-key get/put/delete
// and full-collection scans against named collections. Put is a full
// replace upsert, last writer wins; there is no version token and no
// partial update.
//
// Store I/O failures surface as ErrUnavailable. A circuit breaker sits in
// front of every call; an open breaker reports the same way.
type Client struct {
	db *mongo.Database
	cb *gobreaker.CircuitBreaker[any]
}

func NewClient(db *mongo.Database) *Client {
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "document-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// A miss is an answer, not a store failure.
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})
	return &Client{db: db, cb: cb}
}

func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	_, err := c.cb.Execute(func() (any, error) {
		err := c.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
		}
		return nil, nil
	})
	return c.classify(err)
}

func (c *Client) Put(ctx context.Context, collection, id string, doc any) error {
	_, err := c.cb.Execute(func() (any, error) {
		opts := options.Replace().SetUpsert(true)
		_, err := c.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
		if err != nil {
			return nil, fmt.Errorf("put %s/%s: %w", collection, id, err)
		}
		return nil, nil
	})
	return c.classify(err)
}

// Delete removes a document. Deleting an absent document is a silent
// success.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.cb.Execute(func() (any, error) {
		_, err := c.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return nil, fmt.Errorf("delete %s/%s: %w", collection, id, err)
		}
		return nil, nil
	})
	return c.classify(err)
}

// Scan reads the full collection into out (a pointer to a slice). No
// pagination, no consistency guarantee across concurrent writers.
func (c *Client) Scan(ctx context.Context, collection string, out any) error {
	_, err := c.cb.Execute(func() (any, error) {
		cursor, err := c.db.Collection(collection).Find(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		if err := cursor.All(ctx, out); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		return nil, nil
	})
	return c.classify(err)
}

func (c *Client) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: circuit open", ErrUnavailable)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
