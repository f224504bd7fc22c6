package main

import (
	"context"
	"log"

	"github.com/eugenyefimov/go-shop/internal/config"
	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/store"
)

// Products are created out of band; this loads a demo catalog for local
// development.
func main() {
	cfg := config.Load()

	ctx := context.Background()
	mongoDB, err := store.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(ctx)

	products := store.NewProducts(store.NewClient(mongoDB), cfg.ProductsCollection)

	demo := []domain.Product{
		{ID: "1", Name: "Product 1", Description: "This is product 1", Price: "19.99", Stock: 10},
		{ID: "2", Name: "Product 2", Description: "This is product 2", Price: "29.99", Stock: 5},
		{ID: "3", Name: "Product 3", Description: "This is product 3", Price: "9.99", Stock: 25},
		{ID: "4", Name: "Product 4", Description: "This is product 4", Price: "49.99", Stock: 3},
	}

	for i := range demo {
		if err := products.Put(ctx, &demo[i]); err != nil {
			log.Fatalf("seed product %s: %v", demo[i].ID, err)
		}
		log.Printf("seeded product %s (%s)", demo[i].ID, demo[i].Name)
	}

	log.Printf("seeded %d products into %s", len(demo), cfg.ProductsCollection)
}
