package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eugenyefimov/go-shop/internal/cart"
	"github.com/eugenyefimov/go-shop/internal/catalog"
	"github.com/eugenyefimov/go-shop/internal/config"
	"github.com/eugenyefimov/go-shop/internal/httpapi"
	"github.com/eugenyefimov/go-shop/internal/order"
	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/eugenyefimov/go-shop/internal/store"
	"github.com/eugenyefimov/go-shop/internal/user"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	mongoDB, err := store.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	client := store.NewClient(mongoDB)
	products := store.NewProducts(client, cfg.ProductsCollection)
	carts := store.NewCarts(client, cfg.CartsCollection)
	orders := store.NewOrders(client, cfg.OrdersCollection)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	var publisher order.Publisher
	if cfg.KafkaBroker != "" {
		kafkaPublisher := order.NewKafkaPublisher(cfg.KafkaOrdersTopic, cfg.KafkaBroker)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing order events to %s on %s", cfg.KafkaOrdersTopic, cfg.KafkaBroker)
	}

	catalogService := catalog.NewService(products, catalog.NewRedisCache(redisClient))
	// Cart and checkout resolve products against the store, not the cache:
	// a product deleted out of band must drop out of carts and order
	// snapshots immediately, not at cache expiry.
	cartService := cart.NewService(carts, products)
	orderService := order.NewService(carts, orders, products, publisher)
	userService := user.NewService()

	sessions := session.NewRedisStore(redisClient)
	codec := session.NewCodec(cfg.SecretKey)

	router := httpapi.NewRouter(
		catalogService,
		cartService,
		orderService,
		userService,
		sessions,
		codec,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Shop server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	log.Println("server exited")
}
