package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	MongoURI            string
	MongoDBName         string
	MongoConnectTimeout time.Duration

	ProductsCollection string
	CartsCollection    string
	OrdersCollection   string

	RedisAddr     string
	RedisPassword string

	SecretKey string

	KafkaBroker      string
	KafkaOrdersTopic string

	// Static asset storage is handled outside this process; the bucket
	// coordinates are parsed here so one .env drives the whole deployment.
	AWSRegion string
	S3Bucket  string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads .env when present, then the environment, falling back to demo
// defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGO_DB_NAME", "shopdb"),
		MongoConnectTimeout: 10 * time.Second,
		ProductsCollection:  getEnv("PRODUCTS_COLLECTION", "products"),
		CartsCollection:     getEnv("CARTS_COLLECTION", "carts"),
		OrdersCollection:    getEnv("ORDERS_COLLECTION", "orders"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		SecretKey:           getEnv("SECRET_KEY", "dev-secret-key"),
		KafkaBroker:         getEnv("KAFKA_BROKER", ""),
		KafkaOrdersTopic:    getEnv("KAFKA_ORDERS_TOPIC", "order-created"),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:            getEnv("S3_BUCKET", "project0-static-assets"),
		RequestTimeout:      30 * time.Second,
		ShutdownTimeout:     10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
