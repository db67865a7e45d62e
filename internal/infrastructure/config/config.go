package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverMongoDB  = "mongodb"
)

// Config holds runtime configuration read from the environment (and a .env
// file, loaded by main through godotenv).
type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	StorageDriver string

	MongoURI      string
	MongoDatabase string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoEndpoint     string

	OrdersTable     string
	SelectionsTable string
	ContactTable    string
}

func Load() Config {
	cfg := Config{
		Port:            getenvDefault("PORT", "3000"),
		ShutdownTimeout: getenvSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     splitList(os.Getenv("CORS_ALLOW_ORIGINS")),

		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", DriverDynamoDB)),

		MongoURI:      getenvDefault("MONGODB_URI", "mongodb://localhost:27017/motorcar_consultancy"),
		MongoDatabase: os.Getenv("MONGODB_DATABASE"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),

		OrdersTable:     getenvDefault("CONSULTATION_REQUESTS_TABLE", "consultation_requests"),
		SelectionsTable: getenvDefault("SERVICE_SELECTIONS_TABLE", "service_selections"),
		ContactTable:    getenvDefault("CONTACT_SUBMISSIONS_TABLE", "contact_submissions"),
	}
	log.Printf("[config] PORT=%s STORAGE_DRIVER=%s", cfg.Port, cfg.StorageDriver)
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
