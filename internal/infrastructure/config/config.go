// Package config loads runtime settings from the environment. A .env file
// in the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	ServiceName string
	HTTPPort    string
	GinMode     string

	JWTSecret string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string

	SimulationsTable string
	PoliciesTable    string
	DocumentsBucket  string
	PresignTTL       time.Duration

	RedisURL string

	EmailAPIURL      string
	EmailAPIKey      string
	EmailFrom        string
	NotificationMock bool

	LogLevel  string
	LogFormat string
	LogFile   string

	BrandsFile string
}

// FromEnv reads every setting, falling back to defaults suited to the local
// docker-compose stack (DynamoDB local, MinIO, Redis).
func FromEnv() Config {
	return Config{
		ServiceName: getenvDefault("SERVICE_NAME", "seguros-xpto-api"),
		HTTPPort:    getenvDefault("PORT", "8080"),
		GinMode:     getenvDefault("GIN_MODE", "debug"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),

		SimulationsTable: getenvDefault("SIMULATIONS_TABLE", "simulations"),
		PoliciesTable:    getenvDefault("POLICIES_TABLE", "policies"),
		DocumentsBucket:  getenvDefault("DOCUMENTS_BUCKET", "seguros-documents"),
		PresignTTL:       getenvDuration("DOCUMENT_LINK_TTL", 10*time.Minute),

		RedisURL: os.Getenv("REDIS_URL"),

		EmailAPIURL:      os.Getenv("EMAIL_API_URL"),
		EmailAPIKey:      os.Getenv("EMAIL_API_KEY"),
		EmailFrom:        getenvDefault("EMAIL_FROM", "no-reply@seguros-xpto.pt"),
		NotificationMock: getenvBool("NOTIFICATION_MOCK", true),

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),
		LogFile:   os.Getenv("LOG_FILE"),

		BrandsFile: os.Getenv("BRANDS_FILE"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
