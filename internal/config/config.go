package config

import (
	"os"
	"strconv"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URL               string
	Database          string
	ConnectTimeoutSec int
}

// MinIOConfig holds object storage settings for MinIO.
// The storage is optional here: when Endpoint is empty the resume endpoint
// serves static metadata only.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ResumeConfig describes the downloadable resume object.
type ResumeConfig struct {
	Filename  string
	ObjectKey string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Mongo   MongoConfig
	MinIO   MinIOConfig
	Resume  ResumeConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Mongo: MongoConfig{
			URL:               getEnv("MONGO_URL", ""),
			Database:          getEnv("DB_NAME", "portfolio"),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Resume: ResumeConfig{
			Filename:  getEnv("RESUME_FILENAME", "Keerthana_Madisetty_Resume.pdf"),
			ObjectKey: getEnv("RESUME_OBJECT_KEY", "resume/Keerthana_Madisetty_Resume.pdf"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
