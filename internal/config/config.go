package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Session struct {
	CookieName      string
	TTL             time.Duration
	CleanupInterval time.Duration
	SecureCookie    bool
}

type RateLimit struct {
	RequestsPerMinute int
	Burst             int
}

// MinIO is optional; hero image uploads are enabled only when Endpoint is set.
type MinIO struct {
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	BucketName     string
	UseSSL         bool
	Region         string
}

func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type Config struct {
	ServerPort      int
	LogLevel        string
	LogPretty       bool
	ShutdownTimeout time.Duration
	Session         Session
	RateLimit       RateLimit
	MinIO           MinIO
	MaxUploadSize   int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	}
	return fallback
}

func LoadSession() Session {
	return Session{
		CookieName:      getEnv("SESSION_COOKIE_NAME", "gss_session"),
		TTL:             getEnvDuration("SESSION_TTL", 2*time.Hour),
		CleanupInterval: getEnvDuration("SESSION_CLEANUP_INTERVAL", 5*time.Minute),
		SecureCookie:    getEnvBool("SESSION_SECURE_COOKIE", false),
	}
}

func LoadRateLimit() RateLimit {
	return RateLimit{
		RequestsPerMinute: getEnvAsInt("SUBMIT_RATE_PER_MINUTE", 30),
		Burst:             getEnvAsInt("SUBMIT_BURST", 10),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:       getEnv("MINIO_ENDPOINT", ""),
		PublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", ""),
		AccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName:     getEnv("MINIO_BUCKET_NAME", "rides"),
		UseSSL:         getEnvBool("MINIO_USE_SSL", false),
		Region:         getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getEnvBool("LOG_PRETTY", true),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Session:         LoadSession(),
		RateLimit:       LoadRateLimit(),
		MinIO:           LoadMinIO(),
		MaxUploadSize:   parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}
