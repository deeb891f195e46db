package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and passed down; no other package touches os.Getenv.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	TokenLifetime time.Duration
	TotalTables   int

	S3Bucket   string
	S3Region   string
	S3Key      string
	S3Secret   string
	S3Endpoint string
	S3URL      string
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8000"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", "food_booking"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenLifetime: 3 * 24 * time.Hour,
		TotalTables:   getEnvInt("TOTAL_TABLES", 6),

		S3Bucket:   getEnv("S3_BUCKET", ""),
		S3Region:   getEnv("S3_REGION", "us-east-1"),
		S3Key:      getEnv("S3_KEY", ""),
		S3Secret:   getEnv("S3_SECRET", ""),
		S3Endpoint: getEnv("S3_ENDPOINT", ""),
		S3URL:      getEnv("S3_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
