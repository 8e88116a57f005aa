package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded once at startup
type Config struct {
	Port      string
	Host      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	JWTExpiry time.Duration
	UploadDir string
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local runs need no exported variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Host:      getEnv("HOST", ""),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "campusmarket"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry: getDuration("JWT_EXPIRES", 7*24*time.Hour),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
