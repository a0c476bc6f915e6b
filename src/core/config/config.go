package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func SetupEnv() {
	// Load environment variables from .env file. A missing file is fine:
	// deployments inject real environment variables instead.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
}

// Config returns the environment variable or defaults to empty string
func Config(key string) string {
	return os.Getenv(key)
}

// UploadDir returns the root directory for stored images.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// BackendURL returns the base URL used to build absolute image URLs.
func BackendURL() string {
	if url := os.Getenv("BACKEND_URL"); url != "" {
		return url
	}
	return "http://localhost:5000"
}

// IsProduction reports whether raw error strings should be hidden from
// API responses.
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}
