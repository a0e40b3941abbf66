package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort          string
	Environment         string
	FirebaseProject     string
	FirebaseApiKey      string
	ListingImagesBucket string
	ProfileImagesBucket string
	MaxUploadSize       int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		FirebaseProject:     getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:      getEnv("FIREBASE_API_KEY", ""),
		ListingImagesBucket: getEnv("LISTING_IMAGES_BUCKET", "listing-images"),
		ProfileImagesBucket: getEnv("PROFILE_IMAGES_BUCKET", "profile-images"),
		MaxUploadSize:       getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024), // 5MB
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
