package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port               string
	LogLevel           string
	StoreDriver        string
	DatabasePath       string
	NavigationRoute    string
	NavigateOnce       bool
	StrictSingleUpload bool
	MaxUploadBytes     int64
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	driver := getEnv("STORE_DRIVER", StoreDriverSQLite)
	if driver != StoreDriverMemory {
		driver = StoreDriverSQLite
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StoreDriver:        driver,
		DatabasePath:       getEnv("DATABASE_PATH", "./data/playlists.db"),
		NavigationRoute:    getEnv("NAVIGATION_ROUTE", "/iptv"),
		NavigateOnce:       getBool("NAVIGATE_ONCE", false),
		StrictSingleUpload: getBool("STRICT_SINGLE_UPLOAD", false),
		MaxUploadBytes:     maxUpload,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
