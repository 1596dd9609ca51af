package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string

	// Planning
	TermName   string
	CourseFile string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("SQLITE_PATH", ""),
		TermName:       getEnv("TERM_NAME", "default"),
		CourseFile:     getEnv("COURSE_FILE", defaultCourseFile()),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultCourseFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".semestra", "courses.txt")
	}
	return filepath.Join(home, ".semestra", "courses.txt")
}
