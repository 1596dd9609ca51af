package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds database connection settings.
type Config struct {
	// Driver selects the backend; empty or "auto" detects from URL.
	Driver Driver

	// URL is the PostgreSQL connection string.
	URL string

	// SQLitePath is the SQLite file path, defaulting to ~/.semestra/data.db.
	SQLitePath string

	// MaxConns limits pool size (PostgreSQL only).
	MaxConns int
}

// NewConnection opens a connection for the configured driver.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}

	switch driver {
	case DriverPostgres:
		return newPostgresConnection(ctx, cfg)
	case DriverSQLite:
		return newSQLiteConnection(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// DefaultSQLitePath returns the default SQLite database location.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".semestra", "data.db")
}

// EnsureDirectory creates the parent directory of path if needed.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// Driver factories are registered by the sqlite and postgres subpackages
// from their init functions, keeping driver imports out of this package.
var (
	newPostgresConnection func(ctx context.Context, cfg Config) (Connection, error)
	newSQLiteConnection   func(ctx context.Context, cfg Config) (Connection, error)
)

// RegisterPostgresDriver registers the PostgreSQL connection factory.
func RegisterPostgresDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newPostgresConnection = fn
}

// RegisterSQLiteDriver registers the SQLite connection factory.
func RegisterSQLiteDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newSQLiteConnection = fn
}
