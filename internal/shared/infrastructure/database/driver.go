package database

import "strings"

// Driver identifies a database backend.
type Driver string

const (
	// DriverPostgres selects PostgreSQL storage.
	DriverPostgres Driver = "postgres"
	// DriverSQLite selects SQLite storage.
	DriverSQLite Driver = "sqlite"
)

// String returns the driver name.
func (d Driver) String() string {
	return string(d)
}

// IsValid reports whether the driver is a known backend.
func (d Driver) IsValid() bool {
	switch d {
	case DriverPostgres, DriverSQLite:
		return true
	default:
		return false
	}
}

// DetectDriver infers the driver from a connection string. An empty URL
// selects SQLite so the planner works with zero configuration.
func DetectDriver(url string) Driver {
	if url == "" {
		return DriverSQLite
	}

	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}

	if strings.HasPrefix(url, "sqlite://") ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db") ||
		strings.HasSuffix(url, ".sqlite") ||
		strings.HasSuffix(url, ".sqlite3") {
		return DriverSQLite
	}

	return DriverPostgres
}
