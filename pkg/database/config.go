package database

import "time"

// Config holds capture store connection settings.
type Config struct {
	// URL is a pgx-compatible connection string,
	// e.g. postgres://funnel:pw@localhost:5432/funnel?sslmode=disable
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig returns pool settings suitable for the capture write path,
// which is low-volume and append-only.
func DefaultConfig(url string) Config {
	return Config{
		URL:             url,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}
