// Package postgrestest connects tests to a PostgreSQL database
// migrated with waypoint's schema.
//
// Tests depending on postgrestest skip when DATABASE_TEST_NAME is not set.
package postgrestest

import (
	"errors"
	"os"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/migrations"
	"github.com/xy-planning-network/waypoint/postgres"
)

const (
	dbTestHostEnvVar    = "DATABASE_TEST_HOST"
	dbTestNameEnvVar    = "DATABASE_TEST_NAME"
	dbTestPassEnvVar    = "DATABASE_TEST_PASSWORD"
	dbTestPortEnvVar    = "DATABASE_TEST_PORT"
	dbTestSSLModeEnvVar = "DATABASE_TEST_SSLMODE"
	dbTestURLEnvVar     = "DATABASE_TEST_URL"
	dbTestUserEnvVar    = "DATABASE_TEST_USER"
)

// ErrSkip signals no test database is configured.
var ErrSkip = errors.New("DATABASE_TEST_NAME not set")

// Config builds the *postgres.CxnConfig for the test database from DATABASE_TEST_* env vars.
func Config() *postgres.CxnConfig {
	return &postgres.CxnConfig{
		IsTestDB: true,
		URL:      os.Getenv(dbTestURLEnvVar),
		Host:     waypoint.EnvVarOrString(dbTestHostEnvVar, "localhost"),
		Name:     os.Getenv(dbTestNameEnvVar),
		Password: os.Getenv(dbTestPassEnvVar),
		Port:     waypoint.EnvVarOrString(dbTestPortEnvVar, "5432"),
		SSLMode:  waypoint.EnvVarOrString(dbTestSSLModeEnvVar, "disable"),
		User:     os.Getenv(dbTestUserEnvVar),
	}
}

// Connect resets the test database and migrates it.
//
// If no test database is configured, Connect returns ErrSkip.
func Connect() (*postgres.DB, error) {
	cfg := Config()
	if cfg.Name == "" && cfg.URL == "" {
		return nil, ErrSkip
	}

	return postgres.Connect(cfg, migrations.All, waypoint.Testing)
}

// Wipe truncates every table in the public schema.
func Wipe(db *postgres.DB) error {
	return postgres.WipeDB(db.DB(), "public")
}
