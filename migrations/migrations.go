// Package migrations defines the schema waypoint reads from.
//
// The scheduling platform owns this schema in production.
// These migrations recreate the subset waypoint queries
// for development and tests.
package migrations

import (
	"github.com/xy-planning-network/waypoint/postgres"
	"gorm.io/gorm"
)

// All lists every Migration in the order they run.
var All = []postgres.Migration{
	{Key: "20240101000000_create_users", Executor: createUsers},
	{Key: "20240101000100_create_schedules", Executor: createSchedules},
	{Key: "20240101000200_create_availability", Executor: createAvailability},
	{Key: "20240101000300_create_credentials", Executor: createCredentials},
}

func createUsers(tx *gorm.DB) error {
	return tx.Exec(`
		CREATE TABLE users (
			id SERIAL PRIMARY KEY,
			username TEXT,
			email TEXT NOT NULL,
			name TEXT,
			"timeZone" TEXT NOT NULL DEFAULT 'Europe/London',
			"weekStart" TEXT NOT NULL DEFAULT 'Sunday',
			"timeFormat" INTEGER DEFAULT 12,
			"hideBranding" BOOLEAN NOT NULL DEFAULT false,
			CONSTRAINT users_email_key UNIQUE (email)
		)
	`).Error
}

func createSchedules(tx *gorm.DB) error {
	if err := tx.Exec(`
		CREATE TABLE "Schedule" (
			id SERIAL PRIMARY KEY,
			"userId" INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			"timeZone" TEXT
		)
	`).Error; err != nil {
		return err
	}

	return tx.Exec(`CREATE INDEX "Schedule_userId_idx" ON "Schedule" ("userId")`).Error
}

func createAvailability(tx *gorm.DB) error {
	if err := tx.Exec(`
		CREATE TABLE "Availability" (
			id SERIAL PRIMARY KEY,
			"userId" INTEGER REFERENCES users (id) ON DELETE CASCADE,
			"scheduleId" INTEGER REFERENCES "Schedule" (id) ON DELETE CASCADE,
			days INTEGER[] NOT NULL DEFAULT '{}',
			"startTime" TIME WITHOUT TIME ZONE NOT NULL,
			"endTime" TIME WITHOUT TIME ZONE NOT NULL,
			date DATE
		)
	`).Error; err != nil {
		return err
	}

	return tx.Exec(`CREATE INDEX "Availability_scheduleId_idx" ON "Availability" ("scheduleId")`).Error
}

func createCredentials(tx *gorm.DB) error {
	if err := tx.Exec(`
		CREATE TABLE "Credential" (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL,
			key JSONB NOT NULL DEFAULT '{}',
			"userId" INTEGER REFERENCES users (id) ON DELETE CASCADE,
			"teamId" INTEGER,
			"appId" TEXT,
			invalid BOOLEAN DEFAULT false
		)
	`).Error; err != nil {
		return err
	}

	if err := tx.Exec(`CREATE INDEX "Credential_userId_idx" ON "Credential" ("userId")`).Error; err != nil {
		return err
	}

	return tx.Exec(`CREATE INDEX "Credential_teamId_idx" ON "Credential" ("teamId")`).Error
}
