// database/migrate.go - Database Migration Runner
package database

import (
	"log"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(&ProfileRecord{}); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	// Roster reads come back in insertion order
	db.Exec("CREATE INDEX IF NOT EXISTS idx_profile_records_position ON profile_records(position)")

	log.Println("✅ Migrations completed")
}
