package integration

import (
	"log"
	"os"
	"testing"

	"samvidhan-be/internal/model"
	"samvidhan-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
}

// openDB connects and migrates, or skips the test when no database is configured.
func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`)
	if err := db.AutoMigrate(model.Schema()...); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}
