package main

import (
	"log"

	"samvidhan-be/internal/config"
	"samvidhan-be/internal/model"
	"samvidhan-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.Database.Debug)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	// gen_random_uuid() defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	if err := db.AutoMigrate(model.Schema()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 3: Seeding defaults...")
	if err := SeedAdmin(db, cfg.Auth.AdminDefaultUsername, cfg.Auth.AdminDefaultPassword); err != nil {
		log.Fatalf("Error: Failed to seed admin: %v", err)
	}
	if err := SeedAds(db); err != nil {
		log.Fatalf("Error: Failed to seed ads: %v", err)
	}
	if err := SeedNotificationTypes(db); err != nil {
		log.Fatalf("Error: Failed to seed notification types: %v", err)
	}

	log.Println("Success: Database migration completed.")
}
