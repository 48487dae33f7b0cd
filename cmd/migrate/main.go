package main

import (
	"log"
	"os"

	"ai-counseling-be/internal/model"
	"ai-counseling-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Analytics GORM Migration...")

	// 3. Pre-Migration: Extensions (AutoMigrate doesn't manage these)
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warning: setup statement failed (may already exist): %v", err)
		}
	}

	// 4. AutoMigrate analytics tables
	if err := db.AutoMigrate(
		&model.UserAnalysis{},
		&model.AIResponse{},
	); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Indexes for the analytics dashboard queries
	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_user_analyses_session ON user_analyses (session_id);`,
		`CREATE INDEX IF NOT EXISTS idx_user_analyses_user ON user_analyses (user_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_ai_responses_session ON ai_responses (session_id);`,
	}
	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warning: index statement failed: %v", err)
		}
	}

	log.Println("✅ Migration complete")
}
