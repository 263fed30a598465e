package main

import (
	"log"

	"github.com/bellapacxx/lottery-backend/config"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required for migration")
	}
	db := config.SetupDatabase(cfg.DatabaseURL) // connects + migrates
	_ = db
	log.Println("✅ Database migration completed successfully")
}
