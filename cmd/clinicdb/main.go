// clinicdb prepares the clinic store: it creates the schema if absent and
// seeds the default administrator account. The desktop front end runs it on
// every start before opening the login window.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"sistema-clinico/internal/config"
	"sistema-clinico/internal/db"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	if err := db.Init(gormDB, cfg.AdminPassword); err != nil {
		log.Fatalf("init store: %v", err)
	}

	log.Printf("store ready (driver=%s)", cfg.Driver)
}
