package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"sistema-clinico/internal/config"
	"sistema-clinico/internal/model"
)

// Open connects to the configured storage backend. The returned handle owns
// the connection pool and is shared by every repository for the life of the
// process.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dial = postgres.Open(cfg.DSN)
	default:
		dial = sqlite.Open(cfg.Path)
	}

	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	gormDB, err := gorm.Open(dial, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return gormDB, nil
}

// Init brings the store to a usable state: ensures all tables exist and the
// default administrator account is present. Safe to run on every start.
func Init(gormDB *gorm.DB, adminPassword string) error {
	if err := model.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := SeedAdmin(gormDB, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
