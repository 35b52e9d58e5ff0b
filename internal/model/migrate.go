package model

import "gorm.io/gorm"

// AutoMigrate ensures all clinic tables exist. Safe to run on every start.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Client{},
		&Doctor{},
		&Appointment{},
	)
}
