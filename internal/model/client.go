package model

import "gorm.io/datatypes"

// clients (patients)
type Client struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Phone   string
	Address string
	// Nullable so that clients without an email never collide on the
	// unique index.
	Email     *string `gorm:"uniqueIndex"`
	BirthDate *datatypes.Date
}
