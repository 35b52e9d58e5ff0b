package db

import (
	"errors"

	"gorm.io/gorm"

	"sistema-clinico/internal/auth"
	"sistema-clinico/internal/model"
)

// The seed administrator account. The front end expects this login to exist
// on a fresh install.
const (
	seedAdminName     = "Administrador"
	seedAdminUsername = "admin"
	seedAdminEmail    = "null@email.com"
)

// SeedAdmin inserts the default administrator unless a user with the seed
// username already exists. An existing row is never overwritten.
func SeedAdmin(gormDB *gorm.DB, password string) error {
	var existing model.User
	err := gormDB.Where("username = ?", seedAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return gormDB.Create(&model.User{
		Name:     seedAdminName,
		Username: seedAdminUsername,
		Password: hash,
		Email:    seedAdminEmail,
		Role:     model.RoleAdmin,
	}).Error
}
