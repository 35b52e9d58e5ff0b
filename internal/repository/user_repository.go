package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-clinico/internal/auth"
	"sistema-clinico/internal/model"
)

type UserRepository interface {
	// Create a user account; the plaintext password is hashed before storage.
	Create(ctx context.Context, user *model.User, password string) error
	// Authenticate by username or email. Every failure mode returns
	// ErrInvalidCredentials so callers cannot probe for account existence.
	Authenticate(ctx context.Context, identifier, password string) (model.Role, error)
	// List all users, password excluded.
	List(ctx context.Context) ([]model.User, error)
	// Update a user profile; the supplied password is always re-hashed.
	Update(ctx context.Context, id uint, user *model.User, password string) error
	// Delete a user; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *model.User, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash
	if user.Role == "" {
		user.Role = model.RoleStandard
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormUserRepository) Authenticate(ctx context.Context, identifier, password string) (model.Role, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&u).Error
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return u.Role, nil
}

func (r *GormUserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "username", "email", "role").
		Find(&users).Error
	if err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func (r *GormUserRepository) Update(ctx context.Context, id uint, user *model.User, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":     user.Name,
			"username": user.Username,
			"password": hash,
			"email":    user.Email,
			"role":     user.Role,
		}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.User{}, id).Error; err != nil {
		return translateError(err)
	}
	return nil
}
