package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-clinico/internal/model"
)

// Field format validation (phone, email syntax) is the front end's concern;
// this layer accepts any value and only enforces the schema constraints.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, id uint, client *model.Client) error
	// Delete a client; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Client, error)
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(ctx context.Context, client *model.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormClientRepository) Update(ctx context.Context, id uint, client *model.Client) error {
	err := r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       client.Name,
			"phone":      client.Phone,
			"address":    client.Address,
			"email":      client.Email,
			"birth_date": client.BirthDate,
		}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormClientRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Client{}, id).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, translateError(err)
	}
	return clients, nil
}
