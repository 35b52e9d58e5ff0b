package repository

import (
	"context"

	"gorm.io/gorm"

	"sistema-clinico/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Update(ctx context.Context, id uint, doctor *model.Doctor) error
	// Delete a doctor; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Doctor, error)
}

type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormDoctorRepository) Update(ctx context.Context, id uint, doctor *model.Doctor) error {
	err := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  doctor.Name,
			"phone": doctor.Phone,
			"email": doctor.Email,
			"crm":   doctor.CRM,
		}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormDoctorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Doctor{}, id).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, translateError(err)
	}
	return doctors, nil
}
