package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sistema-clinico/internal/model"
)

type AppointmentRepository interface {
	// Create an appointment. Fails with ErrMissingFields before touching
	// storage when client, doctor, date or time is unset.
	Create(ctx context.Context, appt *model.Appointment) error
	Update(ctx context.Context, id uint, appt *model.Appointment) error
	// Delete an appointment; deleting an absent id is a no-op.
	Delete(ctx context.Context, id uint) error
	// GetByID returns the appointment joined with client and doctor names,
	// or ErrNotFound.
	GetByID(ctx context.Context, id uint) (*model.AppointmentDetail, error)

	// Past/today/future partitioning compares the stored date with the
	// engine's current date at call time. No ordering is guaranteed.
	ListPast(ctx context.Context) ([]model.AppointmentDetail, error)
	ListToday(ctx context.Context) ([]model.AppointmentDetail, error)
	ListFuture(ctx context.Context) ([]model.AppointmentDetail, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	if appt.ClientID == 0 || appt.DoctorID == 0 || appt.Date == "" || appt.Time == "" {
		return ErrMissingFields
	}
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormAppointmentRepository) Update(ctx context.Context, id uint, appt *model.Appointment) error {
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"client_id": appt.ClientID,
			"doctor_id": appt.DoctorID,
			"date":      appt.Date,
			"time":      appt.Time,
			"status":    appt.Status,
		}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uint) (*model.AppointmentDetail, error) {
	var d model.AppointmentDetail
	err := r.detailQuery(ctx).
		Where("appointments.id = ?", id).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *GormAppointmentRepository) ListPast(ctx context.Context) ([]model.AppointmentDetail, error) {
	return r.listByDate(ctx, "appointments.date < CURRENT_DATE")
}

func (r *GormAppointmentRepository) ListToday(ctx context.Context) ([]model.AppointmentDetail, error) {
	return r.listByDate(ctx, "appointments.date = CURRENT_DATE")
}

func (r *GormAppointmentRepository) ListFuture(ctx context.Context) ([]model.AppointmentDetail, error) {
	return r.listByDate(ctx, "appointments.date >= CURRENT_DATE")
}

func (r *GormAppointmentRepository) listByDate(ctx context.Context, cond string) ([]model.AppointmentDetail, error) {
	var out []model.AppointmentDetail
	if err := r.detailQuery(ctx).Where(cond).Find(&out).Error; err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

func (r *GormAppointmentRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Select("appointments.id, clients.name AS client_name, doctors.name AS doctor_name, appointments.date, appointments.time, appointments.status").
		Joins("INNER JOIN clients ON appointments.client_id = clients.id").
		Joins("INNER JOIN doctors ON appointments.doctor_id = doctors.id")
}
