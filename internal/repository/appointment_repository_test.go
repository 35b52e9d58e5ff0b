package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sistema-clinico/internal/model"
)

func seedClientAndDoctor(t *testing.T, gormDB *gorm.DB) (uint, uint) {
	t.Helper()
	ctx := context.Background()

	c := &model.Client{Name: "José Santos"}
	require.NoError(t, NewGormClientRepository(gormDB).Create(ctx, c))

	d := &model.Doctor{Name: "Dra. Ana Lima", CRM: "CRM-1234"}
	require.NoError(t, NewGormDoctorRepository(gormDB).Create(ctx, d))

	return c.ID, d.ID
}

func TestAppointmentCreateMissingFields(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewGormAppointmentRepository(gormDB)
	ctx := context.Background()

	for _, appt := range []*model.Appointment{
		{DoctorID: 1, Date: "2024-06-01", Time: "09:00", Status: model.StatusScheduled},
		{ClientID: 1, Date: "2024-06-01", Time: "09:00", Status: model.StatusScheduled},
		{ClientID: 1, DoctorID: 1, Time: "09:00", Status: model.StatusScheduled},
		{ClientID: 1, DoctorID: 1, Date: "2024-06-01", Status: model.StatusScheduled},
	} {
		require.ErrorIs(t, repo.Create(ctx, appt), ErrMissingFields)
	}

	var count int64
	gormDB.Model(&model.Appointment{}).Count(&count)
	assert.Zero(t, count)
}

func TestAppointmentRoundTrip(t *testing.T) {
	gormDB := newTestDB(t)
	clientID, doctorID := seedClientAndDoctor(t, gormDB)
	repo := NewGormAppointmentRepository(gormDB)
	ctx := context.Background()

	appt := &model.Appointment{
		ClientID: clientID,
		DoctorID: doctorID,
		Date:     "2024-06-01",
		Time:     "09:00",
		Status:   model.StatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, appt))

	got, err := repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "José Santos", got.ClientName)
	assert.Equal(t, "Dra. Ana Lima", got.DoctorName)
	assert.Equal(t, "2024-06-01", got.Date)
	assert.Equal(t, "09:00", got.Time)
	assert.Equal(t, model.StatusScheduled, got.Status)
}

func TestAppointmentGetByIDNotFound(t *testing.T) {
	repo := NewGormAppointmentRepository(newTestDB(t))
	_, err := repo.GetByID(context.Background(), 123)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentUpdate(t *testing.T) {
	gormDB := newTestDB(t)
	clientID, doctorID := seedClientAndDoctor(t, gormDB)
	repo := NewGormAppointmentRepository(gormDB)
	ctx := context.Background()

	appt := &model.Appointment{
		ClientID: clientID, DoctorID: doctorID,
		Date: "2024-06-01", Time: "09:00", Status: model.StatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, appt))

	require.NoError(t, repo.Update(ctx, appt.ID, &model.Appointment{
		ClientID: clientID, DoctorID: doctorID,
		Date: "2024-06-02", Time: "10:30", Status: model.StatusCompleted,
	}))

	got, err := repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", got.Date)
	assert.Equal(t, "10:30", got.Time)
	assert.Equal(t, model.StatusCompleted, got.Status)
}

// The partitioning queries compare against the engine's current date, which
// sqlite evaluates in UTC.
func TestAppointmentDateBuckets(t *testing.T) {
	gormDB := newTestDB(t)
	clientID, doctorID := seedClientAndDoctor(t, gormDB)
	repo := NewGormAppointmentRepository(gormDB)
	ctx := context.Background()

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	for _, date := range []string{yesterday, today, tomorrow} {
		require.NoError(t, repo.Create(ctx, &model.Appointment{
			ClientID: clientID, DoctorID: doctorID,
			Date: date, Time: "09:00", Status: model.StatusScheduled,
		}))
	}

	past, err := repo.ListPast(ctx)
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, yesterday, past[0].Date)

	todays, err := repo.ListToday(ctx)
	require.NoError(t, err)
	require.Len(t, todays, 1)
	assert.Equal(t, today, todays[0].Date)

	// future is "today or later"
	future, err := repo.ListFuture(ctx)
	require.NoError(t, err)
	require.Len(t, future, 2)
	for _, d := range future {
		assert.GreaterOrEqual(t, d.Date, today)
	}
}

func TestAppointmentDeleteIdempotent(t *testing.T) {
	gormDB := newTestDB(t)
	clientID, doctorID := seedClientAndDoctor(t, gormDB)
	repo := NewGormAppointmentRepository(gormDB)
	ctx := context.Background()

	appt := &model.Appointment{
		ClientID: clientID, DoctorID: doctorID,
		Date: "2024-06-01", Time: "09:00", Status: model.StatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, appt))

	require.NoError(t, repo.Delete(ctx, appt.ID))
	require.NoError(t, repo.Delete(ctx, appt.ID))

	var count int64
	gormDB.Model(&model.Appointment{}).Count(&count)
	assert.Zero(t, count)
}
