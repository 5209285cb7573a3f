package schedule

import (
	"testing"
	"time"

	"github.com/bemnascer/bemnascer-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&Schedule{},
	))
	return db
}

func newTestClient(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Username: email,
		Email:    email,
		Password: "x",
		Provider: "local",
		Role:     models.RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)

	client := models.Client{
		ID:                     uuid.New(),
		UserID:                 user.ID,
		Name:                   "Ana",
		ProbableDateOfDelivery: time.Now().UTC().AddDate(0, 0, 100),
	}
	require.NoError(t, db.Create(&client).Error)
	return &user
}

func TestCreateSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	entry, err := svc.Create(user.ID, CreateScheduleRequest{
		Date: "2026-10-01",
		Time: "09:30",
		Name: "Ultrassom morfológico",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:30", entry.Time)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestCreateScheduleSlotTaken(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	_, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Consulta"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different time on the same day is fine.
	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "10:30", Name: "Consulta"})
	assert.NoError(t, err)
}

func TestCreateScheduleSlotIsPerClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	ana := newTestClient(t, db, "ana@example.com")
	bia := newTestClient(t, db, "bia@example.com")

	_, err := svc.Create(ana.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)

	_, err = svc.Create(bia.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	assert.NoError(t, err)
}

func TestCreateScheduleValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	_, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "ab"})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "25:00", Name: "Consulta"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:75", Name: "Consulta"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "01/10/2026", Time: "09:30", Name: "Consulta"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateScheduleAcceptsSingleDigitHour(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	_, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "9:05", Name: "Consulta"})
	assert.NoError(t, err)
}

func TestGetDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	for _, req := range []CreateScheduleRequest{
		{Date: "2026-10-01", Time: "14:00", Name: "Consulta"},
		{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"},
		{Date: "2026-10-02", Time: "08:00", Name: "Exame"},
	} {
		_, err := svc.Create(user.ID, req)
		require.NoError(t, err)
	}

	entries, err := svc.GetDay(user.ID, "2026-10-01")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ultrassom", entries[0].Name)
	assert.Equal(t, "Consulta", entries[1].Name)

	empty, err := svc.GetDay(user.ID, "2026-10-03")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateScheduleExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	entry, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)

	// Updating without moving the slot does not conflict with itself.
	name := "Ultrassom morfológico"
	updated, err := svc.Update(user.ID, entry.ID, UpdateScheduleRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestUpdateScheduleSlotConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	_, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)
	entry, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "10:30", Name: "Consulta"})
	require.NoError(t, err)

	conflicting := "09:30"
	_, err = svc.Update(user.ID, entry.ID, UpdateScheduleRequest{Time: &conflicting})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateScheduleOtherClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	ana := newTestClient(t, db, "ana@example.com")
	bia := newTestClient(t, db, "bia@example.com")

	entry, err := svc.Create(ana.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)

	name := "Roubada"
	_, err = svc.Update(bia.ID, entry.ID, UpdateScheduleRequest{Name: &name})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDeleteSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	user := newTestClient(t, db, "ana@example.com")

	entry, err := svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Ultrassom"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, entry.ID))
	assert.ErrorIs(t, svc.Delete(user.ID, entry.ID), ErrScheduleNotFound)

	// The freed slot can be booked again.
	_, err = svc.Create(user.ID, CreateScheduleRequest{Date: "2026-10-01", Time: "09:30", Name: "Remarcada"})
	assert.NoError(t, err)
}
