package service

import (
	"context"
	"io"
	"testing"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	require.NoError(t, db.AutoMigrate(&entity.Message{}, &entity.Appointment{}))
	return db
}

func TestNotificationCountsWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewNotificationService(db, nil, log,
		repository.NewMessageRepository(), repository.NewAppointmentRepository())

	messages := []entity.Message{
		{Name: "А", Phone: "1", Email: "a@a", Subject: "s", Message: "m", Status: entity.MessageStatusNew},
		{Name: "Б", Phone: "2", Email: "b@b", Subject: "s", Message: "m", Status: entity.MessageStatusNew},
		{Name: "В", Phone: "3", Email: "c@c", Subject: "s", Message: "m", Status: entity.MessageStatusRead},
	}
	for i := range messages {
		require.NoError(t, db.Create(&messages[i]).Error)
	}

	appointments := []entity.Appointment{
		{PatientName: "П1", Phone: "1", Email: "a@a", Status: entity.AppointmentStatusNew},
		{PatientName: "П2", Phone: "2", Email: "b@b", Status: entity.AppointmentStatusConfirmed},
	}
	for i := range appointments {
		require.NoError(t, db.Create(&appointments[i]).Error)
	}

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.UnreadMessages)
	assert.Equal(t, int64(1), counts.NewAppointments)
	assert.Equal(t, int64(3), counts.Total)
	assert.NotZero(t, counts.UpdatedAt)
}

func TestNotificationInvalidateWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewNotificationService(db, nil, log,
		repository.NewMessageRepository(), repository.NewAppointmentRepository())

	// Must be a no-op without a cache behind it.
	svc.Invalidate(context.Background())

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Total)
}
