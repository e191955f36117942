package usecase

import (
	"io"
	"testing"

	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema.
// The pool is pinned to one connection so every query sees the same
// in-memory database.
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
		&entity.Specialty{},
		&entity.Doctor{},
		&entity.ServiceCategory{},
		&entity.Service{},
		&entity.Appointment{},
		&entity.Message{},
		&entity.Review{},
		&entity.Document{},
		&entity.AuditLog{},
	))
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuditService(log *logrus.Logger) service.AuditService {
	return service.NewAuditService(log, repository.NewAuditLogRepository())
}

// newTestNotifications builds a notification service with caching
// disabled (nil Redis client).
func newTestNotifications(db *gorm.DB, log *logrus.Logger) *service.NotificationService {
	return service.NewNotificationService(db, nil, log,
		repository.NewMessageRepository(), repository.NewAppointmentRepository())
}
