package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	// FindRecent returns the latest audit entries, newest first.
	FindRecent(db *gorm.DB, limit int) ([]entity.AuditLog, error)
}
