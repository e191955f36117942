package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByID(db *gorm.DB, id uint) (*entity.Message, error)
	// FindAll returns messages newest first.
	FindAll(db *gorm.DB) ([]entity.Message, error)
	Update(db *gorm.DB, message *entity.Message) error
	Delete(db *gorm.DB, id uint) (int64, error)
	CountByStatus(db *gorm.DB, status entity.MessageStatus) (int64, error)
}
