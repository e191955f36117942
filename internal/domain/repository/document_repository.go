package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, document *entity.Document) error
	FindByID(db *gorm.DB, id uint) (*entity.Document, error)
	// FindAll returns all documents ordered by position then newest first.
	FindAll(db *gorm.DB) ([]entity.Document, error)
	// FindActive returns only active documents in the same order.
	FindActive(db *gorm.DB) ([]entity.Document, error)
	Update(db *gorm.DB, document *entity.Document) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
