package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByID(db *gorm.DB, id uint) (*entity.Review, error)
	// FindAll returns all reviews newest first (admin listing).
	FindAll(db *gorm.DB) ([]entity.Review, error)
	// FindApproved returns approved reviews newest first (public listing).
	FindApproved(db *gorm.DB) ([]entity.Review, error)
	Update(db *gorm.DB, review *entity.Review) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
