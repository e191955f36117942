package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uint) (*entity.Service, error)
	FindByCode(db *gorm.DB, code string) (*entity.Service, error)
	// FindAllWithCategory returns services with their category preloaded,
	// ordered by category id then name.
	FindAllWithCategory(db *gorm.DB) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, id uint) (int64, error)
	DeleteByCategoryID(db *gorm.DB, categoryID uint) (int64, error)
}
