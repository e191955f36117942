package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceCategoryRepository interface {
	Create(db *gorm.DB, category *entity.ServiceCategory) error
	FindByID(db *gorm.DB, id uint) (*entity.ServiceCategory, error)
	FindByName(db *gorm.DB, name string) (*entity.ServiceCategory, error)
	// FindAll returns categories ordered by position, ties broken by name.
	FindAll(db *gorm.DB) ([]entity.ServiceCategory, error)
	// FindAllWithServices preloads each category's services ordered by name.
	FindAllWithServices(db *gorm.DB) ([]entity.ServiceCategory, error)
	// MaxPosition returns the highest assigned position, 0 when empty.
	MaxPosition(db *gorm.DB) (int, error)
	Update(db *gorm.DB, category *entity.ServiceCategory) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
