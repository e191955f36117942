package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id uint) (*entity.Specialty, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialty, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.Specialty, error)
	// FindAll returns specialties ordered by name.
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	Delete(db *gorm.DB, id uint) (int64, error)
	// CountDoctors counts doctors associated with the specialty.
	CountDoctors(db *gorm.DB, specialtyID uint) (int64, error)
}
