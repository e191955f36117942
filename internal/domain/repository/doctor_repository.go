package repository

import (
	"clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	// FindAll returns doctors with specialties preloaded, ordered by
	// last name then first name.
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uint) (int64, error)
	// ReplaceSpecialties overwrites the doctor's specialty set.
	ReplaceSpecialties(db *gorm.DB, doctor *entity.Doctor, specialties []entity.Specialty) error
	ClearSpecialties(db *gorm.DB, doctor *entity.Doctor) error
}
