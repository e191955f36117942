package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceCategoryRepository struct{}

func NewServiceCategoryRepository() domainRepo.ServiceCategoryRepository {
	return &serviceCategoryRepository{}
}

func (r *serviceCategoryRepository) Create(db *gorm.DB, category *entity.ServiceCategory) error {
	return db.Create(category).Error
}

func (r *serviceCategoryRepository) FindByID(db *gorm.DB, id uint) (*entity.ServiceCategory, error) {
	var category entity.ServiceCategory
	err := db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *serviceCategoryRepository) FindByName(db *gorm.DB, name string) (*entity.ServiceCategory, error) {
	var category entity.ServiceCategory
	err := db.Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *serviceCategoryRepository) FindAll(db *gorm.DB) ([]entity.ServiceCategory, error) {
	var categories []entity.ServiceCategory
	err := db.Order("position ASC, name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *serviceCategoryRepository) FindAllWithServices(db *gorm.DB) ([]entity.ServiceCategory, error) {
	var categories []entity.ServiceCategory
	err := db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.name ASC")
		}).
		Order("position ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *serviceCategoryRepository) MaxPosition(db *gorm.DB) (int, error) {
	var max int
	err := db.Model(&entity.ServiceCategory{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

func (r *serviceCategoryRepository) Update(db *gorm.DB, category *entity.ServiceCategory) error {
	return db.Omit("Services").Save(category).Error
}

func (r *serviceCategoryRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceCategory{})
	return affected.RowsAffected, affected.Error
}
