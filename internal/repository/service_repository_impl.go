package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Category").Create(service).Error
}

func (r *serviceRepository) FindByID(db *gorm.DB, id uint) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("Category").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindByCode(db *gorm.DB, code string) (*entity.Service, error) {
	var service entity.Service
	err := db.Where("service_code = ?", code).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindAllWithCategory(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Preload("Category").
		Order("service_category_id ASC, name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) error {
	return db.Omit("Category").Save(service).Error
}

func (r *serviceRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Service{})
	return affected.RowsAffected, affected.Error
}

func (r *serviceRepository) DeleteByCategoryID(db *gorm.DB, categoryID uint) (int64, error) {
	affected := db.Where("service_category_id = ?", categoryID).Delete(&entity.Service{})
	return affected.RowsAffected, affected.Error
}
