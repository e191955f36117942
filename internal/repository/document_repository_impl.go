package repository

import (
	"errors"

	"clinic-backend/internal/domain/entity"
	domainRepo "clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, document *entity.Document) error {
	return db.Create(document).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id uint) (*entity.Document, error) {
	var document entity.Document
	err := db.Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindAll(db *gorm.DB) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Order("position ASC, created_at DESC").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) FindActive(db *gorm.DB) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Where("active = ?", true).Order("position ASC, created_at DESC").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) Update(db *gorm.DB, document *entity.Document) error {
	return db.Save(document).Error
}

func (r *documentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Document{})
	return affected.RowsAffected, affected.Error
}
