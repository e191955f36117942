package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("service category not found")
	ErrCategoryNameExists = errors.New("service category name already exists")
	ErrInvalidPosition    = errors.New("position must be a non-negative integer")
)

type ServiceCategoryUsecase interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, categoryID uint) (*dto.CategoryResponse, error)
	GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	GetPriceList(ctx context.Context) (*dto.CategoryListResponse, error)
	UpdateCategory(ctx context.Context, categoryID uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID uint, actor string) error
}

type serviceCategoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.ServiceCategoryRepository
	serviceRepo  repository.ServiceRepository
	auditService service.AuditService
}

func NewServiceCategoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.ServiceCategoryRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) ServiceCategoryUsecase {
	return &serviceCategoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		auditService: auditService,
	}
}

// CreateCategory normalizes the position first, then validates, then
// persists. A zero or empty position is auto-assigned one past the
// current maximum; an explicit non-zero position is kept as-is.
func (u *serviceCategoryUsecase) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	db := u.db.WithContext(ctx)

	position, err := parsePosition(req.Position)
	if err != nil {
		return nil, err
	}
	if position == 0 {
		max, err := u.categoryRepo.MaxPosition(db)
		if err != nil {
			u.log.Warnf("Failed to compute max category position: %+v", err)
			return nil, err
		}
		position = max + 1
	}

	existing, err := u.categoryRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check category name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryNameExists
	}

	category := &entity.ServiceCategory{
		Name:     req.Name,
		Position: position,
	}
	if err := u.categoryRepo.Create(db, category); err != nil {
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}

func (u *serviceCategoryUsecase) GetCategory(ctx context.Context, categoryID uint) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return converter.CategoryToResponse(category), nil
}

func (u *serviceCategoryUsecase) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.categoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}
	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

// GetPriceList returns all categories with their services preloaded, in
// price list order (position, then name; services by name).
func (u *serviceCategoryUsecase) GetPriceList(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.categoryRepo.FindAllWithServices(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load price list: %+v", err)
		return nil, err
	}
	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
		Total:      len(categories),
	}, nil
}

func (u *serviceCategoryUsecase) UpdateCategory(ctx context.Context, categoryID uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	db := u.db.WithContext(ctx)

	category, err := u.categoryRepo.FindByID(db, categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	position, err := parsePosition(req.Position)
	if err != nil {
		return nil, err
	}

	existing, err := u.categoryRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check category name: %+v", err)
		return nil, err
	}
	if existing != nil && existing.ID != categoryID {
		return nil, ErrCategoryNameExists
	}

	category.Name = req.Name
	if position != 0 {
		category.Position = position
	}

	if err := u.categoryRepo.Update(db, category); err != nil {
		u.log.Warnf("Failed to update category: %+v", err)
		return nil, err
	}
	return converter.CategoryToResponse(category), nil
}

// DeleteCategory removes the category and cascades to its services.
func (u *serviceCategoryUsecase) DeleteCategory(ctx context.Context, categoryID uint, actor string) error {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), categoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := u.serviceRepo.DeleteByCategoryID(tx, categoryID); err != nil {
			return err
		}
		_, err := u.categoryRepo.Delete(tx, categoryID)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to delete category: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionCategoryDelete, "service_category", categoryID, entity.JSON{
		"name": category.Name,
	})
	return nil
}

// parsePosition coerces the form value to an integer. Empty means unset
// (zero); negative or non-numeric values are rejected.
func parsePosition(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	position, err := strconv.Atoi(raw)
	if err != nil || position < 0 {
		return 0, ErrInvalidPosition
	}
	return position, nil
}
