package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/servicecode"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrNegativePrice        = errors.New("price must be greater than or equal to 0")
	ErrInvalidServiceCode   = errors.New("service code format is invalid")
	ErrServiceCodeExists    = errors.New("service code already exists")
	ErrServiceCodeExhausted = errors.New("could not generate a unique service code")
)

// codeGenerationAttempts bounds the retry loop when a generated code
// collides with an existing one.
const codeGenerationAttempts = 10

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, serviceID uint) (*dto.ServiceResponse, error)
	Search(ctx context.Context, req *dto.ServiceSearchRequest) (*dto.ServiceSearchResponse, error)
	UpdateService(ctx context.Context, serviceID uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID uint, actor string) error
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.ServiceCategoryRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.ServiceCategoryRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		auditService: auditService,
	}
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	category, err := u.categoryRepo.FindByID(db, req.ServiceCategoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	code, err := u.normalizeServiceCode(db, req.ServiceCode, category.Name, req.Name, 0)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := &entity.Service{
		ServiceCategoryID: req.ServiceCategoryID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DurationMinutes:   req.DurationMinutes,
		ServiceCode:       code,
		Active:            active,
	}
	if err := u.serviceRepo.Create(db, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	svc.Category = *category
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetService(ctx context.Context, serviceID uint) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return converter.ServiceToResponse(svc), nil
}

// Search filters the price list by a free text query over name,
// description, category name and service code, and by an exact category
// id. Results are grouped by category in price list order.
func (u *serviceUsecase) Search(ctx context.Context, req *dto.ServiceSearchRequest) (*dto.ServiceSearchResponse, error) {
	services, err := u.serviceRepo.FindAllWithCategory(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load services for search: %+v", err)
		return nil, err
	}

	filter := entity.ServiceSearchFilter{
		Query:      req.Query,
		CategoryID: strings.TrimSpace(req.CategoryID),
	}

	// Group matches by category while preserving the repository's order
	// both across groups and within each group.
	groupIndex := make(map[uint]int)
	groups := make([]dto.ServiceGroupResponse, 0)
	count := 0

	for i := range services {
		svc := &services[i]
		if !filter.Matches(svc) {
			continue
		}
		idx, ok := groupIndex[svc.ServiceCategoryID]
		if !ok {
			idx = len(groups)
			groupIndex[svc.ServiceCategoryID] = idx
			groups = append(groups, dto.ServiceGroupResponse{
				Category: *converter.CategoryToResponse(&svc.Category),
			})
		}
		groups[idx].Services = append(groups[idx].Services, *converter.ServiceToResponse(svc))
		count++
	}

	return &dto.ServiceSearchResponse{
		Groups: groups,
		Count:  count,
	}, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, serviceID uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	svc, err := u.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	category, err := u.categoryRepo.FindByID(db, req.ServiceCategoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	code, err := u.normalizeServiceCode(db, req.ServiceCode, category.Name, req.Name, serviceID)
	if err != nil {
		return nil, err
	}

	svc.ServiceCategoryID = req.ServiceCategoryID
	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.DurationMinutes = req.DurationMinutes
	svc.ServiceCode = code
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := u.serviceRepo.Update(db, svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	svc.Category = *category
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) DeleteService(ctx context.Context, serviceID uint, actor string) error {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if _, err := u.serviceRepo.Delete(u.db.WithContext(ctx), serviceID); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionServiceDelete, "service", serviceID, entity.JSON{
		"name": svc.Name,
	})
	return nil
}

// normalizeServiceCode implements the normalize-then-validate pipeline
// for service codes: a blank code is synthesized from the category and
// service names; a supplied code must match the pattern. Either way the
// final code must be unique among all other services.
func (u *serviceUsecase) normalizeServiceCode(db *gorm.DB, code, categoryName, serviceName string, selfID uint) (string, error) {
	code = strings.TrimSpace(code)

	if code == "" {
		for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
			candidate := servicecode.Generate(categoryName, serviceName)
			taken, err := u.codeTaken(db, candidate, selfID)
			if err != nil {
				return "", err
			}
			if !taken {
				return candidate, nil
			}
		}
		return "", ErrServiceCodeExhausted
	}

	if !servicecode.Valid(code) {
		return "", ErrInvalidServiceCode
	}
	taken, err := u.codeTaken(db, code, selfID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrServiceCodeExists
	}
	return code, nil
}

func (u *serviceUsecase) codeTaken(db *gorm.DB, code string, selfID uint) (bool, error) {
	existing, err := u.serviceRepo.FindByCode(db, code)
	if err != nil {
		u.log.Warnf("Failed to check service code: %+v", err)
		return false, err
	}
	return existing != nil && existing.ID != selfID, nil
}
