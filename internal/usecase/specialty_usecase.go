package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialtyNameExists = errors.New("specialty name already exists")
	ErrSpecialtyInUse      = errors.New("specialty is assigned to doctors")
)

type SpecialtyUsecase interface {
	CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error)
	GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	DeleteSpecialty(ctx context.Context, specialtyID uint, actor string) error
}

type specialtyUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	auditService  service.AuditService
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
		auditService:  auditService,
	}
}

func (u *specialtyUsecase) CreateSpecialty(ctx context.Context, req *dto.CreateSpecialtyRequest) (*dto.SpecialtyResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.specialtyRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check specialty name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpecialtyNameExists
	}

	specialty := &entity.Specialty{Name: req.Name}
	if err := u.specialtyRepo.Create(db, specialty); err != nil {
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}
	return converter.SpecialtyToResponse(specialty), nil
}

func (u *specialtyUsecase) GetAllSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}

	responses := converter.SpecialtiesToResponses(specialties)
	if responses == nil {
		responses = []dto.SpecialtyResponse{}
	}
	return &dto.SpecialtyListResponse{
		Specialties: responses,
		Total:       len(responses),
	}, nil
}

// DeleteSpecialty refuses to remove a specialty that is still assigned
// to at least one doctor.
func (u *specialtyUsecase) DeleteSpecialty(ctx context.Context, specialtyID uint, actor string) error {
	db := u.db.WithContext(ctx)

	specialty, err := u.specialtyRepo.FindByID(db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	doctors, err := u.specialtyRepo.CountDoctors(db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to count specialty doctors: %+v", err)
		return err
	}
	if doctors > 0 {
		return ErrSpecialtyInUse
	}

	if _, err := u.specialtyRepo.Delete(db, specialtyID); err != nil {
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionSpecialtyDelete, "specialty", specialtyID, entity.JSON{
		"name": specialty.Name,
	})
	return nil
}
