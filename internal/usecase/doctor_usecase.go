package usecase

import (
	"context"
	"errors"
	"mime/multipart"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrSpecialtyNotFound = errors.New("specialty not found")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorSpecialties(ctx context.Context, doctorID uint) (*dto.SpecialtyListResponse, error)
	Search(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorSearchResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	UploadPhoto(ctx context.Context, doctorID uint, file multipart.File, filename string) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uint, actor string) error
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorRepository
	specialtyRepo repository.SpecialtyRepository
	photoStorage  *service.PhotoStorage
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	photoStorage *service.PhotoStorage,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		specialtyRepo: specialtyRepo,
		photoStorage:  photoStorage,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	specialties, err := u.resolveSpecialties(ctx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		PhotoPath:       req.PhotoPath,
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			return err
		}
		if len(specialties) > 0 {
			return u.doctorRepo.ReplaceSpecialties(tx, doctor, specialties)
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	doctor.Specialties = specialties
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctorSpecialties(ctx context.Context, doctorID uint) (*dto.SpecialtyListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	responses := converter.SpecialtiesToResponses(doctor.Specialties)
	if responses == nil {
		responses = []dto.SpecialtyResponse{}
	}
	return &dto.SpecialtyListResponse{
		Specialties: responses,
		Total:       len(responses),
	}, nil
}

// Search filters the doctor directory by a free text query over name
// fields and bio, and by an exact specialty name. Doctors come back from
// the repository already in directory order, so filtering keeps it.
func (u *doctorUsecase) Search(ctx context.Context, req *dto.DoctorSearchRequest) (*dto.DoctorSearchResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load doctors for search: %+v", err)
		return nil, err
	}

	filter := entity.DoctorSearchFilter{
		Query:     req.Query,
		Specialty: req.Specialty,
	}

	matched := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if filter.Matches(&doctor) {
			matched = append(matched, doctor)
		}
	}

	return &dto.DoctorSearchResponse{
		Results: converter.DoctorsToResponses(matched),
		Count:   len(matched),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	specialties, err := u.resolveSpecialties(ctx, req.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	doctor.LastName = req.LastName
	doctor.FirstName = req.FirstName
	doctor.MiddleName = req.MiddleName
	doctor.ExperienceYears = req.ExperienceYears
	doctor.Bio = req.Bio
	if req.PhotoPath != "" {
		doctor.PhotoPath = req.PhotoPath
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.doctorRepo.Update(tx, doctor); err != nil {
			return err
		}
		// The specialty set is replaced wholesale; an empty request clears it.
		return u.doctorRepo.ReplaceSpecialties(tx, doctor, specialties)
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	doctor.Specialties = specialties
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) UploadPhoto(ctx context.Context, doctorID uint, file multipart.File, filename string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	photoPath, err := u.photoStorage.Save("doctors", filename, file)
	if err != nil {
		u.log.Warnf("Failed to store doctor photo: %+v", err)
		return nil, err
	}

	oldPath := doctor.PhotoPath
	doctor.PhotoPath = photoPath
	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to update doctor photo path: %+v", err)
		return nil, err
	}

	if oldPath != "" {
		if err := u.photoStorage.Remove(oldPath); err != nil {
			u.log.Warnf("Failed to remove old doctor photo: %+v", err)
		}
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes the doctor together with their appointments and
// specialty associations.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint, actor string) error {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctorID).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if err := u.doctorRepo.ClearSpecialties(tx, doctor); err != nil {
			return err
		}
		_, err := u.doctorRepo.Delete(tx, doctorID)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db, actor, entity.AuditActionDoctorDelete, "doctor", doctorID, entity.JSON{
		"full_name": doctor.FullName(),
	})
	return nil
}

func (u *doctorUsecase) resolveSpecialties(ctx context.Context, ids []uint) ([]entity.Specialty, error) {
	if len(ids) == 0 {
		return []entity.Specialty{}, nil
	}
	specialties, err := u.specialtyRepo.FindByIDs(u.db.WithContext(ctx), ids)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}
	if len(specialties) != len(ids) {
		return nil, ErrSpecialtyNotFound
	}
	return specialties, nil
}
