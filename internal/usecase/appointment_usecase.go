package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrPrivacyNotAccepted    = errors.New("privacy terms must be accepted")
	ErrInvalidBirthDate      = errors.New("invalid birth date format, use YYYY-MM-DD")
	ErrAppointmentDoctorGone = errors.New("selected doctor not found")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	ConfirmAppointment(ctx context.Context, appointmentID uint, actor string) error
	CancelAppointment(ctx context.Context, appointmentID uint, actor string) error
	DeleteAppointment(ctx context.Context, appointmentID uint, actor string) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	specialtyRepo   repository.SpecialtyRepository
	notifications   *service.NotificationService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	specialtyRepo repository.SpecialtyRepository,
	notifications *service.NotificationService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		specialtyRepo:   specialtyRepo,
		notifications:   notifications,
		auditService:    auditService,
	}
}

// CreateAppointment persists a public appointment request. The privacy
// checkbox must be ticked and the chosen specialty must exist; the doctor
// is optional.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if !req.PrivacyAccepted {
		return nil, ErrPrivacyNotAccepted
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	specialty, err := u.specialtyRepo.FindByID(db, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	var doctor *entity.Doctor
	if req.DoctorID != nil {
		doctor, err = u.doctorRepo.FindByID(db, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrAppointmentDoctorGone
		}
	}

	specialtyID := specialty.ID
	appointment := &entity.Appointment{
		PatientName:     req.PatientName,
		BirthDate:       birthDate,
		Phone:           req.Phone,
		Email:           req.Email,
		Message:         req.Message,
		PrivacyAccepted: true,
		Status:          entity.AppointmentStatusNew,
		DoctorID:        req.DoctorID,
		SpecialtyID:     &specialtyID,
	}
	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Doctor = doctor
	appointment.Specialty = specialty
	u.notifications.Invalidate(ctx)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, appointmentID uint, actor string) error {
	return u.transition(ctx, appointmentID, actor, entity.AuditActionAppointmentConfirm, (*entity.Appointment).Confirm)
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uint, actor string) error {
	return u.transition(ctx, appointmentID, actor, entity.AuditActionAppointmentCancel, (*entity.Appointment).Cancel)
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uint, actor string) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(db, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.notifications.Invalidate(ctx)
	u.auditService.Log(ctx, u.db, actor, entity.AuditActionAppointmentDelete, "appointment", appointmentID, entity.JSON{
		"patient_name": appointment.PatientName,
	})
	return nil
}

func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uint, actor, action string, apply func(*entity.Appointment)) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	apply(appointment)
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}

	u.notifications.Invalidate(ctx)
	u.auditService.Log(ctx, u.db, actor, action, "appointment", appointmentID, entity.JSON{
		"status": string(appointment.Status),
	})
	return nil
}
