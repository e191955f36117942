package usecase

import (
	"context"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(t *testing.T) (AppointmentUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	return NewAppointmentUsecase(
		db, log,
		repository.NewAppointmentRepository(),
		repository.NewDoctorRepository(),
		repository.NewSpecialtyRepository(),
		newTestNotifications(db, log),
		newTestAuditService(log),
	), db
}

func validAppointmentRequest(specialtyID uint) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientName:     "Иванова Анна",
		BirthDate:       "1990-05-12",
		Phone:           "+7 900 000-00-00",
		Email:           "anna@example.com",
		SpecialtyID:     specialtyID,
		Message:         "Прошу записать на прием",
		PrivacyAccepted: true,
	}
}

func TestCreateAppointmentRequiresPrivacy(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)

	req := validAppointmentRequest(specialty.ID)
	req.PrivacyAccepted = false

	_, err := uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrPrivacyNotAccepted)
}

func TestCreateAppointmentRejectsBadBirthDate(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)

	req := validAppointmentRequest(specialty.ID)
	req.BirthDate = "12.05.1990"

	_, err := uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestCreateAppointmentUnknownSpecialty(t *testing.T) {
	uc, _ := newAppointmentUsecase(t)

	_, err := uc.CreateAppointment(context.Background(), validAppointmentRequest(42))
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)

	req := validAppointmentRequest(specialty.ID)
	missing := uint(42)
	req.DoctorID = &missing

	_, err := uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, ErrAppointmentDoctorGone)
}

func TestCreateAppointmentStartsNew(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)

	resp, err := uc.CreateAppointment(context.Background(), validAppointmentRequest(specialty.ID))
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusNew), resp.Status)
	assert.Equal(t, "Новый", resp.StatusText)
	assert.Equal(t, "Педиатр", resp.SpecialtyName)
	assert.Equal(t, "1990-05-12", resp.BirthDate)
}

func TestAppointmentTransitions(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)
	ctx := context.Background()

	resp, err := uc.CreateAppointment(ctx, validAppointmentRequest(specialty.ID))
	require.NoError(t, err)

	require.NoError(t, uc.ConfirmAppointment(ctx, resp.ID, "admin"))

	var stored entity.Appointment
	require.NoError(t, db.First(&stored, resp.ID).Error)
	assert.Equal(t, entity.AppointmentStatusConfirmed, stored.Status)

	require.NoError(t, uc.CancelAppointment(ctx, resp.ID, "admin"))
	require.NoError(t, db.First(&stored, resp.ID).Error)
	assert.Equal(t, entity.AppointmentStatusCancelled, stored.Status)

	// Transitions are audited.
	var audits int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Count(&audits).Error)
	assert.Equal(t, int64(2), audits)
}

func TestAppointmentTransitionNotFound(t *testing.T) {
	uc, _ := newAppointmentUsecase(t)

	err := uc.ConfirmAppointment(context.Background(), 42, "admin")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	uc, db := newAppointmentUsecase(t)
	specialty := entity.Specialty{Name: "Педиатр"}
	require.NoError(t, db.Create(&specialty).Error)
	ctx := context.Background()

	resp, err := uc.CreateAppointment(ctx, validAppointmentRequest(specialty.ID))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAppointment(ctx, resp.ID, "admin"))

	list, err := uc.GetAllAppointments(ctx)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}
