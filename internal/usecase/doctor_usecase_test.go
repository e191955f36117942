package usecase

import (
	"context"
	"testing"

	"clinic-backend/config"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDoctorUsecase(t *testing.T) (DoctorUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()
	storage := service.NewPhotoStorage(config.UploadConfig{Dir: t.TempDir(), BaseURL: "/images"}, log)
	return NewDoctorUsecase(
		db, log,
		repository.NewDoctorRepository(),
		repository.NewSpecialtyRepository(),
		storage,
		newTestAuditService(log),
	), db
}

func seedDoctors(t *testing.T, db *gorm.DB) (pediatrics, surgery entity.Specialty) {
	t.Helper()

	pediatrics = entity.Specialty{Name: "Педиатр"}
	surgery = entity.Specialty{Name: "Хирург"}
	require.NoError(t, db.Create(&pediatrics).Error)
	require.NoError(t, db.Create(&surgery).Error)

	doctors := []entity.Doctor{
		{
			LastName:  "Иванов",
			FirstName: "Иван",
			Bio:       "Врач высшей категории",
			Specialties: []entity.Specialty{
				pediatrics,
			},
		},
		{
			LastName:  "Петров",
			FirstName: "Петр",
			Bio:       "Кандидат медицинских наук",
			Specialties: []entity.Specialty{
				surgery,
			},
		},
	}
	for i := range doctors {
		require.NoError(t, db.Create(&doctors[i]).Error)
	}
	return pediatrics, surgery
}

func TestSearchDoctorsByQuery(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	seedDoctors(t, db)
	ctx := context.Background()

	result, err := uc.Search(ctx, &dto.DoctorSearchRequest{Query: "иван"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Иванов", result.Results[0].LastName)
}

func TestSearchDoctorsBySpecialty(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	seedDoctors(t, db)
	ctx := context.Background()

	result, err := uc.Search(ctx, &dto.DoctorSearchRequest{Specialty: "Педиатр"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Иванов", result.Results[0].LastName)
}

func TestSearchDoctorsNoMatch(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	seedDoctors(t, db)
	ctx := context.Background()

	result, err := uc.Search(ctx, &dto.DoctorSearchRequest{Query: "Сидоров"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Results)
}

func TestSearchDoctorsEmptyFilterReturnsAllInOrder(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	seedDoctors(t, db)
	ctx := context.Background()

	result, err := uc.Search(ctx, &dto.DoctorSearchRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "Иванов", result.Results[0].LastName)
	assert.Equal(t, "Петров", result.Results[1].LastName)
}

func TestCreateDoctorWithUnknownSpecialty(t *testing.T) {
	uc, _ := newDoctorUsecase(t)
	ctx := context.Background()

	_, err := uc.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		LastName:     "Иванов",
		FirstName:    "Иван",
		Bio:          "Врач",
		SpecialtyIDs: []uint{99},
	})
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestCreateDoctorAssignsSpecialties(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	pediatrics, _ := seedDoctors(t, db)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		LastName:     "Сидорова",
		FirstName:    "Мария",
		Bio:          "Педиатр со стажем",
		SpecialtyIDs: []uint{pediatrics.ID},
	})
	require.NoError(t, err)
	require.Len(t, created.Specialties, 1)
	assert.Equal(t, "Педиатр", created.Specialties[0].Name)

	fetched, err := uc.GetDoctorSpecialties(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, fetched.Total)
	assert.Equal(t, "Педиатр", fetched.Specialties[0].Name)
}

func TestUpdateDoctorReplacesSpecialties(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	pediatrics, surgery := seedDoctors(t, db)
	ctx := context.Background()

	created, err := uc.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		LastName:     "Сидорова",
		FirstName:    "Мария",
		Bio:          "Педиатр",
		SpecialtyIDs: []uint{pediatrics.ID},
	})
	require.NoError(t, err)

	updated, err := uc.UpdateDoctor(ctx, created.ID, &dto.UpdateDoctorRequest{
		LastName:     "Сидорова",
		FirstName:    "Мария",
		Bio:          "Хирург",
		SpecialtyIDs: []uint{surgery.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Specialties, 1)
	assert.Equal(t, "Хирург", updated.Specialties[0].Name)
}

func TestDeleteDoctorRemovesAppointments(t *testing.T) {
	uc, db := newDoctorUsecase(t)
	pediatrics, _ := seedDoctors(t, db)
	ctx := context.Background()

	var doctor entity.Doctor
	require.NoError(t, db.Where("last_name = ?", "Иванов").First(&doctor).Error)

	appointment := entity.Appointment{
		PatientName:     "Пациент",
		Phone:           "+7 900 000-00-00",
		Email:           "patient@example.com",
		PrivacyAccepted: true,
		Status:          entity.AppointmentStatusNew,
		DoctorID:        &doctor.ID,
		SpecialtyID:     &pediatrics.ID,
	}
	require.NoError(t, db.Create(&appointment).Error)

	require.NoError(t, uc.DeleteDoctor(ctx, doctor.ID, "admin"))

	var appointments int64
	require.NoError(t, db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctor.ID).Count(&appointments).Error)
	assert.Zero(t, appointments)

	_, err := uc.GetDoctor(ctx, doctor.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
