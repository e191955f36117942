package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		LastName:        doctor.LastName,
		FirstName:       doctor.FirstName,
		MiddleName:      doctor.MiddleName,
		FullName:        doctor.FullName(),
		ExperienceYears: doctor.ExperienceYears,
		ExperienceText:  doctor.ExperienceText(),
		Bio:             doctor.Bio,
		PhotoPath:       doctor.PhotoPath,
		Specialties:     SpecialtiesToResponses(doctor.Specialties),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
