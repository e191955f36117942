package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientName:   appointment.PatientName,
		BirthDate:     appointment.BirthDate.Format("2006-01-02"),
		Phone:         appointment.Phone,
		Email:         appointment.Email,
		Message:       appointment.Message,
		Status:        string(appointment.Status),
		StatusText:    appointment.StatusText(),
		Read:          appointment.Read,
		DoctorID:      appointment.DoctorID,
		SpecialtyID:   appointment.SpecialtyID,
		SpecialtyName: appointment.SpecialtyName(),
		CreatedAt:     appointment.CreatedAt,
	}
	if appointment.Doctor != nil {
		resp.DoctorName = appointment.Doctor.FullName()
	}
	return resp
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
