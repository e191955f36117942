package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName     string `json:"patient_name" validate:"required"`
	BirthDate       string `json:"birth_date" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	DoctorID        *uint  `json:"doctor_id" validate:"omitempty"`
	SpecialtyID     uint   `json:"specialty_id" validate:"required"`
	Message         string `json:"message" validate:"omitempty"`
	PrivacyAccepted bool   `json:"privacy_accepted"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uint      `json:"id"`
	PatientName   string    `json:"patient_name"`
	BirthDate     string    `json:"birth_date"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	StatusText    string    `json:"status_text"`
	Read          bool      `json:"read"`
	DoctorID      *uint     `json:"doctor_id,omitempty"`
	DoctorName    string    `json:"doctor_name,omitempty"`
	SpecialtyID   *uint     `json:"specialty_id,omitempty"`
	SpecialtyName string    `json:"specialty_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
