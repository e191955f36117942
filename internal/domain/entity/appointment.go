package entity

import "time"

// AppointmentStatus represents the status of an appointment request.
type AppointmentStatus string

const (
	AppointmentStatusNew       AppointmentStatus = "new"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var appointmentStatusText = map[AppointmentStatus]string{
	AppointmentStatusNew:       "Новый",
	AppointmentStatusConfirmed: "Подтвержден",
	AppointmentStatusCancelled: "Отменен",
}

// Appointment is a patient's appointment request submitted through the
// public site. Read is an unread-count flag, independent of Status.
type Appointment struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	BirthDate       time.Time         `gorm:"type:date;not null" json:"birth_date"`
	Phone           string            `gorm:"type:varchar(50);not null" json:"phone"`
	Email           string            `gorm:"type:varchar(255);not null" json:"email"`
	Message         string            `gorm:"type:text" json:"message,omitempty"`
	PrivacyAccepted bool              `gorm:"not null;default:false" json:"privacy_accepted"`
	Read            bool              `gorm:"not null;default:false;index" json:"read"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	DoctorID        *uint             `gorm:"index" json:"doctor_id,omitempty"`
	SpecialtyID     *uint             `gorm:"index" json:"specialty_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    *Doctor    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsNew checks if the appointment has not been processed yet.
func (a *Appointment) IsNew() bool {
	return a.Status == AppointmentStatusNew
}

// Confirm moves the appointment to its confirmed terminal state.
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel moves the appointment to its cancelled terminal state.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// StatusText is the Russian label shown in the admin panel.
func (a *Appointment) StatusText() string {
	if text, ok := appointmentStatusText[a.Status]; ok {
		return text
	}
	return string(a.Status)
}

// SpecialtyName returns the chosen specialty name or a placeholder.
func (a *Appointment) SpecialtyName() string {
	if a.Specialty != nil {
		return a.Specialty.Name
	}
	return "Не указана"
}
