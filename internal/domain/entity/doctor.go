package entity

import (
	"fmt"
	"strings"
	"time"

	"clinic-backend/pkg/format"
)

// Doctor represents a clinic doctor shown in the public directory.
type Doctor struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	LastName        string `gorm:"type:varchar(100);not null;index:idx_doctors_name,priority:1" json:"last_name"`
	FirstName       string `gorm:"type:varchar(100);not null;index:idx_doctors_name,priority:2" json:"first_name"`
	MiddleName      string `gorm:"type:varchar(100)" json:"middle_name,omitempty"`
	ExperienceYears *int   `json:"experience_years,omitempty"`
	Bio             string `gorm:"type:text;not null" json:"bio"`
	PhotoPath       string `gorm:"type:varchar(255)" json:"photo_path,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialties  []Specialty   `gorm:"many2many:doctors_specialties" json:"specialties,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// FullName joins last, first and middle name, skipping blanks.
func (d *Doctor) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.LastName, d.FirstName, d.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ExperienceText renders the years of experience with the correct Russian
// plural form, e.g. "1 год", "3 года", "11 лет".
func (d *Doctor) ExperienceText() string {
	if d.ExperienceYears == nil {
		return "Опыт не указан"
	}
	years := *d.ExperienceYears
	if years == 0 {
		return "менее года"
	}
	return fmt.Sprintf("%d %s", years, format.RussianPlural(years, "год", "года", "лет"))
}

// SpecialtiesText lists the doctor's specialty names comma separated.
func (d *Doctor) SpecialtiesText() string {
	names := make([]string, len(d.Specialties))
	for i, s := range d.Specialties {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// HasSpecialty reports whether the doctor is associated with a specialty
// whose name exactly equals the given one.
func (d *Doctor) HasSpecialty(name string) bool {
	for _, s := range d.Specialties {
		if s.Name == name {
			return true
		}
	}
	return false
}
