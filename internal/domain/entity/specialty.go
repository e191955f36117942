package entity

import "time"

// Specialty is a medical specialty doctors are associated with.
type Specialty struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Doctors []Doctor `gorm:"many2many:doctors_specialties" json:"-"`
}

func (Specialty) TableName() string {
	return "specialties"
}
