package entity

import "time"

// ServiceCategory groups services in the price list. Position is the
// manual ordering key; duplicates are allowed and resolved by name.
type ServiceCategory struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Position int    `gorm:"not null;default:0;index" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Services []Service `gorm:"foreignKey:ServiceCategoryID" json:"services,omitempty"`
}

func (ServiceCategory) TableName() string {
	return "service_categories"
}
