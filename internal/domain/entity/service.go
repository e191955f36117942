package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a priced clinic service belonging to a category.
// ServiceCode is optional; when present it must match the price list code
// pattern and be globally unique (enforced in the usecase layer since a
// partial unique index is not portable across storage engines).
type Service struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ServiceCategoryID uint            `gorm:"not null;index" json:"service_category_id"`
	Name              string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes   *int            `json:"duration_minutes,omitempty"`
	ServiceCode       string          `gorm:"type:varchar(50)" json:"service_code,omitempty"`
	Active            bool            `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category ServiceCategory `gorm:"foreignKey:ServiceCategoryID" json:"category,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
