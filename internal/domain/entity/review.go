package entity

import (
	"time"

	"clinic-backend/pkg/format"
)

// Review is a patient review. Approved gates public visibility; Featured
// is an independent highlight flag with no effect on visibility.
// Rating is immutable after creation.
type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AuthorName string `gorm:"type:varchar(255);not null" json:"author_name"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Rating     int    `gorm:"not null" json:"rating"`
	Approved   bool   `gorm:"not null;default:false;index" json:"approved"`
	Featured   bool   `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// Approve marks the review as publicly visible.
func (r *Review) Approve() {
	r.Approved = true
}

// Reject hides the review from the public listing.
func (r *Review) Reject() {
	r.Approved = false
}

// Feature marks the review as highlighted.
func (r *Review) Feature() {
	r.Featured = true
}

// Unfeature clears the highlight flag.
func (r *Review) Unfeature() {
	r.Featured = false
}

// StarRating renders the rating as a five star glyph string.
func (r *Review) StarRating() string {
	return format.StarRating(r.Rating)
}

// FormattedDate renders the creation date as dd.mm.yyyy.
func (r *Review) FormattedDate() string {
	return format.Date(r.CreatedAt)
}
