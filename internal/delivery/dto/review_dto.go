package dto

import "time"

// CreateReviewRequest is accepted both as a JSON body and as form fields.
// Field checks happen in the usecase so the error messages match the
// public site's wording exactly.
type CreateReviewRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
}

type ReviewResponse struct {
	ID            uint      `json:"id"`
	AuthorName    string    `json:"author_name"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	Approved      bool      `json:"approved"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	StarRating    string    `json:"star_rating"`
	FormattedDate string    `json:"formatted_date"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
