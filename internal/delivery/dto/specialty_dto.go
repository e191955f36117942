package dto

type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required"`
}

type SpecialtyResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}
