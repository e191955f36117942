package dto

// Request DTOs

type CreateDoctorRequest struct {
	LastName        string `json:"last_name" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	MiddleName      string `json:"middle_name" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Bio             string `json:"bio" validate:"required"`
	PhotoPath       string `json:"photo_path" validate:"omitempty"`
	SpecialtyIDs    []uint `json:"specialty_ids" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	LastName        string `json:"last_name" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	MiddleName      string `json:"middle_name" validate:"omitempty"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Bio             string `json:"bio" validate:"required"`
	PhotoPath       string `json:"photo_path" validate:"omitempty"`
	SpecialtyIDs    []uint `json:"specialty_ids" validate:"omitempty"`
}

// DoctorSearchRequest carries the public directory search form fields.
type DoctorSearchRequest struct {
	Query     string `json:"query"`
	Specialty string `json:"specialty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uint                `json:"id"`
	LastName        string              `json:"last_name"`
	FirstName       string              `json:"first_name"`
	MiddleName      string              `json:"middle_name,omitempty"`
	FullName        string              `json:"full_name"`
	ExperienceYears *int                `json:"experience_years,omitempty"`
	ExperienceText  string              `json:"experience_text"`
	Bio             string              `json:"bio"`
	PhotoPath       string              `json:"photo_path,omitempty"`
	Specialties     []SpecialtyResponse `json:"specialties,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorSearchResponse mirrors the search contract: the matching doctors
// in directory order plus their count.
type DoctorSearchResponse struct {
	Results []DoctorResponse `json:"results"`
	Count   int              `json:"count"`
}
