package entity

import (
	"strconv"
	"strings"
)

// DoctorSearchFilter is a domain-level filter for the doctor directory.
// Query is matched as a case-insensitive substring against last name,
// first name, middle name and bio; Specialty is an exact specialty name.
// Used by the usecase layer to avoid coupling with delivery DTOs.
type DoctorSearchFilter struct {
	Query     string
	Specialty string
}

// Matches reports whether a doctor passes both filters. Empty filters
// match everything.
func (f *DoctorSearchFilter) Matches(d *Doctor) bool {
	if f.Query != "" {
		if !containsFold(d.LastName, f.Query) &&
			!containsFold(d.FirstName, f.Query) &&
			!containsFold(d.MiddleName, f.Query) &&
			!containsFold(d.Bio, f.Query) {
			return false
		}
	}
	if f.Specialty != "" && !d.HasSpecialty(f.Specialty) {
		return false
	}
	return true
}

// ServiceSearchFilter is a domain-level filter for the price list.
// CategoryID is kept as the raw request string; empty means no filter.
type ServiceSearchFilter struct {
	Query      string
	CategoryID string
}

// Matches reports whether a service passes both filters. The query is
// matched against name, description, category name and service code.
func (f *ServiceSearchFilter) Matches(s *Service) bool {
	if f.Query != "" {
		if !containsFold(s.Name, f.Query) &&
			!containsFold(s.Description, f.Query) &&
			!containsFold(s.Category.Name, f.Query) &&
			!containsFold(s.ServiceCode, f.Query) {
			return false
		}
	}
	if f.CategoryID != "" {
		id, err := strconv.ParseUint(f.CategoryID, 10, 64)
		if err != nil || uint(id) != s.ServiceCategoryID {
			return false
		}
	}
	return true
}

// containsFold is a Unicode case-insensitive substring test. Matching is
// done in process rather than with LIKE so Cyrillic case folding behaves
// the same on every storage engine; the dataset is small enough for this.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
