package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorSearchFilterMatches(t *testing.T) {
	doctor := Doctor{
		LastName:   "Иванов",
		FirstName:  "Иван",
		MiddleName: "Иванович",
		Bio:        "Врач высшей категории, кандидат медицинских наук",
		Specialties: []Specialty{
			{Name: "Педиатр"},
		},
	}

	tests := []struct {
		name   string
		filter DoctorSearchFilter
		want   bool
	}{
		{"empty filter matches", DoctorSearchFilter{}, true},
		{"last name lowercase", DoctorSearchFilter{Query: "иванов"}, true},
		{"last name uppercase", DoctorSearchFilter{Query: "ИВАНОВ"}, true},
		{"substring of bio", DoctorSearchFilter{Query: "кандидат"}, true},
		{"no text match", DoctorSearchFilter{Query: "Петров"}, false},
		{"specialty exact", DoctorSearchFilter{Specialty: "Педиатр"}, true},
		{"specialty wrong case", DoctorSearchFilter{Specialty: "педиатр"}, false},
		{"specialty miss", DoctorSearchFilter{Specialty: "Хирург"}, false},
		{"both filters match", DoctorSearchFilter{Query: "иван", Specialty: "Педиатр"}, true},
		{"query matches but specialty misses", DoctorSearchFilter{Query: "иван", Specialty: "Хирург"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&doctor))
		})
	}
}

func TestServiceSearchFilterMatches(t *testing.T) {
	service := Service{
		ServiceCategoryID: 2,
		Name:              "Общий анализ крови",
		Description:       "Забор из вены",
		ServiceCode:       "LABANA.042.117",
		Category:          ServiceCategory{ID: 2, Name: "Лабораторные анализы"},
	}

	tests := []struct {
		name   string
		filter ServiceSearchFilter
		want   bool
	}{
		{"empty filter matches", ServiceSearchFilter{}, true},
		{"name substring", ServiceSearchFilter{Query: "анализ крови"}, true},
		{"name case folded", ServiceSearchFilter{Query: "ОБЩИЙ"}, true},
		{"category name", ServiceSearchFilter{Query: "лабораторные"}, true},
		{"service code", ServiceSearchFilter{Query: "labana"}, true},
		{"description", ServiceSearchFilter{Query: "вены"}, true},
		{"no match", ServiceSearchFilter{Query: "рентген"}, false},
		{"category id match", ServiceSearchFilter{CategoryID: "2"}, true},
		{"category id miss", ServiceSearchFilter{CategoryID: "3"}, false},
		{"category id garbage", ServiceSearchFilter{CategoryID: "abc"}, false},
		{"query and category", ServiceSearchFilter{Query: "кровь", CategoryID: "2"}, false},
		{"query and category both match", ServiceSearchFilter{Query: "крови", CategoryID: "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&service))
		})
	}
}
