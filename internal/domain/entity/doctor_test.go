package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int {
	return &n
}

func TestDoctorFullName(t *testing.T) {
	tests := []struct {
		name   string
		doctor Doctor
		want   string
	}{
		{
			name:   "all parts",
			doctor: Doctor{LastName: "Иванов", FirstName: "Иван", MiddleName: "Иванович"},
			want:   "Иванов Иван Иванович",
		},
		{
			name:   "no middle name",
			doctor: Doctor{LastName: "Петрова", FirstName: "Анна"},
			want:   "Петрова Анна",
		},
		{
			name:   "last name only",
			doctor: Doctor{LastName: "Сидоров"},
			want:   "Сидоров",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doctor.FullName())
		})
	}
}

func TestDoctorExperienceText(t *testing.T) {
	tests := []struct {
		name  string
		years *int
		want  string
	}{
		{"not set", nil, "Опыт не указан"},
		{"zero", intPtr(0), "менее года"},
		{"one", intPtr(1), "1 год"},
		{"few", intPtr(3), "3 года"},
		{"many", intPtr(5), "5 лет"},
		{"teens", intPtr(12), "12 лет"},
		{"twenty one", intPtr(21), "21 год"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Doctor{ExperienceYears: tt.years}
			assert.Equal(t, tt.want, d.ExperienceText())
		})
	}
}

func TestDoctorSpecialties(t *testing.T) {
	d := Doctor{Specialties: []Specialty{{Name: "Педиатр"}, {Name: "Невролог"}}}

	assert.Equal(t, "Педиатр, Невролог", d.SpecialtiesText())
	assert.True(t, d.HasSpecialty("Педиатр"))
	assert.False(t, d.HasSpecialty("педиатр"), "specialty match is exact")
	assert.False(t, d.HasSpecialty("Хирург"))
}
