package servicecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProducesValidCodes(t *testing.T) {
	names := [][2]string{
		{"Pediatrics", "Consultation"},
		{"Лабораторные анализы", "Общий анализ крови"},
		{"X-Ray", "Chest"},
		{"", ""},
		{"ab", "c"},
	}

	for _, pair := range names {
		code := Generate(pair[0], pair[1])
		assert.True(t, Valid(code), "Generate(%q, %q) = %q", pair[0], pair[1], code)
	}
}

func TestGenerateLatinPrefix(t *testing.T) {
	code := Generate("Pediatrics", "Consultation")
	assert.Equal(t, "PEDCON", code[:6])
}

func TestGenerateNonLatinFallsBackToFiller(t *testing.T) {
	// Cyrillic names carry no Latin letters, so the prefix is all filler.
	code := Generate("Педиатрия", "Осмотр")
	assert.Equal(t, "XXXXXX", code[:6])
}

func TestValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"PEDCON.042.117", true},
		{"A.123.456", true},
		{"XRA001.A1B.9Z9", true},
		{"", false},
		{"pedcon.042.117", false},
		{"PEDCON.42.117", false},
		{"PEDCON.0421.117", false},
		{"1ED.123.456", false},
		{"PEDCON.042", false},
		{"PEDCON.042.117.003", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.code), "code %q", tt.code)
	}
}
