// Package servicecode generates and validates price list service codes of
// the form PREFIX.NNN.NNN, e.g. "PEDCON.042.117".
package servicecode

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// codePattern is the accepted shape for user supplied codes: an uppercase
// letter followed by letters/digits, then two dot separated 3 character
// alphanumeric segments.
var codePattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*\.[A-Z0-9]{3}\.[A-Z0-9]{3}$`)

const (
	prefixLen  = 3
	fillerRune = 'X'
)

// Generate builds a code from the category and service names:
// a 3 letter prefix from each name, then two random 3 digit segments.
// Runes outside A-Z/a-z (digits, punctuation, Cyrillic) become the filler
// letter so the result always satisfies Valid.
func Generate(categoryName, serviceName string) string {
	return fmt.Sprintf("%s%s.%03d.%03d",
		prefix(categoryName),
		prefix(serviceName),
		rand.Intn(1000),
		rand.Intn(1000),
	)
}

// Valid reports whether a non-blank code matches the accepted pattern.
func Valid(code string) bool {
	return codePattern.MatchString(code)
}

func prefix(s string) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == prefixLen {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		default:
			b.WriteRune(fillerRune)
		}
	}
	for b.Len() < prefixLen {
		b.WriteRune(fillerRune)
	}
	return b.String()
}
