// Package format holds display helpers shared between the public API
// responses and the admin panel: star glyphs for review ratings, Russian
// plural forms, ruble amounts and dd.mm.yyyy dates.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	filledStar = "★"
	emptyStar  = "☆"
)

// StarRating renders a rating as a five character glyph string,
// e.g. 3 -> "★★★☆☆". Ratings outside [0,5] are clamped.
func StarRating(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat(filledStar, rating) + strings.Repeat(emptyStar, 5-rating)
}

// RussianPlural selects the correct Russian word form for a number:
// RussianPlural(1, "год", "года", "лет") -> "год"
// RussianPlural(2, ...) -> "года", RussianPlural(11, ...) -> "лет".
// The sign of n is ignored.
func RussianPlural(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	mod100 := n % 100
	if mod100 >= 11 && mod100 <= 14 {
		return many
	}
	switch mod10 := n % 10; {
	case mod10 == 1:
		return one
	case mod10 >= 2 && mod10 <= 4:
		return few
	default:
		return many
	}
}

// Currency formats an amount as rubles with a comma decimal separator and
// thin thousands grouping, e.g. 12500.5 -> "12 500,50 ₽".
func Currency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	intPart := fixed
	fracPart := "00"
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart = fixed[:dot]
		fracPart = fixed[dot+1:]
	}

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	grouped := b.String()
	if negative {
		grouped = "-" + grouped
	}
	return grouped + "," + fracPart + " ₽"
}

// Date renders a timestamp as dd.mm.yyyy.
func Date(t time.Time) string {
	return t.Format("02.01.2006")
}
