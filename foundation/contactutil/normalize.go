package contactutil

import "strings"

// Canonical is a phone number reduced to ASCII digits:
// country code, area code and subscriber number with no separators.
// Obtain values through Normalize.
type Canonical string

// String returns the digits.
func (c Canonical) String() string { return string(c) }

// Len returns the digit count.
func (c Canonical) Len() int { return len(c) }

// Normalize strips every rune that is not an ASCII digit.
// It never fails; empty or short results are valid outputs.
// Non-ASCII digits (for example Arabic-Indic) are dropped, not transliterated.
//
//	"(11) 98765-4321"   -> "11987654321"
//	"+55 11 9876-54321" -> "5511987654321"
//	"abc"               -> ""
func Normalize(input string) Canonical {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch >= '0' && ch <= '9' {
			b.WriteByte(ch)
		}
	}
	return Canonical(b.String())
}
