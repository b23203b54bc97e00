package piiutil

import (
	"strings"
	"unicode"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

// MaskPhone hides all but the trailing digits of a phone value and keeps
// separators such as '+', '(', '-' and spaces in place:
//
//	"+55 (11) 98765-4321" -> "+** (**) *****-4321"
//	"5511987654321"       -> "*********4321"
//	"1234"                -> "***4"
//	"55SEUNUMERO"         -> "*5SEUNUMERO"
//	"AB-CD"               -> "**-*D"
//
// Values without digits are treated as opaque tokens: every letter or digit
// except the last one is masked.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	if !maskDigits(runes) {
		return maskToken(runes)
	}
	return string(runes)
}

// maskDigits masks digits in place keeping the last 4, or only the last one
// when there are 4 digits or fewer. It reports false when runes has no digits.
func maskDigits(runes []rune) bool {
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return false
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return true
}

func maskToken(runes []rune) string {
	last := -1
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) {
			last = i
			break
		}
	}
	for i := 0; i < last; i++ {
		if unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) {
			runes[i] = '*'
		}
	}
	return string(runes)
}
