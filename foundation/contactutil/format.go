package contactutil

import "strings"

// Format renders c for display using DefaultPlan:
//
//	"11987654321" -> "(11) 98765-4321"
//	"1133334444"  -> "(11) 3333-4444"
//	"123"         -> "123"
//
// Lengths without a layout are returned unchanged. Format is for display
// only and says nothing about validity.
func Format(c Canonical) string {
	return defaultPlan.Format(c)
}

// Format renders c with the layout registered for its length.
// Unknown lengths and single-group layouts fall back to the digits.
func (p Plan) Format(c Canonical) string {
	groups, ok := p.layout(len(c))
	if !ok {
		return string(c)
	}

	s := string(c)
	var b strings.Builder
	b.Grow(len(s) + len(groups) + 2)

	b.WriteByte('(')
	b.WriteString(s[:groups[0]])
	b.WriteString(") ")

	pos := groups[0]
	for i, g := range groups[1:] {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(s[pos : pos+g])
		pos += g
	}
	return b.String()
}

// layout returns the groups for n digits when they are usable for display.
func (p Plan) layout(n int) ([]int, bool) {
	groups, ok := p.Layouts[n]
	if !ok || len(groups) < 2 || !coversExactly(groups, n) {
		return nil, false
	}
	return groups, true
}

func coversExactly(groups []int, n int) bool {
	total := 0
	for _, g := range groups {
		if g <= 0 {
			return false
		}
		total += g
	}
	return total == n
}

// FormatE164 prefixes the digits with '+'. Empty input stays empty.
func FormatE164(c Canonical) string {
	if c == "" {
		return ""
	}
	return "+" + string(c)
}

// FormatInput normalizes raw and formats it with DefaultPlan. When no layout
// matches, raw itself is returned untouched, separators included.
func FormatInput(raw string) string {
	c := Normalize(raw)
	if _, ok := defaultPlan.layout(len(c)); !ok {
		return raw
	}
	return defaultPlan.Format(c)
}
