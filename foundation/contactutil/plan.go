package contactutil

import "maps"

const (
	// DefaultMinDigits is the shortest canonical number accepted by DefaultPlan.
	DefaultMinDigits = 10

	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
)

// Plan is a numbering-plan policy: how many digits make a plausible number
// and how numbers of a given length are grouped for display.
//
// Validation is deliberately weak. A number that passes Check is not
// guaranteed to be dialable.
type Plan struct {
	// MinDigits is the inclusive lower bound. Zero means DefaultMinDigits.
	MinDigits int
	// MaxDigits is the inclusive upper bound. Zero means unbounded.
	MaxDigits int
	// Layouts maps a digit count to its display groups. The first group
	// is wrapped in parentheses, the remaining ones are joined by '-'.
	Layouts map[int][]int
}

// DefaultPlan returns the Brazilian plan: at least 10 digits, no upper bound,
// mobile numbers shown as (DD) DDDDD-DDDD and landlines as (DD) DDDD-DDDD.
func DefaultPlan() Plan {
	return Plan{
		MinDigits: DefaultMinDigits,
		Layouts: map[int][]int{
			11: {2, 5, 4},
			10: {2, 4, 4},
		},
	}
}

// WithLayout returns a copy of p with groups registered for their total length.
// Groups with a non-positive size are ignored.
func (p Plan) WithLayout(groups ...int) Plan {
	total := 0
	clean := make([]int, 0, len(groups))
	for _, g := range groups {
		if g > 0 {
			clean = append(clean, g)
			total += g
		}
	}
	out := p
	out.Layouts = maps.Clone(p.Layouts)
	if out.Layouts == nil {
		out.Layouts = make(map[int][]int, 1)
	}
	if total > 0 {
		out.Layouts[total] = clean
	}
	return out
}

func (p Plan) minDigits() int {
	if p.MinDigits <= 0 {
		return DefaultMinDigits
	}
	return p.MinDigits
}

// Diagnostic describes why a canonical number was classified as invalid.
type Diagnostic struct {
	Number Canonical
	Digits int
	Reason string
}

// Observer receives diagnostics for numbers that fail validation.
type Observer interface {
	ObserveInvalid(Diagnostic)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Diagnostic)

func (f ObserverFunc) ObserveInvalid(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// Observers fans a diagnostic out to every non-nil observer in order.
type Observers []Observer

func (o Observers) ObserveInvalid(d Diagnostic) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveInvalid(d)
		}
	}
}

// Check classifies c. The returned diagnostic is zero when c is valid.
func (p Plan) Check(c Canonical) (bool, Diagnostic) {
	n := len(c)
	switch {
	case n < p.minDigits():
		return false, Diagnostic{Number: c, Digits: n, Reason: ReasonTooShort}
	case p.MaxDigits > 0 && n > p.MaxDigits:
		return false, Diagnostic{Number: c, Digits: n, Reason: ReasonTooLong}
	default:
		return true, Diagnostic{}
	}
}

// Validate is Check that reports failures to obs. obs may be nil.
func (p Plan) Validate(c Canonical, obs Observer) bool {
	ok, d := p.Check(c)
	if !ok && obs != nil {
		obs.ObserveInvalid(d)
	}
	return ok
}

var defaultPlan = DefaultPlan()

// IsValid reports whether c has at least DefaultMinDigits digits.
func IsValid(c Canonical) bool {
	ok, _ := defaultPlan.Check(c)
	return ok
}
