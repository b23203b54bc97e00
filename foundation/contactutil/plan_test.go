package contactutil

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "thirteen digits", in: "+55 11 9876-54321", want: true},
		{name: "eleven digits", in: "(11) 98765-4321", want: true},
		{name: "exactly ten", in: "11 3333-4444", want: true},
		{name: "nine digits", in: "98765-4321", want: false},
		{name: "empty", in: "", want: false},
		{name: "very long has no upper bound", in: strings.Repeat("9", 40), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(Normalize(tt.in)); got != tt.want {
				t.Fatalf("IsValid(Normalize(%q)) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValid_MatchesDigitCount(t *testing.T) {
	f := func(s string) bool {
		digits := 0
		for i := 0; i < len(s); i++ {
			if s[i] >= '0' && s[i] <= '9' {
				digits++
			}
		}
		return IsValid(Normalize(s)) == (digits >= 10)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestPlan_Check(t *testing.T) {
	p := Plan{MinDigits: 8, MaxDigits: 12}

	ok, d := p.Check("1234567")
	require.False(t, ok)
	require.Equal(t, Diagnostic{Number: "1234567", Digits: 7, Reason: ReasonTooShort}, d)

	ok, d = p.Check("1234567890123")
	require.False(t, ok)
	require.Equal(t, ReasonTooLong, d.Reason)
	require.Equal(t, 13, d.Digits)

	ok, d = p.Check("12345678")
	require.True(t, ok)
	require.Zero(t, d)
}

func TestPlan_ZeroValueUsesDefaultMinimum(t *testing.T) {
	var p Plan
	ok, _ := p.Check("123456789")
	require.False(t, ok)
	ok, _ = p.Check("1234567890")
	require.True(t, ok)
}

func TestPlan_ValidateReportsToObserver(t *testing.T) {
	var got []Diagnostic
	obs := ObserverFunc(func(d Diagnostic) { got = append(got, d) })

	p := DefaultPlan()
	require.True(t, p.Validate("5511987654321", obs))
	require.Empty(t, got)

	require.False(t, p.Validate("123", obs))
	require.Len(t, got, 1)
	require.Equal(t, ReasonTooShort, got[0].Reason)
	require.Equal(t, Canonical("123"), got[0].Number)
}

func TestPlan_ValidateNilObserver(t *testing.T) {
	require.NotPanics(t, func() {
		DefaultPlan().Validate("1", nil)
		DefaultPlan().Validate("1", ObserverFunc(nil))
	})
}

func TestObservers_FanOut(t *testing.T) {
	calls := 0
	count := ObserverFunc(func(Diagnostic) { calls++ })

	Observers{count, nil, count}.ObserveInvalid(Diagnostic{Reason: ReasonTooShort})
	require.Equal(t, 2, calls)
}

func TestPlan_WithLayoutDoesNotMutateReceiver(t *testing.T) {
	base := DefaultPlan()
	ext := base.WithLayout(2, 4, 0, 4, 3)

	require.Contains(t, ext.Layouts, 13)
	require.Equal(t, []int{2, 4, 4, 3}, ext.Layouts[13])
	require.NotContains(t, base.Layouts, 13)
}
