package contactutil

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   Canonical
		want string
	}{
		{name: "mobile eleven digits", in: "11987654321", want: "(11) 98765-4321"},
		{name: "landline ten digits", in: "1133334444", want: "(11) 3333-4444"},
		{name: "short falls back", in: "123", want: "123"},
		{name: "with country code falls back", in: "5511987654321", want: "5511987654321"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Fatalf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTripsThroughNormalize(t *testing.T) {
	for _, c := range []Canonical{"11987654321", "1133334444", "123", "5511987654321"} {
		if got := Normalize(Format(c)); got != c {
			t.Fatalf("Normalize(Format(%q)) = %q", c, got)
		}
	}
}

func TestPlan_FormatCustomLayout(t *testing.T) {
	p := DefaultPlan().WithLayout(2, 2, 5, 4)

	if got := p.Format("5511987654321"); got != "(55) 11-98765-4321" {
		t.Fatalf("unexpected format: %q", got)
	}
	if got := p.Format("11987654321"); got != "(11) 98765-4321" {
		t.Fatalf("default layout lost: %q", got)
	}
}

func TestPlan_FormatIgnoresInconsistentLayout(t *testing.T) {
	p := Plan{Layouts: map[int][]int{
		4: {2, 5},
		3: {3},
		5: {3, 0, 2},
	}}

	for _, c := range []Canonical{"1234", "123", "12345"} {
		if got := p.Format(c); got != string(c) {
			t.Fatalf("Format(%q) = %q, want identity", c, got)
		}
	}
}

func TestFormatE164(t *testing.T) {
	if got := FormatE164("5511987654321"); got != "+5511987654321" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatE164(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "11 98765 4321", want: "(11) 98765-4321"},
		{in: "11.3333.4444", want: "(11) 3333-4444"},
		{in: "+55 11 98765-4321", want: "+55 11 98765-4321"},
		{in: "n/a", want: "n/a"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := FormatInput(tt.in); got != tt.want {
			t.Fatalf("FormatInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
