package payx

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "10", want: "10"},
		{input: "10.5", want: "10.5"},
		{input: "0.0001", want: "0.0001"},
		{input: "0", want: "0"},
		{input: "-1", wantErr: true},
		{input: "1e3", wantErr: true},
		{input: "1E3", wantErr: true},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) should fail", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a, b := A(0.1), A(0.2)

	if got := a.Add(b).String(); got != "0.3" {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
	if got := b.Sub(a).String(); got != "0.1" {
		t.Errorf("0.2 - 0.1 = %s, want 0.1", got)
	}
	if !a.Neg().IsNegative() {
		t.Error("Neg(0.1) should be negative")
	}
	if !a.IsPositive() || a.Neg().IsPositive() {
		t.Error("IsPositive should hold for 0.1 and not for -0.1")
	}
	if !a.LessThan(b) || b.LessThan(a) {
		t.Error("0.1 should be less than 0.2")
	}
	if !A(0).GreaterThanOrEqual(A(0)) {
		t.Error("0 should be greater than or equal to 0")
	}
}

func TestAmount_Format(t *testing.T) {
	if got := A(1234.5).Format("USD"); got != "$1,234.50" {
		t.Errorf("Format(USD) = %q, want %q", got, "$1,234.50")
	}
}
