package units

import "testing"

func TestToFraction(t *testing.T) {
	tests := []struct {
		in   float64
		want Fraction
	}{
		{1.5, Fraction{Whole: 1, Num: 1, Den: 2}},
		{0.375, Fraction{Whole: 0, Num: 3, Den: 8}},
		{2, Fraction{Whole: 2, Num: 0, Den: 1}},
		{2.03, Fraction{Whole: 2, Num: 0, Den: 1}},
		{2.04, Fraction{Whole: 2, Num: 1, Den: 16}},
		{-1.25, Fraction{Negative: true, Whole: 1, Num: 1, Den: 4}},
	}
	for _, tt := range tests {
		if got := ToFraction(tt.in, 16); got != tt.want {
			t.Errorf("ToFraction(%v) failed: expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestFormatInches(t *testing.T) {
	tests := []struct {
		in      float64
		useFeet bool
		want    string
	}{
		{0, true, `0"`},
		{0.01, false, `0"`},
		{0.5, false, `1/2"`},
		{1.5, true, `1 1/2"`},
		{12, false, `12"`},
		{47.5, true, `47 1/2"`},
		{48, true, `4'`},
		{52.25, true, `4'4 1/4"`},
		{60.5, true, `5'1/2"`},
		{59.999, true, `5'`},
		{52.25, false, `52 1/4"`},
		{-2.5, false, `-2 1/2"`},
	}
	for _, tt := range tests {
		if got := FormatInches(tt.in, tt.useFeet, DefaultPrecision); got != tt.want {
			t.Errorf("FormatInches(%v, %v) failed: expected %s, got %s", tt.in, tt.useFeet, tt.want, got)
		}
	}
}

func TestFormatterScale(t *testing.T) {
	f := Formatter{Scale: 12, Precision: 16, UseFeet: true}
	if got := f.Format(4.5); got != `4'6"` {
		t.Errorf("Format failed: expected 4'6\", got %s", got)
	}
	if got := DefaultFormatter.Format(1.5); got != `1 1/2"` {
		t.Errorf("DefaultFormatter failed: got %s", got)
	}
}
