// Package units formats plan lengths as feet and inch fractions,
// e.g. 1.5 → 1 1/2" and 52.25 → 4'4 1/4".
package units

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultPrecision rounds lengths to the nearest 1/16 inch
const DefaultPrecision = 16

// FeetThreshold is the smallest length (in inches) shown with a feet part
const FeetThreshold = 48

// Fraction is a rounded length split into whole and fractional parts.
// Num/Den is reduced; Num is zero when there is no fractional part.
type Fraction struct {
	Negative bool
	Whole    int64
	Num      int64
	Den      int64
}

// ToFraction rounds v to the nearest 1/precision and reduces the remainder
func ToFraction(v float64, precision int) Fraction {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	steps := int64(math.Round(math.Abs(v) * float64(precision)))
	r := big.NewRat(steps, int64(precision))
	num := r.Num().Int64()
	den := r.Denom().Int64()
	return Fraction{
		Negative: v < 0 && steps != 0,
		Whole:    num / den,
		Num:      num % den,
		Den:      den,
	}
}

// String renders the fraction without a unit mark ("1 1/2", "3/8", "2", "0")
func (f Fraction) String() string {
	var b strings.Builder
	if f.Negative {
		b.WriteByte('-')
	}
	switch {
	case f.Num == 0:
		fmt.Fprintf(&b, "%d", f.Whole)
	case f.Whole == 0:
		fmt.Fprintf(&b, "%d/%d", f.Num, f.Den)
	default:
		fmt.Fprintf(&b, "%d %d/%d", f.Whole, f.Num, f.Den)
	}
	return b.String()
}

// Formatter turns plan lengths into display strings
type Formatter struct {
	// Scale converts plan units to inches
	Scale float64
	// Precision is the fraction denominator used for rounding
	Precision int
	// UseFeet switches lengths of FeetThreshold inches or more to feet + inches
	UseFeet bool
}

// DefaultFormatter treats one plan unit as one inch and shows feet
var DefaultFormatter = Formatter{Scale: 1, Precision: DefaultPrecision, UseFeet: true}

// Format formats a plan length
func (f Formatter) Format(length float64) string {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}
	return FormatInches(length*scale, f.UseFeet, f.Precision)
}

// FormatInches formats a length in inches as `5 3/16"` or, with useFeet and
// at least FeetThreshold inches, as `4'5 3/16"`. The value is rounded before
// splitting off feet, so a remainder never rounds up to 12".
func FormatInches(inches float64, useFeet bool, precision int) string {
	frac := ToFraction(inches, precision)
	if frac.Whole == 0 && frac.Num == 0 {
		return `0"`
	}

	if useFeet && !frac.Negative && inches >= FeetThreshold {
		feet := frac.Whole / 12
		rest := Fraction{Whole: frac.Whole % 12, Num: frac.Num, Den: frac.Den}
		if rest.Whole == 0 && rest.Num == 0 {
			return fmt.Sprintf("%d'", feet)
		}
		return fmt.Sprintf("%d'%s\"", feet, rest)
	}

	return frac.String() + `"`
}
