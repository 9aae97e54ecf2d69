package bigdecimal

import (
	"strconv"
	"strings"
)

// PlainString returns the decimal in positional notation, never using an
// exponent. Values with a scale outside the digit count are zero-padded,
// so MustNew(5, 8).PlainString() is "0.00000005" and MustNew(5, -3) is
// "5000".
//
// For a non-negative scale, parsing the returned string restores the
// exact coefficient and scale of d. A negative scale renders its padding
// zeros into the coefficient, so only the numeric value survives the
// round trip; [Decimal.String] switches to scientific notation to keep
// the representation exact.
func (d Decimal) PlainString() string {
	var b strings.Builder
	digits := d.coef.String()
	scale := d.Scale()

	if d.neg {
		b.WriteByte('-')
	}
	switch {
	case scale <= 0:
		b.WriteString(digits)
		for i := 0; i < -scale; i++ {
			b.WriteByte('0')
		}
	case scale >= len(digits):
		b.WriteString("0.")
		for i := 0; i < scale-len(digits); i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	default:
		b.WriteString(digits[:len(digits)-scale])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-scale:])
	}
	return b.String()
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the decimal value.
//
// The notation follows the conventional floating-point display threshold:
// positional notation is used when the scale is non-negative and the
// adjusted exponent (digit count - 1 - scale) is at least -6; otherwise
// the value is rendered in scientific notation with the configured
// exponent delimiter.
//
// The round-trip invariant holds for both notations: parsing the returned
// string restores the exact coefficient and scale of d.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	adjusted := d.Precision() - 1 - d.Scale()
	if d.scale >= 0 && adjusted >= -6 {
		return d.PlainString()
	}
	return d.SciString()
}

// SciString returns the decimal in scientific notation: a single leading
// digit, the remaining digits as the fraction, the configured exponent
// delimiter, and a signed exponent.
func (d Decimal) SciString() string {
	var b strings.Builder
	digits := d.coef.String()
	adjusted := len(digits) - 1 - d.Scale()
	if d.IsZero() {
		adjusted = -d.Scale()
	}

	if d.neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte(ExponentDelimiter())
	if adjusted >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(adjusted))
	return b.String()
}

// StringSep returns the decimal in positional notation with the given
// decimal separator and, unless groupSep is zero, the integer part grouped
// in threes by groupSep.
func (d Decimal) StringSep(decSep, groupSep rune) string {
	var b strings.Builder
	plain := d.PlainString()

	intpart, fracpart := plain, ""
	if i := strings.IndexByte(plain, '.'); i >= 0 {
		intpart, fracpart = plain[:i], plain[i+1:]
	}
	if d.neg {
		b.WriteByte('-')
		intpart = intpart[1:]
	}
	if groupSep == 0 {
		b.WriteString(intpart)
	} else {
		for i, c := range []byte(intpart) {
			if i > 0 && (len(intpart)-i)%3 == 0 {
				b.WriteRune(groupSep)
			}
			b.WriteByte(c)
		}
	}
	if fracpart != "" {
		b.WriteRune(decSep)
		b.WriteString(fracpart)
	}
	return b.String()
}
