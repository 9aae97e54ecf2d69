package bigdecimal

import (
	"math"
	"math/big"
	"strings"
)

// Parse converts a string to an exact decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1,000,000.99
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	group          ::= ',' digits
//	significand    ::= digits { group } ['.' digits] | '.' digits | digits '.'
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Group separators between digits are ignored; a second decimal point is
// an error. The scale of the result equals the number of digits after the
// decimal point minus the exponent, so Parse("1.790") keeps a scale of 3.
//
// Parse returns an error:
//   - if the string does not represent a valid decimal number;
//   - if the resulting scale is outside [MinScale, MaxScale].
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		hascoef bool
		haspnt  bool
		eneg    bool
		exp     int64
		hasexp  bool
		hase    bool
		fracs   int64
		digits  []byte
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Significand
	for pos < width {
		c := s[pos]
		switch {
		case c >= '0' && c <= '9':
			hascoef = true
			digits = append(digits, c)
			if haspnt {
				fracs++
			}
		case c == '.':
			if haspnt {
				return Decimal{}, ErrParse.New("second decimal point at position %d in %q", pos, s)
			}
			haspnt = true
		case c == ',':
			// Group separators appear only between digits.
			if !hascoef || haspnt || pos+1 >= width || s[pos+1] < '0' || s[pos+1] > '9' {
				return Decimal{}, ErrParse.New("misplaced group separator at position %d in %q", pos, s)
			}
		default:
			goto exponent
		}
		pos++
	}

exponent:
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int64(s[pos]-'0')
			if exp > math.MaxInt32 {
				// Same classes as the scale check below: a negative
				// exponent drives the scale past MaxScale, a positive
				// one drives it below MinScale.
				if eneg {
					return Decimal{}, ErrOverflow.New("exponent in %q is out of range", s)
				}
				return Decimal{}, ErrUnderflow.New("exponent in %q is out of range", s)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, ErrParse.New("invalid character %q at position %d in %q", s[pos], pos, s)
	}
	if !hascoef {
		return Decimal{}, ErrParse.New("no coefficient in %q", s)
	}
	if hase && !hasexp {
		return Decimal{}, ErrParse.New("no exponent digits in %q", s)
	}

	if eneg {
		exp = -exp
	}
	scale := fracs - exp
	switch {
	case scale > MaxScale:
		return Decimal{}, ErrOverflow.New("scale %d exceeds %d", scale, MaxScale)
	case scale < MinScale:
		return Decimal{}, ErrUnderflow.New("scale %d is below %d", scale, MinScale)
	}

	coef, ok := new(big.Int).SetString(string(digits), 10)
	if !ok {
		return Decimal{}, ErrParse.New("invalid coefficient in %q", s)
	}
	return newDecimal(neg, coef, int(scale), 0)
}

// TryParse is like [Parse], but reports failure with a boolean instead of
// an error, so speculative parsing of untrusted text never requires
// failure handling at the call site.
func TryParse(s string) (Decimal, bool) {
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, false
	}
	return d, true
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic("MustParse(" + s + ") failed: " + err.Error())
	}
	return d
}

// translateSeparators rewrites custom decimal and group separators into
// the invariant '.' and ',' forms expected by [Parse].
func translateSeparators(s string, decSep, groupSep rune) (string, error) {
	if decSep == groupSep {
		return "", ErrInvalidArgument.New("decimal separator %q equals group separator %q", decSep, groupSep)
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case decSep:
			return '.'
		case groupSep:
			return ','
		case '.', ',':
			// The invariant separators have no meaning in this locale.
			return 0xFFFD
		}
		return r
	}, s), nil
}

// ParseSep is like [Parse] but reads the given decimal and group
// separators instead of the invariant '.' and ','.
func ParseSep(s string, decSep, groupSep rune) (Decimal, error) {
	t, err := translateSeparators(s, decSep, groupSep)
	if err != nil {
		return Decimal{}, err
	}
	return Parse(t)
}

// TryParseSep is like [ParseSep], but reports failure with a boolean
// instead of an error.
func TryParseSep(s string, decSep, groupSep rune) (Decimal, bool) {
	d, err := ParseSep(s, decSep, groupSep)
	if err != nil {
		return Decimal{}, false
	}
	return d, true
}
