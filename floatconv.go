package bigdecimal

import (
	"math"
	"math/big"
)

// NewFromFloat64 returns a decimal holding the exact value of f.
// Every finite binary floating-point value has a finite decimal expansion,
// so the conversion never rounds: NewFromFloat64(0.1) yields the 55-digit
// decimal the bits of 0.1 actually represent. Round the result when the
// shortest representation is wanted instead.
//
// NewFromFloat64 returns an error if f is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	s, ok := exactDecimalString(f)
	if !ok {
		return Decimal{}, ErrInvalidArgument.New("cannot convert %v to a decimal", f)
	}
	return Parse(s)
}

// NewFromFloat32 returns a decimal holding the exact value of f.
// Also see function [NewFromFloat64].
func NewFromFloat32(f float32) (Decimal, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return Decimal{}, ErrInvalidArgument.New("cannot convert %v to a decimal", f)
	}
	return NewFromFloat64(float64(f))
}

// exactDecimalString returns the unique exact finite decimal expansion of
// f, or false for NaN and infinities.
// A finite float is coef * 2^-k for some k >= 0, and 2^-k has exactly k
// decimal digits, so rendering the exact rational with k fractional
// digits loses nothing.
func exactDecimalString(f float64) (string, bool) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return "", false
	}
	return r.FloatString(r.Denom().BitLen() - 1), true
}

// Float64 returns the binary floating-point value nearest to d, rounding
// ties to even. Values beyond the range of float64 overflow to an
// infinity; values too small for a denormal underflow to zero.
func (d Decimal) Float64() float64 {
	if d.IsZero() {
		return 0
	}
	frac, biased := d.floatParts(53, 11)
	bits := uint64(biased)<<52 | frac
	if d.neg {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}

// Float32 returns the binary floating-point value nearest to d, rounding
// ties to even.
// Also see method [Decimal.Float64].
func (d Decimal) Float32() float32 {
	if d.IsZero() {
		return 0
	}
	frac, biased := d.floatParts(24, 8)
	bits := uint32(biased)<<23 | uint32(frac)
	if d.neg {
		bits |= 1 << 31
	}
	return math.Float32frombits(bits)
}

// floatParts computes the fraction field and biased exponent of the
// binary floating-point value nearest to a nonzero d for a format with
// the given mantissa width (including the implicit bit) and exponent
// width.
//
// The decimal scale is eliminated algebraically with powers of five:
// coef * 10^-s equals (coef / 5^s) * 2^-s, so the scale only ever
// contributes a 5^|s| factor to one side of an integer division and a
// binary exponent shift, and no power of ten is materialized as a binary
// divisor. The quotient is brought to exactly mantBits bits and rounded
// to nearest-even on the remainder.
func (d Decimal) floatParts(mantBits, expBits int) (frac uint64, biased int) {
	bias := 1<<(expBits-1) - 1
	maxBiased := 1<<expBits - 1

	// Magnitude fast paths, so extreme scales never materialize the
	// corresponding power of five. The decimal exponent of the most
	// significant digit bounds the binary exponent within one digit.
	const log10of2 = 0.3010299956639812
	adjusted := d.Precision() - 1 - d.Scale()
	if adjusted > int(float64(bias+1)*log10of2)+1 {
		return 0, maxBiased
	}
	if adjusted < -int(float64(bias+mantBits)*log10of2)-2 {
		return 0, 0
	}

	var (
		num = new(big.Int).Set(&d.coef)
		den = big.NewInt(1)
		e2  int
	)
	switch s := d.Scale(); {
	case s > 0:
		den = new(big.Int).Set(pow5(s))
		e2 = -s
	case s < 0:
		num.Mul(num, pow5(-s))
		e2 = -s
	}

	// Bring the quotient to mantBits bits.
	shift := mantBits + den.BitLen() - num.BitLen()
	switch {
	case shift > 0:
		num.Lsh(num, uint(shift))
	case shift < 0:
		den.Lsh(den, uint(-shift))
	}
	e2 -= shift

	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(num, den, rem)
	if quo.BitLen() > mantBits {
		den.Lsh(den, 1)
		e2++
		quo.QuoRem(num, den, rem)
	}

	// Round to nearest, ties to even.
	switch doubled(rem).Cmp(den) {
	case 1:
		quo.Add(quo, big.NewInt(1))
	case 0:
		if isOdd(quo) {
			quo.Add(quo, big.NewInt(1))
		}
	}
	if quo.BitLen() > mantBits {
		quo.Rsh(quo, 1)
		e2++
	}

	mant := quo.Uint64()
	biased = e2 + mantBits - 1 + bias

	// Overflow to infinity.
	if biased >= maxBiased {
		return 0, maxBiased
	}

	// Underflow to a denormal or to zero.
	if biased <= 0 {
		mant = rshEven(mant, uint(1-biased))
		if mant == 1<<(mantBits-1) {
			// The denormal shift carried back into the normal range.
			return 0, 1
		}
		return mant, 0
	}

	return mant &^ (1 << (mantBits - 1)), biased
}

// rshEven shifts m right by s bits, rounding the discarded bits to
// nearest, ties to even.
func rshEven(m uint64, s uint) uint64 {
	switch {
	case s == 0:
		return m
	case s > 63:
		return 0
	}
	var (
		half = uint64(1) << (s - 1)
		rem  = m & (uint64(1)<<s - 1)
		quo  = m >> s
	)
	if rem > half || (rem == half && quo&1 == 1) {
		quo++
	}
	return quo
}
