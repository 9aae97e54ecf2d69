package bigdecimal

import (
	"math/big"
	"math/bits"
)

// divGuardDigits is the slack added to the scale-up multiplier in division
// so the final rounding step never consumes the requested digits. The value
// is an empirical tuning constant; the precision-bound tests verify its
// sufficiency.
const divGuardDigits = 4

// intDivGuardDigits is the slack added to the inflated precision used by
// [Decimal.QuoInt].
const intDivGuardDigits = 3

// Add returns the exact sum of d and e.
// The scale of the sum is the larger of the operand scales; a zero operand
// short-circuits, returning the other operand with its scale unchanged.
//
// Add returns an error if the result scale leaves [MinScale, MaxScale].
func (d Decimal) Add(e Decimal) (Decimal, error) {
	// Special case: zero operands
	if d.IsZero() {
		return e, nil
	}
	if e.IsZero() {
		return d, nil
	}

	// Alignment and scale
	var (
		dcoef = &d.coef
		ecoef = &e.coef
		scale = d.Scale()
	)
	switch {
	case e.scale < d.scale:
		ecoef = lsh10(ecoef, d.Scale()-e.Scale())
	case d.scale < e.scale:
		dcoef = lsh10(dcoef, e.Scale()-d.Scale())
		scale = e.Scale()
	}

	// Sign
	var neg bool
	if dcoef.Cmp(ecoef) >= 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	coef := new(big.Int)
	if d.neg != e.neg {
		coef.Sub(dcoef, ecoef)
		coef.Abs(coef)
	} else {
		coef.Add(dcoef, ecoef)
	}

	return newDecimal(neg, coef, scale, 0)
}

// Sub returns the exact difference of d and e.
// Also see method [Decimal.Add].
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the operand scales.
//
// Mul returns an error if the result scale leaves [MinScale, MaxScale].
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	scale := int64(d.scale) + int64(e.scale)
	switch {
	case scale > MaxScale:
		return Decimal{}, ErrOverflow.New("scale %d exceeds %d", scale, MaxScale)
	case scale < MinScale:
		return Decimal{}, ErrUnderflow.New("scale %d is below %d", scale, MinScale)
	}
	coef := new(big.Int).Mul(&d.coef, &e.coef)
	return newDecimal(d.neg != e.neg, coef, int(scale), 0)
}

// Pow returns d raised to the integer power exp, computed by squaring.
// Pow(0) returns 1 even for a zero receiver.
//
// Pow returns an error if the result scale leaves the valid range, or,
// for negative exponents, on the same conditions as [Decimal.Quo].
func (d Decimal) Pow(exp int) (Decimal, error) {
	// Special case: zero exponent
	if exp == 0 {
		return One, nil
	}
	// General case
	f, err := d.Pow(exp / 2)
	if err != nil {
		return Decimal{}, err
	}
	f, err = f.Mul(f)
	if err != nil {
		return Decimal{}, err
	}
	if exp%2 == 0 {
		return f, nil
	}
	if exp > 0 {
		return f.Mul(d)
	}
	return f.Quo(d)
}

// clampScale pins a 64-bit scale computation into the valid range.
func clampScale(scale int64) int {
	switch {
	case scale > MaxScale:
		return MaxScale
	case scale < MinScale:
		return MinScale
	}
	return int(scale)
}

// Quo returns the quotient of d and e computed to the default precision
// with the default rounding mode from the package configuration.
// Also see method [Decimal.QuoRound].
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	prec, mode := Defaults()
	return d.QuoRound(e, prec, mode)
}

// QuoRound returns the quotient of d and e with at most prec significant
// digits, rounded with the given mode.
//
// The quotient is computed by a single truncating division of the dividend
// scaled up by enough guard digits, rounded back to prec digits when the
// division produced more, and finally normalized toward the preferred
// scale d.Scale() - e.Scale() so padding zeros introduced by the scale-up
// are stripped without changing the value.
//
// QuoRound returns an error if:
//   - e is zero;
//   - prec is not positive;
//   - mode is [RoundUnnecessary] and the quotient is inexact;
//   - the result scale leaves the valid range.
func (d Decimal) QuoRound(e Decimal, prec int, mode RoundingMode) (Decimal, error) {
	if prec < 1 {
		return Decimal{}, ErrInvalidArgument.New("precision %d is not positive", prec)
	}

	// Special case: zero divisor
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("%v / %v", d, e)
	}

	// Special case: zero dividend
	preferred := int64(d.scale) - int64(e.scale)
	if d.IsZero() {
		return newDecimal(false, new(big.Int), clampScale(preferred), 0)
	}

	// Scale-up multiplier, with guard digits for the final rounding step,
	// clamped so the working scale d.scale + mult - e.scale stays valid.
	mult := prec + e.Precision() - d.Precision() + divGuardDigits
	if mult < 0 {
		mult = 0
	}
	if m := int64(d.scale) + int64(mult) - int64(e.scale); m > MaxScale {
		mult -= int(m - MaxScale)
		if mult < 0 {
			mult = 0
		}
	}

	num := lsh10(&d.coef, mult)
	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(num, &e.coef, rem)

	neg := d.neg != e.neg
	if mode == RoundUnnecessary && rem.Sign() != 0 {
		return Decimal{}, ErrRoundingRequired.New("%v / %v is inexact", d, e)
	}

	scale := int64(d.scale) + int64(mult) - int64(e.scale)
	switch {
	case scale > MaxScale:
		return Decimal{}, ErrOverflow.New("scale %d exceeds %d", scale, MaxScale)
	case scale < MinScale:
		return Decimal{}, ErrUnderflow.New("scale %d is below %d", scale, MinScale)
	}
	f, err := newDecimal(neg, quo, int(scale), 0)
	if err != nil {
		return Decimal{}, err
	}
	if f.Precision() > prec {
		f, err = f.RoundToPrecision(prec, mode)
		if err != nil {
			return Decimal{}, err
		}
	}
	return f.RemoveTrailingZeros(clampScale(preferred)), nil
}

// QuoInt returns the integral part of the quotient of d and e, truncated
// toward zero, at a scale no smaller than d.Scale() - e.Scale().
//
// QuoInt returns an error if e is zero or the result scale leaves the
// valid range.
func (d Decimal) QuoInt(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero.New("%v div %v", d, e)
	}

	target := clampScale(int64(d.scale) - int64(e.scale))

	// Special case: |d| < |e| yields exactly zero.
	if d.Abs().Cmp(e.Abs()) < 0 {
		return newDecimal(false, new(big.Int), max(target, 0), 0)
	}

	abs := target
	if abs < 0 {
		abs = -abs
	}
	prec := d.Precision() + 3*e.Precision() + abs + intDivGuardDigits
	f, err := d.QuoRound(e, prec, RoundDown)
	if err != nil {
		return Decimal{}, err
	}
	if f.Scale() > 0 {
		f, err = f.Trunc(0)
		if err != nil {
			return Decimal{}, err
		}
	}
	if f.Scale() < target {
		f, err = f.RoundToScale(target, RoundUnnecessary)
		if err != nil {
			return Decimal{}, err
		}
	}
	return f, nil
}

// Rem returns the remainder of d and e such that d = QuoInt(d, e)*e + Rem(d, e).
// The sign of a nonzero remainder matches the sign of d.
//
// Rem returns an error if e is zero or any intermediate scale leaves the
// valid range.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	q, err := d.QuoInt(e)
	if err != nil {
		return Decimal{}, err
	}
	p, err := q.Mul(e)
	if err != nil {
		return Decimal{}, err
	}
	return d.Sub(p)
}

// QuoRem returns the integral quotient and the remainder of d and e such
// that d = q*e + r.
// Also see methods [Decimal.QuoInt] and [Decimal.Rem].
func (d Decimal) QuoRem(e Decimal) (q, r Decimal, err error) {
	q, err = d.QuoInt(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	p, err := q.Mul(e)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	r, err = d.Sub(p)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, r, nil
}

// Inv returns 1/d computed to the default precision with the default
// rounding mode from the package configuration.
func (d Decimal) Inv() (Decimal, error) {
	prec, mode := Defaults()
	return d.InvPrec(prec, mode)
}

// InvPrec returns 1/d with at most prec significant digits, rounded with
// the given mode.
// Also see method [Decimal.QuoRound].
func (d Decimal) InvPrec(prec int, mode RoundingMode) (Decimal, error) {
	return One.QuoRound(d, prec, mode)
}

// Sqrt returns the square root of d computed to the default precision
// from the package configuration.
func (d Decimal) Sqrt() (Decimal, error) {
	prec, _ := Defaults()
	return d.SqrtPrec(prec)
}

// SqrtPrec returns the square root of d with at most prec significant
// digits.
//
// The root is seeded with the integer square root of the coefficient
// scaled up to 2*prec digits and refined by Newton-Raphson iteration at
// twice the requested precision. The step count is fixed up front: every
// step at least doubles the number of correct digits, so a count
// logarithmic in prec reaches the working precision from any seed. The
// final value is rounded to prec digits and trailing padding zeros are
// stripped.
//
// SqrtPrec returns an error if d is negative or prec is not positive.
func (d Decimal) SqrtPrec(prec int) (Decimal, error) {
	if prec < 1 {
		return Decimal{}, ErrInvalidArgument.New("precision %d is not positive", prec)
	}
	if d.IsNeg() {
		return Decimal{}, ErrInvalidArgument.New("square root of negative value %v", d)
	}
	// Special case: zero
	if d.IsZero() {
		return Zero, nil
	}

	r, err := d.sqrtSeed(prec)
	if err != nil {
		return Decimal{}, err
	}

	// Newton-Raphson: r = (r + d/r) / 2
	for i := sqrtSteps(prec); i > 0; i-- {
		q, err := d.QuoRound(r, 2*prec, RoundHalfEven)
		if err != nil {
			return Decimal{}, err
		}
		s, err := r.Add(q)
		if err != nil {
			return Decimal{}, err
		}
		next, err := Half.Mul(s)
		if err != nil {
			return Decimal{}, err
		}
		if next.Cmp(r) == 0 {
			break
		}
		r = next
	}

	r, err = r.RoundToPrecision(prec, RoundHalfEven)
	if err != nil {
		return Decimal{}, err
	}
	return r.RemoveTrailingZeros(min(d.Scale(), d.Scale()/2)), nil
}

// sqrtSteps returns the Newton-Raphson iteration count for the given
// precision. Each step at least doubles the correct digits and the seed
// can start as low as one correct digit, so log2(2*prec) steps plus
// slack always reach the 2*prec working precision.
func sqrtSteps(prec int) int {
	return bits.Len(uint(2*prec)) + 2
}

// sqrtSeed returns the Newton-Raphson starting point: the integer square
// root of the coefficient scaled up by an even-parity multiplier, so the
// seed's scale is exactly representable.
func (d Decimal) sqrtSeed(prec int) (Decimal, error) {
	mult := 2*prec - d.Scale()
	if mult < 0 {
		mult = 0
	}
	if (d.Scale()+mult)%2 != 0 {
		mult++
	}
	root := new(big.Int).Sqrt(lsh10(&d.coef, mult))
	return newDecimal(false, root, (d.Scale()+mult)/2, 0)
}
