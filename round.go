package bigdecimal

import "math/big"

// RoundingMode determines how the discarded remainder of a truncating
// division affects the magnitude of the quotient.
type RoundingMode uint8

const (
	// RoundUp rounds away from zero if the remainder is nonzero.
	RoundUp RoundingMode = iota

	// RoundDown truncates toward zero, never incrementing.
	RoundDown

	// RoundCeiling rounds toward positive infinity.
	RoundCeiling

	// RoundFloor rounds toward negative infinity.
	RoundFloor

	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp

	// RoundHalfDown rounds to the nearest neighbor, ties toward zero.
	RoundHalfDown

	// RoundHalfEven rounds to the nearest neighbor, ties to the even
	// neighbor (banker's rounding).
	RoundHalfEven

	// RoundUnnecessary asserts the operation is exact and fails with
	// [ErrRoundingRequired] if the remainder is nonzero.
	RoundUnnecessary
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundHalfEven:
		return "half-even"
	case RoundUnnecessary:
		return "unnecessary"
	}
	return "unknown"
}

// increments reports whether a truncating division with the given nonzero
// remainder must increment the magnitude of the quotient.
// The quotient and remainder are magnitudes; sign is the sign of the final
// result.
func (m RoundingMode) increments(quo, rem, divisor *big.Int, sign int) (bool, error) {
	if rem.Sign() == 0 {
		return false, nil
	}
	switch m {
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return sign >= 0, nil
	case RoundFloor:
		return sign <= 0, nil
	case RoundHalfUp:
		return doubled(rem).Cmp(divisor) >= 0, nil
	case RoundHalfDown:
		return doubled(rem).Cmp(divisor) > 0, nil
	case RoundHalfEven:
		switch doubled(rem).Cmp(divisor) {
		case 1:
			return true, nil
		case 0:
			return isOdd(quo), nil
		}
		return false, nil
	case RoundUnnecessary:
		return false, ErrRoundingRequired.New("rounding mode %v with nonzero remainder", m)
	}
	return false, ErrInvalidArgument.New("unknown rounding mode %d", m)
}

// RoundToScale returns d rescaled to the given scale.
// Reducing the scale divides the coefficient by a power of ten and applies
// the rounding mode to the discarded remainder. Increasing the scale
// multiplies the coefficient by a power of ten, which is always exact.
//
// RoundToScale returns an error if the scale is outside
// [MinScale, MaxScale], or if mode is [RoundUnnecessary] and the
// operation is inexact.
func (d Decimal) RoundToScale(scale int, mode RoundingMode) (Decimal, error) {
	switch {
	case scale > MaxScale:
		return Decimal{}, ErrOverflow.New("scale %d exceeds %d", scale, MaxScale)
	case scale < MinScale:
		return Decimal{}, ErrUnderflow.New("scale %d is below %d", scale, MinScale)
	}

	switch {
	case scale == d.Scale():
		return d, nil
	case scale > d.Scale():
		coef := lsh10(&d.coef, scale-d.Scale())
		return newDecimal(d.neg, coef, scale, 0)
	}

	divisor := pow10(d.Scale() - scale)
	quo, rem := new(big.Int), new(big.Int)
	quo.QuoRem(&d.coef, divisor, rem)

	incr, err := mode.increments(quo, rem, divisor, d.Sign())
	if err != nil {
		return Decimal{}, err
	}
	if incr {
		quo.Add(quo, big.NewInt(1))
	}
	return newDecimal(d.neg, quo, scale, 0)
}

// Round returns d rescaled to the given scale using the default rounding
// mode from the package configuration.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
func (d Decimal) Round(scale int) (Decimal, error) {
	return d.RoundToScale(scale, DefaultRoundingMode())
}

// Trunc returns d truncated toward zero to the given scale.
// Also see method [Decimal.Reduce].
func (d Decimal) Trunc(scale int) (Decimal, error) {
	return d.RoundToScale(scale, RoundDown)
}

// Ceil returns d rounded toward positive infinity to the given scale.
// Also see method [Decimal.Floor].
func (d Decimal) Ceil(scale int) (Decimal, error) {
	return d.RoundToScale(scale, RoundCeiling)
}

// Floor returns d rounded toward negative infinity to the given scale.
// Also see method [Decimal.Ceil].
func (d Decimal) Floor(scale int) (Decimal, error) {
	return d.RoundToScale(scale, RoundFloor)
}

// RoundToPrecision returns d rounded to at most prec significant digits.
// Values already within prec digits are returned unchanged, preserving
// their exact representation.
//
// RoundToPrecision returns an error if prec is not positive or the
// resulting scale leaves the valid range.
func (d Decimal) RoundToPrecision(prec int, mode RoundingMode) (Decimal, error) {
	if prec < 1 {
		return Decimal{}, ErrInvalidArgument.New("precision %d is not positive", prec)
	}
	digits := d.Precision()
	if digits <= prec || d.IsZero() {
		return d, nil
	}
	f, err := d.RoundToScale(d.Scale()-(digits-prec), mode)
	if err != nil {
		return Decimal{}, err
	}
	// Rounding may carry into an extra digit, e.g. 999 -> 1000.
	if f.Precision() > prec {
		f, err = f.RoundToScale(f.Scale()-1, mode)
		if err != nil {
			return Decimal{}, err
		}
	}
	return f, nil
}
