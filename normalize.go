package bigdecimal

import "math/big"

// RemoveTrailingZeros returns d rescaled to the smallest scale greater than
// or equal to targetScale that is reachable by dividing the coefficient by
// ten with a zero remainder. The numeric value never changes; only
// redundant trailing zeros are stripped, and the scale never crosses below
// targetScale.
//
// The removable zero count is located by binary search over the scale
// interval, which is logarithmic in the number of trailing zeros. Division
// results carry many padding zeros, so this beats the naive one-by-one
// strip. Also see method [Decimal.Reduce].
func (d Decimal) RemoveTrailingZeros(targetScale int) Decimal {
	if targetScale < MinScale {
		targetScale = MinScale
	}
	if targetScale >= d.Scale() {
		return d
	}
	if d.IsZero() {
		// "0" has no trailing zeros, so the scale never drops below zero.
		f, _ := newDecimal(false, new(big.Int), min(d.Scale(), max(targetScale, 0)), 0)
		return f
	}

	coef := new(big.Int).Set(&d.coef)
	scale := d.Scale()
	low, high := targetScale, scale
	for low < high {
		// An odd coefficient is never divisible by ten.
		if isOdd(coef) {
			low = scale
			break
		}
		// Floor midpoint, also for negative scales.
		mid := low + (high-low)/2
		q, r := quoRem10(coef, scale-mid)
		if r.Sign() == 0 {
			coef, scale = q, mid
			high = mid
		} else {
			low = mid + 1
		}
	}
	// The search can converge one digit short of the last removable zero.
	if scale > targetScale {
		q, r := quoRem10(coef, 1)
		if r.Sign() == 0 {
			coef, scale = q, scale-1
		}
	}

	f, _ := newDecimal(d.neg, coef, scale, 0)
	return f
}

// Reduce returns d with all trailing zeros removed from the coefficient.
// Reducing 1.7900 yields 1.79, and reducing 17900 yields 179 with
// a scale of -2.
func (d Decimal) Reduce() Decimal {
	return d.RemoveTrailingZeros(MinScale)
}
