package bigdecimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics on a computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics on a computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics on a computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics on a computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRoundToScale is like [Decimal.RoundToScale] but panics on
// a computing error.
func (d Decimal) MustRoundToScale(scale int, mode RoundingMode) Decimal {
	f, err := d.RoundToScale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRoundToScale(%v, %v) failed: %v", scale, mode, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics on a computing error.
func (d Decimal) MustSqrt() Decimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() of %v failed: %v", d, err))
	}
	return f
}
