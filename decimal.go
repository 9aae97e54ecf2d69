package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
)

// Decimal type is a representation of a finite arbitrary-precision decimal
// number.
// The zero value is the numeric value of 0.
// Decimals are immutable: every producing operation returns a new value,
// so they are safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three significant parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: the absolute unscaled value of the decimal without
//     the decimal point.
//
// The numeric value of a decimal equals coefficient multiplied by ten to the
// power of negative scale. A positive scale counts fractional digits, while
// a negative scale multiplies the coefficient by a power of ten.
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45, and the same coefficient with a scale of -2
// represents 1234500.
// Such approach allows for multiple representations of the same numerical
// value. For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// One important aspect of the decimal is that it does not support
// special values such as NaN, Infinity, or signed zeros.
type Decimal struct {
	neg   bool    // indicates whether the decimal is negative
	scale int32   // the position of the floating decimal point
	prec  int32   // cached number of digits in the coefficient, 0 if not yet computed
	coef  big.Int // the absolute value of the coefficient
}

const (
	// MaxScale is the largest allowed scale.
	// The bound keeps 10^|scale| well inside the capacity of the
	// coefficient's limb storage on 32-bit and 64-bit platforms.
	MaxScale = math.MaxInt32 / 8

	// MinScale is the smallest allowed scale.
	MinScale = -MaxScale
)

// Commonly used values, precomputed once at package initialization.
// They are shared and must be treated as read-only.
var (
	MinusOne = MustNew(-1, 0)
	Zero     = MustNew(0, 0)
	One      = MustNew(1, 0)
	Two      = MustNew(2, 0)
	Ten      = MustNew(10, 0)
	Half     = MustNew(5, 1)
	OneTenth = MustNew(1, 1)
)

// newDecimal assembles a decimal from a non-negative coefficient.
// The coefficient is adopted, not copied; the caller must not retain it.
func newDecimal(neg bool, coef *big.Int, scale, prec int) (Decimal, error) {
	switch {
	case scale > MaxScale:
		return Decimal{}, ErrOverflow.New("scale %d exceeds %d", scale, MaxScale)
	case scale < MinScale:
		return Decimal{}, ErrUnderflow.New("scale %d is below %d", scale, MinScale)
	}
	if coef.Sign() == 0 {
		neg = false
		prec = 0
	}
	d := Decimal{neg: neg, scale: int32(scale), prec: int32(prec)}
	d.coef.Set(coef)
	return d, nil
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is less than [MinScale] or greater
// than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	neg := coef < 0
	b := new(big.Int).SetInt64(coef)
	return newDecimal(neg, b.Abs(b), scale, 0)
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromInt64 returns a decimal equal to v with a scale of 0.
func NewFromInt64(v int64) Decimal {
	return MustNew(v, 0)
}

// NewFromInt32 returns a decimal equal to v with a scale of 0.
func NewFromInt32(v int32) Decimal {
	return MustNew(int64(v), 0)
}

// NewFromUint64 returns a decimal equal to v with a scale of 0.
func NewFromUint64(v uint64) Decimal {
	d, _ := newDecimal(false, new(big.Int).SetUint64(v), 0, 0)
	return d
}

// NewFromUint32 returns a decimal equal to v with a scale of 0.
func NewFromUint32(v uint32) Decimal {
	return NewFromUint64(uint64(v))
}

// NewFromBigInt returns a decimal equal to unscaled / 10^scale.
// The unscaled value is copied, so later modifications of the argument
// do not affect the result.
//
// NewFromBigInt returns an error if scale is less than [MinScale] or
// greater than [MaxScale].
func NewFromBigInt(unscaled *big.Int, scale int) (Decimal, error) {
	abs := new(big.Int).Abs(unscaled)
	return newDecimal(unscaled.Sign() < 0, abs, scale, 0)
}

// Scale returns the position of the decimal point within the coefficient.
// A negative scale means the coefficient is implicitly multiplied by
// a power of ten.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// UnscaledValue returns a copy of the signed coefficient of d.
func (d Decimal) UnscaledValue() *big.Int {
	b := new(big.Int).Set(&d.coef)
	if d.neg {
		b.Neg(b)
	}
	return b
}

// Precision returns the number of digits in the coefficient.
// The count is derived from the coefficient's bit length on first use;
// the cached value is a hint only and never part of the value's identity.
func (d Decimal) Precision() int {
	if d.prec > 0 {
		return int(d.prec)
	}
	return numDigits(&d.coef)
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal value with the same
// scale, i.e. 10^-scale.
func (d Decimal) ULP() Decimal {
	u, _ := newDecimal(false, big.NewInt(1), d.Scale(), 1)
	return u
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef.Sign() == 0:
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && d.coef.Sign() != 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef.Sign() == 0
}

// IsInt returns true if the fractional part of d is zero.
func (d Decimal) IsInt() bool {
	if d.scale <= 0 || d.IsZero() {
		return true
	}
	_, r := quoRem10(&d.coef, d.Scale())
	return r.Sign() == 0
}

// IsOne returns true if d == -1 or d == 1.
func (d Decimal) IsOne() bool {
	return d.coef.Sign() != 0 && d.Abs().Cmp(One) == 0
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	f, _ := newDecimal(!d.neg, new(big.Int).Set(&d.coef), d.Scale(), int(d.prec))
	return f
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	f, _ := newDecimal(false, new(big.Int).Set(&d.coef), d.Scale(), int(d.prec))
	return f
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Zero operands compare by sign only, so 0, 0.0, and 0.000 are all equal.
func (d Decimal) Cmp(e Decimal) int {
	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.Sign() == 0:
		return 0
	}

	// General case: align to the larger scale and compare coefficients
	dcoef, ecoef := &d.coef, &e.coef
	switch {
	case e.scale < d.scale:
		ecoef = lsh10(ecoef, d.Scale()-e.Scale())
	case d.scale < e.scale:
		dcoef = lsh10(dcoef, e.Scale()-d.Scale())
	}
	switch dcoef.Cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -d.Sign()
	}
	return 0
}

// CmpTotal compares the representation of d and e and returns:
//
//	-1 if d < e
//	-1 if d == e && d.scale > e.scale
//	 0 if d == e && d.scale == e.scale
//	+1 if d == e && d.scale < e.scale
//	+1 if d > e
//
// Also see method [Decimal.Cmp].
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case e.scale < d.scale:
		return -1
	case d.scale < e.scale:
		return 1
	}
	return 0
}

// Equal returns true if d and e are numerically equal, regardless of their
// representation. Use [Decimal.CmpTotal] to compare representations.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d is numerically less than e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Max returns the maximum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Max(e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns the minimum of d and e.
// Also see method [Decimal.CmpTotal].
func (d Decimal) Min(e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// truncInt returns the signed integral part of d, truncated toward zero.
// The width check fails early so a huge negative scale cannot force
// materialization of an enormous integer.
func (d Decimal) truncInt() (*big.Int, error) {
	if d.Precision()-d.Scale() > 21 {
		return nil, ErrConversionOverflow.New("%v does not fit a fixed-width integer", d)
	}
	var b *big.Int
	switch {
	case d.scale > 0:
		b, _ = quoRem10(&d.coef, d.Scale())
	case d.scale < 0:
		b = lsh10(&d.coef, -d.Scale())
	default:
		b = new(big.Int).Set(&d.coef)
	}
	if d.neg {
		b.Neg(b)
	}
	return b, nil
}

// Int64 returns the integral part of d truncated toward zero.
//
// Int64 returns an error if the integral part does not fit int64.
func (d Decimal) Int64() (int64, error) {
	b, err := d.truncInt()
	if err != nil {
		return 0, err
	}
	if !b.IsInt64() {
		return 0, ErrConversionOverflow.New("%v does not fit int64", d)
	}
	return b.Int64(), nil
}

// Int32 returns the integral part of d truncated toward zero.
//
// Int32 returns an error if the integral part does not fit int32.
func (d Decimal) Int32() (int32, error) {
	i, err := d.Int64()
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, ErrConversionOverflow.New("%v does not fit int32", d)
	}
	return int32(i), nil
}

// Uint64 returns the integral part of d truncated toward zero.
//
// Uint64 returns an error if d is negative or the integral part does not
// fit uint64.
func (d Decimal) Uint64() (uint64, error) {
	if d.IsNeg() {
		return 0, ErrConversionOverflow.New("%v does not fit uint64", d)
	}
	b, err := d.truncInt()
	if err != nil {
		return 0, err
	}
	if !b.IsUint64() {
		return 0, ErrConversionOverflow.New("%v does not fit uint64", d)
	}
	return b.Uint64(), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
