/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers.
It is designed for financial and scientific computation that needs exact
decimal semantics and controlled rounding, which native binary floating
point cannot provide.

# Representation

[Decimal] is a struct with three significant fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an arbitrary-precision unsigned integer representing the
    numeric value of the decimal without the decimal point.
  - Scale: a signed integer indicating the position of the decimal point
    within the coefficient.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

A positive scale counts fractional digits and a negative scale multiplies
the coefficient by a power of ten, so a coefficient of 179 represents 1.79
at scale 2 and 17900 at scale -2.

The same numeric value can have multiple representations: 1.79 and 1.7900
are equal under [Decimal.Cmp] and [Decimal.Equal] but keep distinct
coefficients and scales, preserving the precision each value was created
with. Use [Decimal.CmpTotal] to order representations.

Special values such as NaN, Infinity, or signed zeros are not supported.
This ensures that arithmetic operations always produce either valid
decimals or errors.

# Operations and rounding

Addition, subtraction, and multiplication are always exact. Division and
square root round their non-terminating results to a requested number of
significant digits under one of eight [RoundingMode] variants; entry
points without explicit precision or mode arguments consult the
process-wide defaults (see [SetDefaultPrecision],
[SetDefaultRoundingMode], and [DefaultsWatcher] for change notification).

# Conversions

The package provides conversions:

  - from/to string: [Parse], [TryParse], [Decimal.String],
    [Decimal.PlainString], [Decimal.SciString].
  - from/to float64 and float32: [NewFromFloat64], [Decimal.Float64].
    Constructing from a float captures the exact binary value; converting
    to a float rounds to nearest-even with explicit overflow and denormal
    handling.
  - from/to fixed-width integers: [New], [NewFromInt64],
    [Decimal.Int64], and friends.
  - from/to [math/big.Int]: [NewFromBigInt], [Decimal.UnscaledValue].

[Decimal.String] round-trips exactly: parsing a formatted value restores
the original coefficient and scale, not merely an equal value.
*/
package bigdecimal
