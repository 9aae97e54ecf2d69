package bigdecimal

import "github.com/zeebo/errs"

// Error classes returned by this package.
// Use the Has method to test an error for a particular class, for example
// ErrDivisionByZero.Has(err).
var (
	// ErrParse indicates malformed input text.
	ErrParse = errs.Class("parse error")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrOverflow indicates a scale above [MaxScale].
	ErrOverflow = errs.Class("scale overflow")

	// ErrUnderflow indicates a scale below [MinScale].
	ErrUnderflow = errs.Class("scale underflow")

	// ErrInvalidArgument indicates an argument outside the domain of
	// the operation, such as a NaN passed to a float constructor or
	// a negative value passed to Sqrt.
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrConversionOverflow indicates that a value does not fit the
	// requested fixed-width integer type.
	ErrConversionOverflow = errs.Class("conversion overflow")

	// ErrRoundingRequired indicates that [RoundUnnecessary] was requested
	// but the operation was inexact.
	ErrRoundingRequired = errs.Class("rounding required")
)
