package bigdecimal

import "math/big"

// Helpers for the arbitrary-precision coefficient.
// Coefficients are kept non-negative; the sign lives on the decimal.
// None of these mutate their arguments.

// lsh10 returns x * 10^n.
func lsh10(x *big.Int, n int) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, pow10(n))
}

// quoRem10 returns the truncating quotient and remainder of x / 10^n.
func quoRem10(x *big.Int, n int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(x, pow10(n), r)
	return q, r
}

// isOdd returns true if x is odd.
func isOdd(x *big.Int) bool {
	return x.Bit(0) == 1
}

// doubled returns 2 * x.
func doubled(x *big.Int) *big.Int {
	return new(big.Int).Lsh(x, 1)
}
