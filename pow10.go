package bigdecimal

import (
	"math/big"
	"sync"
)

// powCache is a memoized table of successive powers of a fixed base.
// The table grows monotonically as higher exponents are requested and
// is never shrunk; cached values are shared and must not be mutated.
type powCache struct {
	mu   sync.RWMutex
	base int64
	tab  []*big.Int
}

var (
	pow10cache = &powCache{base: 10}
	pow5cache  = &powCache{base: 5}
)

// get returns base^n. The result is shared and read-only.
func (c *powCache) get(n int) *big.Int {
	if n < 0 {
		panic("negative exponent")
	}
	c.mu.RLock()
	if n < len(c.tab) {
		p := c.tab[n]
		c.mu.RUnlock()
		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tab) == 0 {
		c.tab = append(c.tab, big.NewInt(1))
	}
	for len(c.tab) <= n {
		last := c.tab[len(c.tab)-1]
		next := new(big.Int).Mul(last, big.NewInt(c.base))
		c.tab = append(c.tab, next)
	}
	return c.tab[n]
}

// pow10 returns 10^n for n >= 0. The result must not be mutated.
func pow10(n int) *big.Int {
	return pow10cache.get(n)
}

// pow5 returns 5^n for n >= 0. The result must not be mutated.
func pow5(n int) *big.Int {
	return pow5cache.get(n)
}

// digitsTableSize covers coefficients up to 128 bits with an exact
// bit-length to digit-count lookup. Longer coefficients fall back to
// a logarithmic estimate refined by a single comparison.
const digitsTableSize = 128

// digitsToBitsRatio is log(10) / log(2).
const digitsToBitsRatio = 3.321928094887362

type digitsBorder struct {
	digits int
	border big.Int
}

// digitsTable maps a bit length to the smaller of the two decimal digit
// counts a number of that bit length can have, together with the border
// value 10^digits separating them.
var digitsTable [digitsTableSize + 1]digitsBorder

func init() {
	cur := big.NewInt(1)
	for i := 1; i <= digitsTableSize; i++ {
		if i > 1 {
			cur.Lsh(cur, 1)
		}
		elem := &digitsTable[i]
		elem.digits = len(cur.String())
		elem.border.Exp(big.NewInt(10), big.NewInt(int64(elem.digits)), nil)
	}
}

// numDigits returns the number of decimal digits of |b|.
// numDigits assumes that 0 has one digit.
func numDigits(b *big.Int) int {
	bl := b.BitLen()
	if bl == 0 {
		return 1
	}
	if bl <= digitsTableSize {
		elem := &digitsTable[bl]
		ab := new(big.Int).Abs(b)
		if ab.Cmp(&elem.border) < 0 {
			return elem.digits
		}
		return elem.digits + 1
	}
	n := int(float64(bl) / digitsToBitsRatio)
	ab := new(big.Int).Abs(b)
	if ab.Cmp(pow10(n)) >= 0 {
		n++
	}
	return n
}
