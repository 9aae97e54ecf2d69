package bigdecimal

import "sync"

// DefaultsWatcher is notified after the default precision or rounding
// mode actually changes. Implementations are registered with
// [RegisterWatcher]; pointer implementations unregister naturally by
// identity.
type DefaultsWatcher interface {
	DefaultsChanged(prec int, mode RoundingMode)
}

// defaults holds the process-wide configuration consulted by arithmetic
// entry points invoked without explicit precision or mode arguments.
// The registry carries its own lock; decimal values themselves are
// immutable and need none.
var defaults = struct {
	sync.Mutex
	prec     int
	mode     RoundingMode
	expDelim byte
	watchers []DefaultsWatcher
}{
	prec:     64,
	mode:     RoundHalfEven,
	expDelim: 'e',
}

// Defaults returns the current default precision and rounding mode.
func Defaults() (prec int, mode RoundingMode) {
	defaults.Lock()
	defer defaults.Unlock()
	return defaults.prec, defaults.mode
}

// DefaultPrecision returns the significant-digit count used by operations
// invoked without an explicit precision.
func DefaultPrecision() int {
	defaults.Lock()
	defer defaults.Unlock()
	return defaults.prec
}

// SetDefaultPrecision changes the default precision and, if the value
// actually changed, synchronously notifies registered watchers in
// registration order.
//
// SetDefaultPrecision returns an error if prec is not positive.
func SetDefaultPrecision(prec int) error {
	if prec < 1 {
		return ErrInvalidArgument.New("precision %d is not positive", prec)
	}
	defaults.Lock()
	if prec == defaults.prec {
		defaults.Unlock()
		return nil
	}
	defaults.prec = prec
	mode := defaults.mode
	watchers := append([]DefaultsWatcher(nil), defaults.watchers...)
	defaults.Unlock()

	for _, w := range watchers {
		w.DefaultsChanged(prec, mode)
	}
	return nil
}

// DefaultRoundingMode returns the rounding mode used by operations invoked
// without an explicit mode.
func DefaultRoundingMode() RoundingMode {
	defaults.Lock()
	defer defaults.Unlock()
	return defaults.mode
}

// SetDefaultRoundingMode changes the default rounding mode and, if the
// value actually changed, synchronously notifies registered watchers in
// registration order.
//
// SetDefaultRoundingMode returns an error if mode is not one of the eight
// defined modes.
func SetDefaultRoundingMode(mode RoundingMode) error {
	if mode > RoundUnnecessary {
		return ErrInvalidArgument.New("unknown rounding mode %d", mode)
	}
	defaults.Lock()
	if mode == defaults.mode {
		defaults.Unlock()
		return nil
	}
	defaults.mode = mode
	prec := defaults.prec
	watchers := append([]DefaultsWatcher(nil), defaults.watchers...)
	defaults.Unlock()

	for _, w := range watchers {
		w.DefaultsChanged(prec, mode)
	}
	return nil
}

// ExponentDelimiter returns the character separating the significand from
// the exponent in scientific notation.
func ExponentDelimiter() byte {
	defaults.Lock()
	defer defaults.Unlock()
	return defaults.expDelim
}

// SetExponentDelimiter changes the exponent delimiter used by
// [Decimal.String] and [Decimal.SciString].
//
// SetExponentDelimiter returns an error if c is neither 'e' nor 'E'.
func SetExponentDelimiter(c byte) error {
	if c != 'e' && c != 'E' {
		return ErrInvalidArgument.New("exponent delimiter %q is not 'e' or 'E'", c)
	}
	defaults.Lock()
	defer defaults.Unlock()
	defaults.expDelim = c
	return nil
}

// RegisterWatcher appends w to the notification list.
// Watchers are notified in registration order.
func RegisterWatcher(w DefaultsWatcher) {
	defaults.Lock()
	defer defaults.Unlock()
	defaults.watchers = append(defaults.watchers, w)
}

// UnregisterWatcher removes the first watcher identical to w, preserving
// the relative order of the remaining watchers. Unknown watchers are
// ignored.
func UnregisterWatcher(w DefaultsWatcher) {
	defaults.Lock()
	defer defaults.Unlock()
	for i, x := range defaults.watchers {
		if x == w {
			defaults.watchers = append(defaults.watchers[:i], defaults.watchers[i+1:]...)
			return
		}
	}
}
