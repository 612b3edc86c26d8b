package maxgap

import (
	"fmt"
	"strings"
)

// Range is a closed interval [Lo, Hi] a linear or quadratic bias must
// fall within.
type Range struct {
	Lo, Hi float64
}

func (r Range) valid() bool {
	return !isNaNOrInf(r.Lo) && !isNaNOrInf(r.Hi) && r.Lo <= r.Hi
}

func isNaNOrInf(f float64) bool {
	return f != f || f > maxFinite || f < -maxFinite
}

const maxFinite = 1.0e300

// Configuration is a hashable encoding of a spin assignment over an
// ordered tuple of decision variables: one byte per variable, '+' for
// +1 and '-' for -1. Built with NewConfiguration so callers never hand-
// encode the string form themselves.
//
// Go map keys must be comparable; a []int spin tuple is not, so this
// package follows the common Go idiom of encoding the tuple into a
// comparable string rather than introducing a fixed-size array type
// that could not be sized generically at compile time (decision-tuple
// arity is a runtime quantity here).
type Configuration string

// NewConfiguration encodes a spin tuple (each entry +1 or -1) into a
// Configuration. Returns an error naming the offending index if any
// entry is not a unit spin.
func NewConfiguration(spins []int) (Configuration, error) {
	var b strings.Builder
	b.Grow(len(spins))
	for i, s := range spins {
		switch s {
		case 1:
			b.WriteByte('+')
		case -1:
			b.WriteByte('-')
		default:
			return "", fmt.Errorf("maxgap: configuration entry %d is %d, want +1 or -1", i, s)
		}
	}
	return Configuration(b.String()), nil
}

// Spins decodes the configuration back into a +1/-1 slice.
func (c Configuration) Spins() []int {
	out := make([]int, len(c))
	for i, b := range []byte(c) {
		if b == '+' {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// Arity returns the number of decision variables this configuration
// assigns.
func (c Configuration) Arity() int { return len(c) }
