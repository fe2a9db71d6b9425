// Package sna implements serial number arithmetic as defined by RFC 1982,
// e.g. for DNS zone serial numbers. A serial number is a fixed-width unsigned
// integer that is interpreted as a point on a circle of 2^width values, where
// addition wraps around and ordering follows the shorter way around the
// circle. Read section 3.2 of the RFC before relying on the comparison
// operations; they form a partial order, not a total one.
package sna

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrDelta = errors.New("delta must not exceed half the number space minus one")

// Number is a serial number over the unsigned integer type T. The zero
// value is the serial number 0. A Number is immutable, all operations
// return a new value.
type Number[T constraints.Unsigned] struct {
	value T
}

// New returns the serial number for the given value.
func New[T constraints.Unsigned](value T) Number[T] {
	return Number[T]{
		value: value,
	}
}

// Val returns the underlying value.
func (a Number[T]) Val() T {
	return a.value
}

// Add returns the sum of this serial number and n, wrapping around at the
// end of the number space. RFC 1982 defines addition only for deltas of at
// most half the number space minus one (127 for 8 bit, 32767 for 16 bit,
// and so on). Larger deltas still wrap to a well-defined value, but the
// result has no meaning as serial number addition. It is the caller's
// responsibility to stay within the bound, or to use AddChecked.
func (a Number[T]) Add(n T) Number[T] {
	return Number[T]{
		value: a.value + n,
	}
}

// AddChecked is like Add but returns ErrDelta if n exceeds the largest
// delta RFC 1982 permits.
func (a Number[T]) AddChecked(n T) (Number[T], error) {
	if n > maxDelta[T]() {
		return a, ErrDelta
	}

	return a.Add(n), nil
}

// Inc returns the next serial number, wrapping around at the end of the
// number space.
func (a Number[T]) Inc() Number[T] {
	return a.Add(1)
}

// Distance returns the number of increment steps between a and b, whichever
// direction around the circle is shorter. For an antipodal pair it is
// exactly half the number space.
func (a Number[T]) Distance(b Number[T]) T {
	forward := b.value - a.value
	backward := a.value - b.value

	if forward < backward {
		return forward
	}

	return backward
}

func (a Number[T]) String() string {
	return fmt.Sprintf("%d", a.value)
}

// maxDelta returns the largest valid delta for additions, i.e. 2^(W-1)-1
// for a width of W bits.
func maxDelta[T constraints.Unsigned]() T {
	var max T
	max--

	return max >> 1
}
