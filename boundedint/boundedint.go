package boundedint

import (
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
)

// Int is an integer guaranteed to lie within the range described by B.
// The zero value is only valid when B.Low() <= 0 <= B.High(); use New or
// NewClamped to construct values of other ranges.
type Int[B Bounds] struct {
	v int
}

// Low returns the lower bound of B.
func Low[B Bounds]() int {
	var b B
	return b.Low()
}

// High returns the upper bound of B.
func High[B Bounds]() int {
	var b B
	return b.High()
}

// New validates n against the bounds of B.
// Returns a *RangeError (matching ErrTooLow or ErrTooHigh) when n is out of range.
// Complexity: O(1).
func New[B Bounds](n int) (Int[B], error) {
	lo, hi := Low[B](), High[B]()
	if n < lo {
		return Int[B]{}, &RangeError{Kind: TooLow, Value: n, Low: lo, High: hi}
	}
	if n > hi {
		return Int[B]{}, &RangeError{Kind: TooHigh, Value: n, Low: lo, High: hi}
	}

	return Int[B]{v: n}, nil
}

// MustNew is like New but panics on an out-of-range value.
// Intended for constants and tests.
func MustNew[B Bounds](n int) Int[B] {
	v, err := New[B](n)
	if err != nil {
		panic(err)
	}

	return v
}

// NewClamped constructs an Int[B] by clamping n into range. It never fails.
func NewClamped[B Bounds](n int) Int[B] {
	return Int[B]{v: clamp(n, Low[B](), High[B]())}
}

// Convert re-bounds v into the range of To, failing when the value does not fit.
func Convert[To, From Bounds](v Int[From]) (Int[To], error) {
	return New[To](v.v)
}

// Value returns the underlying unbounded integer.
func (i Int[B]) Value() int { return i.v }

// SaturatingAdd returns i+n clamped into range.
func (i Int[B]) SaturatingAdd(n int) Int[B] {
	return NewClamped[B](i.v + n)
}

// SaturatingSub returns i-n clamped into range.
func (i Int[B]) SaturatingSub(n int) Int[B] {
	return NewClamped[B](i.v - n)
}

// Add returns i+n, or ErrOverflow if the result would leave the range.
func (i Int[B]) Add(n int) (Int[B], error) {
	r, err := New[B](i.v + n)
	if err != nil {
		return i, fmt.Errorf("%w: %d + %d", ErrOverflow, i.v, n)
	}

	return r, nil
}

// Sub returns i-n, or ErrUnderflow if the result would leave the range.
func (i Int[B]) Sub(n int) (Int[B], error) {
	r, err := New[B](i.v - n)
	if err != nil {
		return i, fmt.Errorf("%w: %d - %d", ErrUnderflow, i.v, n)
	}

	return r, nil
}

// Compare returns -1, 0 or +1 depending on whether i is less than, equal to,
// or greater than j.
func (i Int[B]) Compare(j Int[B]) int {
	switch {
	case i.v < j.v:
		return -1
	case i.v > j.v:
		return 1
	default:
		return 0
	}
}

// String formats the underlying value.
func (i Int[B]) String() string { return strconv.Itoa(i.v) }

// MarshalJSON encodes the value as a plain JSON number.
func (i Int[B]) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(i.v)), nil
}

// UnmarshalJSON decodes a JSON number and validates it against B.
func (i *Int[B]) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := New[B](n)
	if err != nil {
		return err
	}
	*i = v

	return nil
}

// Range yields every value in [from, to) that is valid for B, in increasing
// order. Values of other ranges must be converted first.
func Range[B Bounds](from, to int) iter.Seq[Int[B]] {
	return func(yield func(Int[B]) bool) {
		lo := max(from, Low[B]())
		hi := min(to, High[B]()+1)
		for n := lo; n < hi; n++ {
			if !yield(Int[B]{v: n}) {
				return
			}
		}
	}
}

// clamp restricts n to [lo, hi].
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}

	return n
}
