package boundedint

import (
	"errors"
	"fmt"
)

// Floor size limits shared by every package that builds or reads a floor.
const (
	// MinFloorSize is the smallest allowed floor width or height.
	MinFloorSize = 10

	// MaxFloorSize is the largest allowed floor width or height.
	MaxFloorSize = 200
)

// Sentinel errors for bounded integer construction and arithmetic.
var (
	// ErrTooLow indicates a value below the lower bound.
	ErrTooLow = errors.New("boundedint: value too low")

	// ErrTooHigh indicates a value above the upper bound.
	ErrTooHigh = errors.New("boundedint: value too high")

	// ErrOverflow indicates a checked addition left the valid range.
	ErrOverflow = errors.New("boundedint: overflow")

	// ErrUnderflow indicates a checked subtraction left the valid range.
	ErrUnderflow = errors.New("boundedint: underflow")
)

// Bounds describes an inclusive integer range. Implementations are expected to
// be zero-size marker types whose methods return constants.
type Bounds interface {
	Low() int
	High() int
}

// FloorSize bounds floor widths and heights to [MinFloorSize, MaxFloorSize].
type FloorSize struct{}

// Low returns MinFloorSize.
func (FloorSize) Low() int { return MinFloorSize }

// High returns MaxFloorSize.
func (FloorSize) High() int { return MaxFloorSize }

// Coord bounds row and column values to [0, MaxFloorSize].
type Coord struct{}

// Low returns 0.
func (Coord) Low() int { return 0 }

// High returns MaxFloorSize.
func (Coord) High() int { return MaxFloorSize }

// Kind classifies a RangeError.
type Kind int

const (
	// TooLow marks a value below the lower bound.
	TooLow Kind = iota
	// TooHigh marks a value above the upper bound.
	TooHigh
)

// String returns a short name for k.
func (k Kind) String() string {
	if k == TooLow {
		return "too low"
	}

	return "too high"
}

// RangeError reports a construction attempt with a value outside [Low, High].
// It matches ErrTooLow or ErrTooHigh under errors.Is depending on Kind.
type RangeError struct {
	Kind  Kind
	Value int
	Low   int
	High  int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("boundedint: %d is %s for range [%d, %d]", e.Value, e.Kind, e.Low, e.High)
}

// Unwrap exposes the matching sentinel.
func (e *RangeError) Unwrap() error {
	if e.Kind == TooLow {
		return ErrTooLow
	}

	return ErrTooHigh
}
