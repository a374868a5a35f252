package flowerbed

import (
	"errors"
	"fmt"
)

// Plot values.
const (
	Empty    = 0
	Occupied = 1
)

// Sentinel errors for flowerbed operations.
var (
	// ErrInvalidSlot is returned when a plot is neither Empty nor Occupied.
	ErrInvalidSlot = errors.New("flowerbed: plot must be 0 or 1")

	// ErrNegativeCount is returned for n < 0 under RejectNegative.
	ErrNegativeCount = errors.New("flowerbed: flower count must not be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flowerbed: invalid option supplied")
)

// NegativePolicy selects how CanPlaceFlowers treats a negative count.
type NegativePolicy int

const (
	// RejectNegative fails with ErrNegativeCount.
	RejectNegative NegativePolicy = iota

	// Magnitude plants |n| flowers, so -2 behaves like 2.
	Magnitude

	// Vacuous treats a negative count as already satisfied.
	Vacuous
)

// String returns the policy name.
func (p NegativePolicy) String() string {
	switch p {
	case RejectNegative:
		return "RejectNegative"
	case Magnitude:
		return "Magnitude"
	case Vacuous:
		return "Vacuous"
	default:
		return fmt.Sprintf("NegativePolicy(%d)", int(p))
	}
}

// Option configures CanPlaceFlowers via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// CanPlaceFlowers is invoked.
type Option func(*Options)

// Options holds the resolved CanPlaceFlowers settings.
type Options struct {
	// Negative decides what a negative n means.
	Negative NegativePolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Negative set to RejectNegative.
func DefaultOptions() Options {
	return Options{Negative: RejectNegative}
}

// WithNegativeCount sets the negative count policy.
// Values outside the declared policies are an ErrOptionViolation.
func WithNegativeCount(p NegativePolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectNegative, Magnitude, Vacuous:
			o.Negative = p
		default:
			o.err = fmt.Errorf("%w: unknown negative policy %v", ErrOptionViolation, p)
		}
	}
}
