package hann

import (
	"errors"
	"fmt"
	"math"
)

// MaxLength is the largest accepted window length (16,777,216 samples).
// Longer requests are rejected before any allocation.
const MaxLength = 1 << 24

// maxAlloc is the largest length whose float32 backing array is addressable.
const maxAlloc = math.MaxInt / 4

var (
	// ErrInvalidLength reports a window length too small to define the
	// denominator N-1.
	ErrInvalidLength = errors.New("hann: window length must be greater than 1")

	// ErrLengthTooLarge reports a window length above MaxLength.
	ErrLengthTooLarge = errors.New("hann: window length too large")

	// ErrAllocationFailure reports a window length whose coefficient array
	// cannot be allocated.
	ErrAllocationFailure = errors.New("hann: window length too large to allocate")

	errMismatchedLength = errors.New("hann: samples and coefficients must have same length")
)

func validateLength(length int) error {
	if length <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	if length > maxAlloc {
		return fmt.Errorf("%w: %d", ErrAllocationFailure, length)
	}

	if length > MaxLength {
		return fmt.Errorf("%w: %d, max %d", ErrLengthTooLarge, length, MaxLength)
	}

	return nil
}
