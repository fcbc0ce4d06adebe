package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a position is outside the valid
	// range for the requested operation.
	ErrInvalidIndex = errors.New("vector: index out of range")
	// ErrEmpty is returned by reads, pops and removes on an empty vector.
	ErrEmpty = errors.New("vector: no elements")
	// ErrAllocationFailed is returned when storage growth or construction
	// cannot obtain memory. The vector is left in its prior state.
	ErrAllocationFailed = errors.New("vector: allocation failed")
	// ErrInvalidResize is returned by shrink requests below the current
	// element count.
	ErrInvalidResize = errors.New("vector: resize below element count")
	// ErrInvalidStride is returned when a vector is constructed with a
	// non-positive stride, or with a stride unusable for managed elements.
	ErrInvalidStride = errors.New("vector: stride must be positive")
	// ErrInvalidCapacity is returned when the initial capacity is not
	// positive.
	ErrInvalidCapacity = errors.New("vector: initial capacity must be positive")
	// ErrStrideMismatch is returned when caller-supplied data does not
	// match the vector's stride.
	ErrStrideMismatch = errors.New("vector: data size does not match stride")
	// ErrManagedData is returned by raw whole-buffer operations (SetData,
	// ToArray) on vectors holding managed elements; those bypass the
	// per-element release protocol and are restricted to plain values.
	ErrManagedData = errors.New("vector: raw buffer access requires a plain-value vector")
	// ErrCursorInvalid is reported by a Cursor after the underlying vector
	// has been mutated.
	ErrCursorInvalid = errors.New("vector: cursor invalidated by mutation")
	// ErrClosed is returned by any operation on a closed vector.
	ErrClosed = errors.New("vector: closed")
)

// IndexError reports the offending index together with the element count at
// the time of the call.
//
// It matches errors.Is(err, ErrInvalidIndex).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d out of range with length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }
