package lumenrt

import (
	"errors"
	"fmt"
)

var (
	// ErrRuntimeClosed is returned by operations on a closed Runtime.
	ErrRuntimeClosed = errors.New("lumenrt: runtime closed")
	// ErrUnknownHandle is returned when a handle does not name a live
	// vector.
	ErrUnknownHandle = errors.New("lumenrt: unknown vector handle")
)

// HandleError reports the offending handle.
//
// It matches errors.Is(err, ErrUnknownHandle).
type HandleError struct {
	Handle Handle
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("lumenrt: unknown vector handle %d", e.Handle)
}

func (e *HandleError) Unwrap() error { return ErrUnknownHandle }
