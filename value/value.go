// Package value defines the boundary between containers and the runtime's
// managed-value object model.
//
// Containers store managed values as opaque Ref handles, fixed at RefSize
// bytes per slot. All lifetime operations on the referenced objects go
// through a Context: containers never assume a concrete value
// representation, they only copy handle bytes and call out for retain,
// release and formatting.
package value

import (
	"encoding/binary"
)

// RefSize is the byte width of an encoded Ref inside container storage.
const RefSize = 8

// Ref is an opaque handle to a runtime-managed value.
//
// The zero Ref is never a valid handle.
type Ref uint64

// PutRef encodes r into the first RefSize bytes of b.
func PutRef(b []byte, r Ref) {
	binary.LittleEndian.PutUint64(b, uint64(r))
}

// GetRef decodes a Ref from the first RefSize bytes of b.
func GetRef(b []byte) Ref {
	return Ref(binary.LittleEndian.Uint64(b))
}

// Bytes returns the RefSize-byte encoding of r.
func (r Ref) Bytes() []byte {
	b := make([]byte, RefSize)
	PutRef(b, r)
	return b
}

// Context is the capability interface a runtime must provide for containers
// holding managed elements.
//
// Implementations must be safe for use by whatever goroutine holds the
// owning container's guard.
type Context interface {
	// Materialize produces an independently-owned reference from a stored
	// one, typically by incrementing a reference count or deep-copying.
	// The returned Ref has its own lifetime and must eventually be passed
	// to Release.
	Materialize(r Ref) (Ref, error)

	// Release drops one owned reference to the value.
	Release(r Ref) error

	// Format renders the referenced value as text.
	Format(r Ref) (string, error)
}
