// Package lumenrt is the runtime support library linked into compiled
// Lumen contracts.
//
// The compiler lowers contract source to an intermediate representation
// and generates native or WASM code against this library. lumenrt supplies
// the pieces generated code cannot carry itself: the foundational vector
// container backing every list/array-typed value, the managed-value heap
// implementing retain/release semantics for reference-typed elements, the
// memory budget contracts run under, and the ABI metadata tooling consumes.
//
// # Quick Start
//
//	rt := lumenrt.New(lumenrt.WithMemoryLimit(64 << 20))
//	defer rt.Close()
//
//	// A plain-value vector of int64 elements.
//	h, v, _ := rt.NewVector(16, 8)
//	_ = v.AddLast(encoded)
//
//	// A vector of managed (reference-counted) values.
//	_, mv, _ := rt.NewManagedVector(16)
//	ref := rt.Heap().Alloc("hello")
//	_ = mv.AddLast(ref.Bytes())
//
// Compiled WASM contracts address their containers through integer
// handles; the Runtime keeps the handle table and resolves them back to
// live vectors:
//
//	v, err := rt.Vector(h)
//
// # Memory Model
//
// Every vector created through a Runtime charges its buffer bytes against
// the Runtime's resource controller. When the configured limit would be
// exceeded, growth fails with vector.ErrAllocationFailed and the container
// is left untouched; retry policy belongs to the caller.
package lumenrt
