package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of all buffers returned by this package.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned offset always exists within
	// the buffer.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocSlots allocates an aligned buffer holding n slots of stride bytes each.
func AllocSlots(n, stride int) []byte {
	if n <= 0 || stride <= 0 {
		return nil
	}
	return AllocAligned(n * stride)
}
