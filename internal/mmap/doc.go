// Package mmap provides anonymous memory mappings for off-heap storage.
//
// # Anonymous Mappings
//
// MapAnon() creates read-write anonymous mappings used to place large
// container buffers outside the Go garbage collector's heap. Contract
// workloads can hold arrays of hundreds of megabytes; keeping those bytes
// off-heap avoids GC scan pressure proportional to buffer size.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Other platforms: falls back to a regular heap allocation
//
// # Thread Safety
//
// Mapping is safe for concurrent read access. Close() is idempotent and
// protected by atomic operations, but callers must ensure no goroutines
// access Bytes() after Close() returns.
package mmap
