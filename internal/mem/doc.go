// Package mem provides raw buffer allocation for container storage.
//
// # Aligned Allocation
//
// Buffers backing stride-addressed element storage are allocated with
// 64-byte alignment so that bulk copies and any future vectorized access
// start on a cache-line boundary.
package mem
