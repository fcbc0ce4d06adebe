//go:build !unix

package mmap

// Fallback for platforms without anonymous mmap support: a regular heap
// allocation. The off-heap property is lost but callers keep working.
func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	data := make([]byte, size)
	return data, func([]byte) error { return nil }, nil
}
