package vector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lumenlang/lumenrt/internal/mmap"
	"github.com/lumenlang/lumenrt/value"
)

// Growth selects how capacity is computed when an insert overflows storage.
// The policy is fixed for the vector's lifetime.
type Growth uint8

const (
	// GrowthDouble doubles the capacity on overflow (at least one extra
	// element). The default.
	GrowthDouble Growth = iota
	// GrowthLinear adds the initial capacity on every overflow.
	GrowthLinear
	// GrowthExact grows by precisely the shortfall, leaving no slack.
	GrowthExact
)

// MemoryAcquirer reserves and returns buffer bytes against an external
// budget. *resource.Controller satisfies it.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Vector is a resizable, double-ended array of fixed-stride elements.
//
// The zero value is not usable; construct with New.
type Vector struct {
	buf     []byte
	mapping *mmap.Mapping // non-nil when buf is an off-heap mapping
	num     int           // current element count
	max     int           // allocated element capacity
	stride  int           // bytes per element slot
	initial int           // initial capacity, also the linear increment
	growth  Growth
	version uint64 // bumped on every mutation; see Cursor
	closed  bool

	ctx      value.Context // nil for plain-value vectors
	acquirer MemoryAcquirer
	offHeap  bool

	mu *sync.Mutex // nil unless WithThreadSafe
}

// Option is a configuration option for a Vector.
type Option func(*Vector)

// WithThreadSafe installs the mutual-exclusion guard. Every exported
// operation then acquires it around its own execution.
func WithThreadSafe() Option {
	return func(v *Vector) {
		v.mu = &sync.Mutex{}
	}
}

// WithGrowth selects the growth policy.
func WithGrowth(g Growth) Option {
	return func(v *Vector) {
		v.growth = g
	}
}

// WithContext marks the vector as holding managed elements and injects the
// runtime context used for retain, release and formatting. The stride must
// be value.RefSize.
func WithContext(ctx value.Context) Option {
	return func(v *Vector) {
		v.ctx = ctx
	}
}

// WithMemoryAcquirer charges all buffer allocations against the given
// budget. Growth that the budget rejects fails with ErrAllocationFailed.
func WithMemoryAcquirer(a MemoryAcquirer) Option {
	return func(v *Vector) {
		v.acquirer = a
	}
}

// WithOffHeap places the element buffer in an anonymous memory mapping
// outside the Go heap. Useful for very large vectors that would otherwise
// add GC scan pressure.
func WithOffHeap() Option {
	return func(v *Vector) {
		v.offHeap = true
	}
}

// New creates a vector with room for initial elements of stride bytes each.
func New(initial, stride int, opts ...Option) (*Vector, error) {
	if stride <= 0 {
		return nil, ErrInvalidStride
	}
	if initial <= 0 {
		return nil, ErrInvalidCapacity
	}

	v := &Vector{
		stride:  stride,
		initial: initial,
		growth:  GrowthDouble,
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.ctx != nil && stride != value.RefSize {
		return nil, fmt.Errorf("%w: managed vectors require stride %d", ErrInvalidStride, value.RefSize)
	}

	if err := v.realloc(initial); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector) lock() {
	if v.mu != nil {
		v.mu.Lock()
	}
}

func (v *Vector) unlock() {
	if v.mu != nil {
		v.mu.Unlock()
	}
}

// Lock explicitly acquires the guard, blocking until it is available. A
// no-op on vectors constructed without WithThreadSafe.
//
// While the guard is held, calling any exported operation on the same
// vector from the same goroutine deadlocks; use Locked, whose view skips
// per-call locking, for multi-call sequences.
func (v *Vector) Lock() { v.lock() }

// Unlock releases the guard acquired by Lock.
func (v *Vector) Unlock() { v.unlock() }

// Len returns the current element count.
func (v *Vector) Len() int {
	v.lock()
	defer v.unlock()
	return v.num
}

// Cap returns the allocated element capacity.
func (v *Vector) Cap() int {
	v.lock()
	defer v.unlock()
	return v.max
}

// Stride returns the fixed byte size of every element slot.
func (v *Vector) Stride() int { return v.stride }

// ThreadSafe reports whether the vector carries a guard.
func (v *Vector) ThreadSafe() bool { return v.mu != nil }

// Resize pre-sets the element capacity directly. Shrinking below the
// current element count fails with ErrInvalidResize and leaves the vector
// unchanged.
func (v *Vector) Resize(newMax int) error {
	v.lock()
	defer v.unlock()
	return v.resize(newMax)
}

func (v *Vector) resize(newMax int) error {
	if v.closed {
		return ErrClosed
	}
	if newMax <= 0 {
		return ErrInvalidCapacity
	}
	if newMax < v.num {
		return fmt.Errorf("%w: capacity %d, %d elements held", ErrInvalidResize, newMax, v.num)
	}
	if newMax == v.max {
		return nil
	}
	return v.realloc(newMax)
}

// Data returns a borrowed view of the raw element bytes, valid only until
// the next mutating call.
func (v *Vector) Data() []byte {
	v.lock()
	defer v.unlock()
	if v.closed {
		return nil
	}
	return v.buf[:v.num*v.stride]
}

// ToArray returns an owned copy of the raw element bytes. Restricted to
// plain-value vectors: for managed elements the handle bytes alone carry no
// ownership, use GetAt or Slice instead.
func (v *Vector) ToArray() ([]byte, error) {
	v.lock()
	defer v.unlock()
	if v.closed {
		return nil, ErrClosed
	}
	if v.ctx != nil {
		return nil, ErrManagedData
	}
	out := make([]byte, v.num*v.stride)
	copy(out, v.buf)
	return out, nil
}

// SetData replaces the vector's entire raw buffer content in one call,
// bypassing per-element bookkeeping. The data length must be a multiple of
// the stride. Restricted to plain-value vectors; on managed vectors it
// fails with ErrManagedData since the stored references could not be
// released.
func (v *Vector) SetData(data []byte) error {
	v.lock()
	defer v.unlock()
	return v.setData(data)
}

func (v *Vector) setData(data []byte) error {
	if v.closed {
		return ErrClosed
	}
	if v.ctx != nil {
		return ErrManagedData
	}
	if len(data)%v.stride != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of stride %d", ErrStrideMismatch, len(data), v.stride)
	}

	n := len(data) / v.stride
	if n > v.max {
		if err := v.realloc(n); err != nil {
			return err
		}
	}
	copy(v.buf, data)
	v.num = n
	v.version++
	return nil
}

// Reverse reverses the logical element order in place. No reallocation.
func (v *Vector) Reverse() {
	v.lock()
	defer v.unlock()
	v.reverse()
}

func (v *Vector) reverse() {
	if v.closed {
		return
	}
	s := v.stride
	tmp := make([]byte, s)
	for i, j := 0, v.num-1; i < j; i, j = i+1, j-1 {
		a := v.buf[i*s : (i+1)*s]
		b := v.buf[j*s : (j+1)*s]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
	v.version++
}

// Clear releases any managed references held in the slots and resets the
// element count to zero. Allocated capacity is retained.
func (v *Vector) Clear() error {
	v.lock()
	defer v.unlock()
	if v.closed {
		return ErrClosed
	}
	return v.clear()
}

func (v *Vector) clear() error {
	var errs []error
	if v.ctx != nil {
		for i := range v.num {
			slot := v.buf[i*v.stride : (i+1)*v.stride]
			if err := v.ctx.Release(value.GetRef(slot)); err != nil {
				errs = append(errs, err)
			}
		}
	}
	v.num = 0
	v.version++
	return errors.Join(errs...)
}

// Close releases managed references, frees storage and returns any budgeted
// bytes. It is idempotent; all subsequent operations fail with ErrClosed.
func (v *Vector) Close() error {
	v.lock()
	defer v.unlock()
	if v.closed {
		return nil
	}
	err := v.clear()
	v.freeBuf()
	v.buf = nil
	v.mapping = nil
	v.max = 0
	v.closed = true
	return err
}
