package lumenrt

import (
	"errors"
	"sync"

	"github.com/lumenlang/lumenrt/resource"
	"github.com/lumenlang/lumenrt/value"
	"github.com/lumenlang/lumenrt/vector"
)

// Handle is the integer name by which compiled contracts address their
// containers across the WASM boundary.
//
// The zero Handle is never valid.
type Handle uint64

// Runtime owns the state shared by all containers of one contract
// execution environment: the managed-value heap, the memory budget, and
// the handle table.
//
// Runtime is safe for concurrent use.
type Runtime struct {
	heap   *value.Heap
	ctrl   *resource.Controller
	logger *Logger

	offHeap bool

	mu      sync.Mutex
	vectors map[Handle]*vector.Vector
	next    Handle
	closed  bool
}

// Option is a configuration option for a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger. Defaults to a text logger at info level.
func WithLogger(l *Logger) Option {
	return func(rt *Runtime) {
		rt.logger = l
	}
}

// WithMemoryLimit caps the total bytes all containers of this runtime may
// hold. 0 (the default) means tracking only, no limit.
func WithMemoryLimit(bytes int64) Option {
	return func(rt *Runtime) {
		rt.ctrl = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithOffHeapVectors places every container buffer created through this
// runtime in anonymous mappings outside the Go heap.
func WithOffHeapVectors() Option {
	return func(rt *Runtime) {
		rt.offHeap = true
	}
}

// New creates a runtime environment.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		heap:    value.NewHeap(),
		vectors: make(map[Handle]*vector.Vector),
		next:    1, // 0 is the invalid Handle
	}

	for _, opt := range opts {
		opt(rt)
	}

	if rt.ctrl == nil {
		rt.ctrl = resource.NewController(resource.Config{})
	}
	if rt.logger == nil {
		rt.logger = NewLogger(nil)
	}

	return rt
}

// Heap returns the runtime's managed-value heap.
func (rt *Runtime) Heap() *value.Heap { return rt.heap }

// Controller returns the runtime's memory budget controller.
func (rt *Runtime) Controller() *resource.Controller { return rt.ctrl }

// NewVector creates a plain-value vector charged against the runtime's
// memory budget and registers it in the handle table.
func (rt *Runtime) NewVector(initial, stride int, opts ...vector.Option) (Handle, *vector.Vector, error) {
	return rt.newVector(initial, stride, opts)
}

// NewManagedVector creates a vector of managed elements backed by the
// runtime's heap. The stride is fixed at value.RefSize.
func (rt *Runtime) NewManagedVector(initial int, opts ...vector.Option) (Handle, *vector.Vector, error) {
	opts = append(opts, vector.WithContext(rt.heap))
	return rt.newVector(initial, value.RefSize, opts)
}

func (rt *Runtime) newVector(initial, stride int, opts []vector.Option) (Handle, *vector.Vector, error) {
	base := []vector.Option{vector.WithMemoryAcquirer(rt.ctrl)}
	if rt.offHeap {
		base = append(base, vector.WithOffHeap())
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return 0, nil, ErrRuntimeClosed
	}

	v, err := vector.New(initial, stride, append(base, opts...)...)
	if err != nil {
		rt.logger.LogVectorCreate(0, stride, initial, err)
		return 0, nil, err
	}

	h := rt.next
	rt.next++
	rt.vectors[h] = v

	rt.logger.LogVectorCreate(h, stride, initial, nil)
	return h, v, nil
}

// Vector resolves a handle to its live vector.
func (rt *Runtime) Vector(h Handle) (*vector.Vector, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil, ErrRuntimeClosed
	}
	v, ok := rt.vectors[h]
	if !ok {
		return nil, &HandleError{Handle: h}
	}
	return v, nil
}

// DropVector closes the vector and removes it from the handle table.
func (rt *Runtime) DropVector(h Handle) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return ErrRuntimeClosed
	}
	v, ok := rt.vectors[h]
	if !ok {
		return &HandleError{Handle: h}
	}
	delete(rt.vectors, h)

	err := v.Close()
	rt.logger.LogVectorDrop(h, err)
	return err
}

// Vectors returns the number of live containers.
func (rt *Runtime) Vectors() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.vectors)
}

// Close releases every live container and shuts the runtime down. It is
// idempotent.
func (rt *Runtime) Close() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.closed {
		return nil
	}
	rt.closed = true

	var errs []error
	dropped := 0
	for h, v := range rt.vectors {
		if err := v.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(rt.vectors, h)
		dropped++
	}

	err := errors.Join(errs...)
	rt.logger.LogRuntimeClose(dropped, rt.heap.Live(), err)
	return err
}
