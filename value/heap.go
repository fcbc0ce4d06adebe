package value

import (
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ErrUnknownRef is returned when a Ref does not name a live heap object.
// Seeing it usually means a double release or a stale handle.
var ErrUnknownRef = errors.New("value: unknown ref")

// Formatter lets heap objects control their textual rendering.
type Formatter interface {
	FormatValue() string
}

type object struct {
	val  any
	refs int64
}

// Heap is a reference-counted store of managed values and the runtime's
// default Context implementation.
//
// Materialize retains (increments the reference count of) the stored value;
// Release decrements it and frees the object when the count reaches zero.
// A roaring bitmap tracks the live handle set, so stale or double-released
// handles are detected instead of silently resurrecting objects.
//
// Heap is safe for concurrent use.
type Heap struct {
	mu      sync.Mutex
	objects map[Ref]*object
	live    *roaring64.Bitmap
	next    uint64
}

var _ Context = (*Heap)(nil)

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{
		objects: make(map[Ref]*object),
		live:    roaring64.New(),
		next:    1, // 0 is the invalid Ref
	}
}

// Alloc stores val and returns a new Ref owning one reference to it.
func (h *Heap) Alloc(val any) Ref {
	h.mu.Lock()
	defer h.mu.Unlock()

	r := Ref(h.next)
	h.next++
	h.objects[r] = &object{val: val, refs: 1}
	h.live.Add(uint64(r))
	return r
}

// Materialize retains the value and returns the same handle with an
// additional owned reference.
func (h *Heap) Materialize(r Ref) (Ref, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[r]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRef, r)
	}
	obj.refs++
	return r, nil
}

// Release drops one reference. The object is freed when the count reaches
// zero.
func (h *Heap) Release(r Ref) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[r]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRef, r)
	}
	obj.refs--
	if obj.refs == 0 {
		delete(h.objects, r)
		h.live.Remove(uint64(r))
	}
	return nil
}

// Format renders the referenced value as text. Values implementing
// Formatter control their own rendering; everything else goes through
// fmt.Sprint.
func (h *Heap) Format(r Ref) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[r]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownRef, r)
	}
	if f, ok := obj.val.(Formatter); ok {
		return f.FormatValue(), nil
	}
	return fmt.Sprint(obj.val), nil
}

// Get returns the stored value for a live Ref.
func (h *Heap) Get(r Ref) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[r]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRef, r)
	}
	return obj.val, nil
}

// RefCount returns the current reference count, or 0 for a dead Ref.
func (h *Heap) RefCount(r Ref) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj, ok := h.objects[r]
	if !ok {
		return 0
	}
	return obj.refs
}

// Contains reports whether r names a live object.
func (h *Heap) Contains(r Ref) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live.Contains(uint64(r))
}

// Live returns the number of live objects.
func (h *Heap) Live() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live.GetCardinality()
}

// Refs iterates over a snapshot of the live handle set in ascending order.
func (h *Heap) Refs() iter.Seq[Ref] {
	h.mu.Lock()
	snapshot := h.live.Clone()
	h.mu.Unlock()

	return func(yield func(Ref) bool) {
		it := snapshot.Iterator()
		for it.HasNext() {
			if !yield(Ref(it.Next())) {
				return
			}
		}
	}
}
