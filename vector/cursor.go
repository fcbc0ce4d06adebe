package vector

import (
	"iter"
)

// Cursor is a stateful, forward-only iterator over a vector's elements.
//
// A Cursor is valid only in the absence of intervening mutation: any
// mutating call on the vector (including reallocation on growth)
// invalidates it, which Next detects through the vector's version counter
// and reports via Err as ErrCursorInvalid. Holding a Cursor does not
// prevent mutation.
//
// On a thread-safe vector, a Cursor performs no locking of its own;
// callers iterating concurrently with writers must bracket the whole
// iteration with Lock/Unlock, or iterate inside Locked via Tx.Cursor.
type Cursor struct {
	v       *Vector
	index   int
	version uint64
	err     error
}

// Cursor returns a fresh cursor positioned before the first element.
func (v *Vector) Cursor() *Cursor {
	v.lock()
	defer v.unlock()
	return v.cursor()
}

func (v *Vector) cursor() *Cursor {
	return &Cursor{v: v, index: -1, version: v.version}
}

// Next advances to the next element. It returns false when the vector is
// exhausted or the cursor has been invalidated; distinguish the two with
// Err.
func (c *Cursor) Next() bool {
	if c.err != nil {
		return false
	}
	if c.v.closed || c.version != c.v.version {
		c.err = ErrCursorInvalid
		return false
	}
	if c.index+1 >= c.v.num {
		return false
	}
	c.index++
	return true
}

// Index returns the current logical index, or -1 before the first Next.
func (c *Cursor) Index() int { return c.index }

// Err returns ErrCursorInvalid if a mutation occurred during iteration,
// nil otherwise.
func (c *Cursor) Err() error { return c.err }

// Borrow returns a view of the current slot, valid only until the next
// mutating call on the vector. Returns nil before the first Next or after
// invalidation.
func (c *Cursor) Borrow() []byte {
	if c.err != nil || c.index < 0 || c.index >= c.v.num {
		return nil
	}
	s := c.v.stride
	return c.v.buf[c.index*s : (c.index+1)*s : (c.index+1)*s]
}

// Value returns a materialized copy of the current element, safe to hold
// across subsequent mutations.
func (c *Cursor) Value() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.index < 0 {
		return nil, &IndexError{Index: c.index, Len: c.v.num}
	}
	return c.v.getAt(c.index)
}

// All iterates over borrowed (index, slot) pairs in logical order. The
// yielded slices alias container storage; do not retain them across
// mutations.
func (v *Vector) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		c := v.Cursor()
		for c.Next() {
			if !yield(c.index, c.Borrow()) {
				return
			}
		}
	}
}
