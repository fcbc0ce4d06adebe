package vector

// Tx is a view of a Vector whose operations skip per-call locking. It is
// only handed out by Locked, which holds the guard for the duration of the
// callback, so a sequence of Tx calls forms one critical section without
// self-deadlocking.
//
// A Tx must not escape its callback.
type Tx struct {
	v *Vector
}

// Locked acquires the guard once and runs fn against a view of the vector
// whose operations do not lock again. The guard is released on all exit
// paths, including panics and error returns.
//
// On vectors constructed without WithThreadSafe this is just a scoped
// grouping; no locking occurs.
func (v *Vector) Locked(fn func(*Tx) error) error {
	v.lock()
	defer v.unlock()
	return fn(&Tx{v: v})
}

// Len returns the current element count.
func (tx *Tx) Len() int { return tx.v.num }

// Cap returns the allocated element capacity.
func (tx *Tx) Cap() int { return tx.v.max }

// Stride returns the fixed byte size of every element slot.
func (tx *Tx) Stride() int { return tx.v.stride }

// AddFirst inserts data at the front.
func (tx *Tx) AddFirst(data []byte) error { return tx.v.addAt(0, data) }

// AddLast appends data at the back.
func (tx *Tx) AddLast(data []byte) error { return tx.v.addAt(tx.v.num, data) }

// AddAt inserts data at the given logical index.
func (tx *Tx) AddAt(index int, data []byte) error { return tx.v.addAt(index, data) }

// BorrowFirst returns a view of the first element's slot.
func (tx *Tx) BorrowFirst() ([]byte, error) { return tx.v.borrowAt(0) }

// BorrowLast returns a view of the last element's slot.
func (tx *Tx) BorrowLast() ([]byte, error) { return tx.v.borrowAt(tx.v.num - 1) }

// BorrowAt returns a view of the slot at index.
func (tx *Tx) BorrowAt(index int) ([]byte, error) { return tx.v.borrowAt(index) }

// GetFirst returns a materialized copy of the first element.
func (tx *Tx) GetFirst() ([]byte, error) { return tx.v.getAt(0) }

// GetLast returns a materialized copy of the last element.
func (tx *Tx) GetLast() ([]byte, error) { return tx.v.getAt(tx.v.num - 1) }

// GetAt returns a materialized copy of the element at index.
func (tx *Tx) GetAt(index int) ([]byte, error) { return tx.v.getAt(index) }

// SetFirst overwrites the first element.
func (tx *Tx) SetFirst(data []byte) error { return tx.v.setAt(0, data) }

// SetLast overwrites the last element.
func (tx *Tx) SetLast(data []byte) error { return tx.v.setAt(tx.v.num-1, data) }

// SetAt overwrites the element at index.
func (tx *Tx) SetAt(index int, data []byte) error { return tx.v.setAt(index, data) }

// SetData replaces the raw buffer content; see Vector.SetData.
func (tx *Tx) SetData(data []byte) error { return tx.v.setData(data) }

// PopFirst removes and returns the first element.
func (tx *Tx) PopFirst() ([]byte, error) { return tx.v.popAt(0) }

// PopLast removes and returns the last element.
func (tx *Tx) PopLast() ([]byte, error) { return tx.v.popAt(tx.v.num - 1) }

// PopAt removes and returns the element at index.
func (tx *Tx) PopAt(index int) ([]byte, error) { return tx.v.popAt(index) }

// RemoveFirst deletes the first element.
func (tx *Tx) RemoveFirst() error { return tx.v.removeAt(0) }

// RemoveLast deletes the last element.
func (tx *Tx) RemoveLast() error { return tx.v.removeAt(tx.v.num - 1) }

// RemoveAt deletes the element at index.
func (tx *Tx) RemoveAt(index int) error { return tx.v.removeAt(index) }

// Reverse reverses the logical element order in place.
func (tx *Tx) Reverse() { tx.v.reverse() }

// Clear drops all elements, retaining capacity.
func (tx *Tx) Clear() error {
	if tx.v.closed {
		return ErrClosed
	}
	return tx.v.clear()
}

// Resize pre-sets the element capacity directly.
func (tx *Tx) Resize(newMax int) error { return tx.v.resize(newMax) }

// Cursor returns a fresh cursor. Iterating through it inside the Locked
// callback is safe against concurrent writers.
func (tx *Tx) Cursor() *Cursor { return tx.v.cursor() }
