package vector

import (
	"errors"
	"fmt"

	"github.com/lumenlang/lumenrt/value"
)

// AddFirst inserts data at the front, shifting existing elements up.
func (v *Vector) AddFirst(data []byte) error {
	v.lock()
	defer v.unlock()
	return v.addAt(0, data)
}

// AddLast appends data at the back.
func (v *Vector) AddLast(data []byte) error {
	v.lock()
	defer v.unlock()
	return v.addAt(v.num, data)
}

// AddAt inserts data at the given logical index, shifting subsequent
// elements up. index == Len() appends.
func (v *Vector) AddAt(index int, data []byte) error {
	v.lock()
	defer v.unlock()
	return v.addAt(index, data)
}

func (v *Vector) addAt(index int, data []byte) error {
	if v.closed {
		return ErrClosed
	}
	if len(data) != v.stride {
		return fmt.Errorf("%w: %d bytes, stride is %d", ErrStrideMismatch, len(data), v.stride)
	}
	if index < 0 || index > v.num {
		return &IndexError{Index: index, Len: v.num}
	}
	if err := v.grow(1); err != nil {
		return err
	}

	s := v.stride
	copy(v.buf[(index+1)*s:(v.num+1)*s], v.buf[index*s:v.num*s])
	copy(v.buf[index*s:(index+1)*s], data)
	v.num++
	v.version++
	return nil
}

// BorrowFirst returns a view of the first element's slot, valid only until
// the next mutating call.
func (v *Vector) BorrowFirst() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.borrowAt(0)
}

// BorrowLast returns a view of the last element's slot, valid only until
// the next mutating call.
func (v *Vector) BorrowLast() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.borrowAt(v.num - 1)
}

// BorrowAt returns a view of the slot at index, valid only until the next
// mutating call.
func (v *Vector) BorrowAt(index int) ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.borrowAt(index)
}

func (v *Vector) borrowAt(index int) ([]byte, error) {
	if v.closed {
		return nil, ErrClosed
	}
	if v.num == 0 {
		return nil, ErrEmpty
	}
	if index < 0 || index >= v.num {
		return nil, &IndexError{Index: index, Len: v.num}
	}
	s := v.stride
	return v.buf[index*s : (index+1)*s : (index+1)*s], nil
}

// GetFirst returns a materialized copy of the first element.
func (v *Vector) GetFirst() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.getAt(0)
}

// GetLast returns a materialized copy of the last element.
func (v *Vector) GetLast() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.getAt(v.num - 1)
}

// GetAt returns a materialized copy of the element at index: a byte copy
// for plain values, a retained reference (via the runtime context) for
// managed ones. The copy is safe to hold across subsequent mutations;
// managed copies must eventually be released by the caller.
func (v *Vector) GetAt(index int) ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.getAt(index)
}

func (v *Vector) getAt(index int) ([]byte, error) {
	slot, err := v.borrowAt(index)
	if err != nil {
		return nil, err
	}
	if v.ctx != nil {
		owned, err := v.ctx.Materialize(value.GetRef(slot))
		if err != nil {
			return nil, err
		}
		return owned.Bytes(), nil
	}
	out := make([]byte, v.stride)
	copy(out, slot)
	return out, nil
}

// SetFirst overwrites the first element.
func (v *Vector) SetFirst(data []byte) error {
	v.lock()
	defer v.unlock()
	return v.setAt(0, data)
}

// SetLast overwrites the last element.
func (v *Vector) SetLast(data []byte) error {
	v.lock()
	defer v.unlock()
	return v.setAt(v.num-1, data)
}

// SetAt overwrites the element at index. A managed reference previously
// held in the slot is released through the runtime context first.
func (v *Vector) SetAt(index int, data []byte) error {
	v.lock()
	defer v.unlock()
	return v.setAt(index, data)
}

func (v *Vector) setAt(index int, data []byte) error {
	if len(data) != v.stride {
		return fmt.Errorf("%w: %d bytes, stride is %d", ErrStrideMismatch, len(data), v.stride)
	}
	slot, err := v.borrowAt(index)
	if err != nil {
		return err
	}
	if v.ctx != nil {
		if err := v.ctx.Release(value.GetRef(slot)); err != nil {
			return err
		}
	}
	copy(slot, data)
	v.version++
	return nil
}

// PopFirst removes the first element and returns a materialized copy of it.
func (v *Vector) PopFirst() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.popAt(0)
}

// PopLast removes the last element and returns a materialized copy of it.
func (v *Vector) PopLast() ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.popAt(v.num - 1)
}

// PopAt removes the element at index and returns a materialized copy,
// shifting subsequent elements down. Capacity never shrinks.
func (v *Vector) PopAt(index int) ([]byte, error) {
	v.lock()
	defer v.unlock()
	return v.popAt(index)
}

func (v *Vector) popAt(index int) ([]byte, error) {
	out, err := v.getAt(index)
	if err != nil {
		return nil, err
	}
	if err := v.removeAt(index); err != nil {
		// Keep ownership consistent: drop the copy we just made.
		if v.ctx != nil {
			err = errors.Join(err, v.ctx.Release(value.GetRef(out)))
		}
		return nil, err
	}
	return out, nil
}

// RemoveFirst deletes the first element without returning it.
func (v *Vector) RemoveFirst() error {
	v.lock()
	defer v.unlock()
	return v.removeAt(0)
}

// RemoveLast deletes the last element without returning it.
func (v *Vector) RemoveLast() error {
	v.lock()
	defer v.unlock()
	return v.removeAt(v.num - 1)
}

// RemoveAt deletes the element at index, releasing any managed reference
// it held and shifting subsequent elements down.
func (v *Vector) RemoveAt(index int) error {
	v.lock()
	defer v.unlock()
	return v.removeAt(index)
}

func (v *Vector) removeAt(index int) error {
	if v.closed {
		return ErrClosed
	}
	if v.num == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= v.num {
		return &IndexError{Index: index, Len: v.num}
	}

	s := v.stride
	if v.ctx != nil {
		if err := v.ctx.Release(value.GetRef(v.buf[index*s:])); err != nil {
			return err
		}
	}
	copy(v.buf[index*s:], v.buf[(index+1)*s:v.num*s])
	v.num--
	v.version++
	return nil
}
