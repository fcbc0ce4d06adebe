package vector

import (
	"fmt"

	"github.com/lumenlang/lumenrt/value"
)

// Slice builds a new, independently-owned vector holding materialized
// copies of the elements in the half-open range [begin, end) of v,
// preserving order. begin == end yields an empty vector.
//
// The new vector inherits the source's configuration (growth policy,
// thread safety, context, memory budget, off-heap placement); opts can
// override any of it. The source is never mutated, even on failure.
func (v *Vector) Slice(begin, end int, opts ...Option) (*Vector, error) {
	v.lock()
	defer v.unlock()

	if v.closed {
		return nil, ErrClosed
	}
	if begin < 0 || begin > end || end > v.num {
		return nil, fmt.Errorf("%w: slice [%d, %d) with length %d", ErrInvalidIndex, begin, end, v.num)
	}

	initial := end - begin
	if initial == 0 {
		initial = 1
	}

	base := []Option{WithGrowth(v.growth)}
	if v.mu != nil {
		base = append(base, WithThreadSafe())
	}
	if v.ctx != nil {
		base = append(base, WithContext(v.ctx))
	}
	if v.acquirer != nil {
		base = append(base, WithMemoryAcquirer(v.acquirer))
	}
	if v.offHeap {
		base = append(base, WithOffHeap())
	}

	dst, err := New(initial, v.stride, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	for i := begin; i < end; i++ {
		data, err := v.getAt(i)
		if err != nil {
			_ = dst.Close()
			return nil, err
		}
		if err := dst.addAt(dst.num, data); err != nil {
			// The materialized copy never made it into dst; release it
			// before unwinding so it is not orphaned.
			if v.ctx != nil {
				_ = v.ctx.Release(value.GetRef(data))
			}
			_ = dst.Close()
			return nil, err
		}
	}
	return dst, nil
}
