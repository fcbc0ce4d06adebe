package vector

import (
	"fmt"

	"github.com/lumenlang/lumenrt/internal/mem"
	"github.com/lumenlang/lumenrt/internal/mmap"
)

// nextCapacity computes the element capacity after an overflow of need
// elements, per the vector's growth policy.
func (v *Vector) nextCapacity(need int) int {
	switch v.growth {
	case GrowthLinear:
		nc := v.max + v.initial
		for nc < v.num+need {
			nc += v.initial
		}
		return nc
	case GrowthExact:
		return v.num + need
	default: // GrowthDouble
		nc := max(v.max*2, v.max+1)
		for nc < v.num+need {
			nc *= 2
		}
		return nc
	}
}

// grow ensures room for need additional elements. Inserting up to exactly
// the current capacity triggers no reallocation.
func (v *Vector) grow(need int) error {
	if v.num+need <= v.max {
		return nil
	}
	return v.realloc(v.nextCapacity(need))
}

// realloc moves storage to a buffer of newMax element slots, preserving
// element bytes and logical order. On failure the vector is unchanged.
// All outstanding borrowed slices and cursors are invalidated.
func (v *Vector) realloc(newMax int) error {
	newBytes := int64(newMax) * int64(v.stride)

	if v.acquirer != nil {
		if err := v.acquirer.AcquireMemory(newBytes); err != nil {
			return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}
	}

	buf, mapping, err := v.allocBuf(int(newBytes))
	if err != nil {
		if v.acquirer != nil {
			v.acquirer.ReleaseMemory(newBytes)
		}
		return fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	copy(buf, v.buf[:v.num*v.stride])
	v.freeBuf()

	v.buf = buf
	v.mapping = mapping
	v.max = newMax
	v.version++
	return nil
}

func (v *Vector) allocBuf(bytes int) ([]byte, *mmap.Mapping, error) {
	if v.offHeap {
		m, err := mmap.MapAnon(bytes)
		if err != nil {
			return nil, nil, err
		}
		return m.Bytes(), m, nil
	}
	return mem.AllocAligned(bytes), nil, nil
}

// freeBuf releases the current buffer: unmaps off-heap storage and returns
// the bytes to the memory budget.
func (v *Vector) freeBuf() {
	if v.buf == nil {
		return
	}
	if v.mapping != nil {
		_ = v.mapping.Close()
	}
	if v.acquirer != nil {
		v.acquirer.ReleaseMemory(int64(v.max) * int64(v.stride))
	}
}
