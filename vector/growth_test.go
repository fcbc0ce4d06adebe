package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenrt/resource"
)

func fill(t *testing.T, v *Vector, n int) {
	t.Helper()
	for i := range n {
		require.NoError(t, v.AddLast(i64(int64(i))))
	}
}

func TestGrowthDouble(t *testing.T) {
	v, err := New(2, 8, WithGrowth(GrowthDouble))
	require.NoError(t, err)
	defer v.Close()

	// Filling to exactly the current capacity triggers no reallocation.
	fill(t, v, 2)
	assert.Equal(t, 2, v.Cap())

	// The overflowing third insert doubles capacity.
	require.NoError(t, v.AddLast(i64(2)))
	assert.Equal(t, 4, v.Cap())

	require.NoError(t, v.AddLast(i64(3)))
	assert.Equal(t, 4, v.Cap())

	require.NoError(t, v.AddLast(i64(4)))
	assert.Equal(t, 8, v.Cap())
}

func TestGrowthLinear(t *testing.T) {
	v, err := New(3, 8, WithGrowth(GrowthLinear))
	require.NoError(t, err)
	defer v.Close()

	fill(t, v, 3)
	assert.Equal(t, 3, v.Cap())

	require.NoError(t, v.AddLast(i64(3)))
	assert.Equal(t, 6, v.Cap())

	fill(t, v, 2)
	assert.Equal(t, 6, v.Cap())

	require.NoError(t, v.AddLast(i64(6)))
	assert.Equal(t, 9, v.Cap())
}

func TestGrowthExact(t *testing.T) {
	v, err := New(2, 8, WithGrowth(GrowthExact))
	require.NoError(t, err)
	defer v.Close()

	fill(t, v, 2)
	assert.Equal(t, 2, v.Cap())

	// Exact growth adds precisely the shortfall, no slack.
	require.NoError(t, v.AddLast(i64(2)))
	assert.Equal(t, 3, v.Cap())

	require.NoError(t, v.AddLast(i64(3)))
	assert.Equal(t, 4, v.Cap())
}

// The canonical walkthrough: stride 8, initial capacity 2, doubling policy.
func TestGrowthScenario(t *testing.T) {
	v, err := New(2, 8)
	require.NoError(t, err)
	defer v.Close()

	caps := []int{2, 2, 4, 4}
	for i, want := range caps {
		require.NoError(t, v.AddLast(i64(int64(i+1))))
		assert.Equal(t, want, v.Cap(), "after insert %d", i+1)
	}
	assert.Equal(t, 4, v.Len())

	for i := range 4 {
		got, err := v.GetAt(i)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), asI64(got))
	}

	popped, err := v.PopFirst()
	require.NoError(t, err)
	assert.Equal(t, int64(1), asI64(popped))
	assert.Equal(t, 3, v.Len())

	borrowed, err := v.BorrowAt(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), asI64(borrowed))
}

func TestGrowthBudget(t *testing.T) {
	// 2 slots of 8 bytes = 16 bytes resident; doubling to 4 slots needs
	// 32 more in flight before the old buffer is returned.
	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 40})

	v, err := New(2, 8, WithMemoryAcquirer(ctrl))
	require.NoError(t, err)

	fill(t, v, 2)
	assert.Equal(t, int64(16), ctrl.MemoryUsed())

	// Growth exceeds the budget; the vector is left in its prior state.
	err = v.AddLast(i64(2))
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2, v.Cap())
	assert.Equal(t, int64(16), ctrl.MemoryUsed())

	got, err := v.GetAt(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), asI64(got))

	require.NoError(t, v.Close())
	assert.Equal(t, int64(0), ctrl.MemoryUsed())
}

func TestOffHeap(t *testing.T) {
	v, err := New(2, 8, WithOffHeap())
	require.NoError(t, err)

	fill(t, v, 10) // forces reallocation across mappings
	for i := range 10 {
		got, err := v.GetAt(i)
		require.NoError(t, err)
		assert.Equal(t, int64(i), asI64(got))
	}
	require.NoError(t, v.Close())
}
