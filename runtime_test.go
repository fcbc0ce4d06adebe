package lumenrt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumenrt/value"
	"github.com/lumenlang/lumenrt/vector"
)

func i64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func TestRuntimeHandleTable(t *testing.T) {
	rt := New(WithLogger(NoopLogger()))
	defer rt.Close()

	h, v, err := rt.NewVector(4, 8)
	require.NoError(t, err)
	require.NotZero(t, h)

	got, err := rt.Vector(h)
	require.NoError(t, err)
	assert.Same(t, v, got)
	assert.Equal(t, 1, rt.Vectors())

	require.NoError(t, rt.DropVector(h))
	assert.Equal(t, 0, rt.Vectors())

	_, err = rt.Vector(h)
	assert.ErrorIs(t, err, ErrUnknownHandle)

	var he *HandleError
	require.ErrorAs(t, rt.DropVector(h), &he)
	assert.Equal(t, h, he.Handle)
}

func TestRuntimeMemoryBudget(t *testing.T) {
	rt := New(WithLogger(NoopLogger()), WithMemoryLimit(64))
	defer rt.Close()

	// 4 slots of 8 bytes fit the budget.
	_, v, err := rt.NewVector(4, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(32), rt.Controller().MemoryUsed())

	// A second vector of the same shape exhausts it; growth then fails
	// while the vector stays usable.
	_, _, err = rt.NewVector(4, 8)
	require.NoError(t, err)

	for i := range 4 {
		require.NoError(t, v.AddLast(i64(int64(i))))
	}
	err = v.AddLast(i64(4))
	assert.ErrorIs(t, err, vector.ErrAllocationFailed)
	assert.Equal(t, 4, v.Len())

	// Construction beyond the budget fails outright.
	_, _, err = rt.NewVector(4, 8)
	assert.ErrorIs(t, err, vector.ErrAllocationFailed)
}

func TestRuntimeManagedVector(t *testing.T) {
	rt := New(WithLogger(NoopLogger()))
	defer rt.Close()

	_, v, err := rt.NewManagedVector(4)
	require.NoError(t, err)
	assert.Equal(t, value.RefSize, v.Stride())

	ref := rt.Heap().Alloc("hello")
	require.NoError(t, v.AddLast(ref.Bytes()))
	assert.Equal(t, uint64(1), rt.Heap().Live())

	require.NoError(t, v.RemoveFirst())
	assert.Equal(t, uint64(0), rt.Heap().Live())
}

func TestRuntimeClose(t *testing.T) {
	rt := New(WithLogger(NoopLogger()))

	h, _, err := rt.NewVector(4, 8)
	require.NoError(t, err)

	require.NoError(t, rt.Close())
	require.NoError(t, rt.Close()) // idempotent

	_, err = rt.Vector(h)
	assert.ErrorIs(t, err, ErrRuntimeClosed)
	_, _, err = rt.NewVector(4, 8)
	assert.ErrorIs(t, err, ErrRuntimeClosed)
	assert.ErrorIs(t, rt.DropVector(h), ErrRuntimeClosed)

	// All budgeted bytes were returned on close.
	assert.Equal(t, int64(0), rt.Controller().MemoryUsed())
}
