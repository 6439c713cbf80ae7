package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/pool"
)

func TestVecReserveKeepsContents(t *testing.T) {
	v := pool.FromSlice([]int{1, 2, 3})
	require.NoError(t, v.Reserve(10))
	require.GreaterOrEqual(t, v.Cap(), 13)
	require.Equal(t, []int{1, 2, 3}, v.Items())
	require.Len(t, v.Storage(), v.Cap())
}

func TestVecReserveWithinCapacityDoesNotMove(t *testing.T) {
	v := pool.NewVec[int](2, 8)
	before := &v.Storage()[0]
	require.NoError(t, v.Reserve(6))
	require.Same(t, before, &v.Storage()[0])
}

func TestVecMaxCap(t *testing.T) {
	v := pool.NewVec[byte](4, 4, pool.WithMaxCap(6))
	require.NoError(t, v.Reserve(2))
	require.Equal(t, 6, v.Cap())

	err := v.Reserve(3)
	require.ErrorIs(t, err, api.ErrResourceExhausted)
	require.Equal(t, 4, v.Len())
}

func TestVecReserveNegative(t *testing.T) {
	v := pool.NewVec[int](0, 0)
	require.ErrorIs(t, v.Reserve(-1), api.ErrInvalidArgument)
}

func TestVecExclusive(t *testing.T) {
	v := pool.NewVec[int](0, 4)
	require.NoError(t, v.Acquire())
	require.True(t, v.Busy())
	require.ErrorIs(t, v.Acquire(), api.ErrHostBusy)
	require.Panics(t, func() { _ = v.Append(1) })
	require.Panics(t, func() { v.Reset() })
	require.Panics(t, func() { v.SetLen(1) })
	require.ErrorIs(t, v.Reserve(16), api.ErrHostBusy)
	require.Equal(t, 4, v.Cap())

	v.Release()
	require.False(t, v.Busy())
	require.NoError(t, v.Append(1, 2))
	require.Equal(t, []int{1, 2}, v.Items())
}

func TestVecTruncateClearsTail(t *testing.T) {
	v := pool.FromSlice([]int{1, 2, 3, 4})
	v.Truncate(2)
	require.Equal(t, []int{1, 2}, v.Items())
	require.Equal(t, []int{1, 2, 0, 0}, v.Storage())
	v.Truncate(10)
	require.Equal(t, 2, v.Len())
}

func TestVecPoolReuse(t *testing.T) {
	vp := pool.NewVecPool[byte](128)
	v := vp.Get()
	require.Equal(t, 0, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 128)
	require.NoError(t, v.Append('a', 'b'))

	vp.Put(v)
	v2 := vp.Get()
	require.Equal(t, 0, v2.Len())
	require.GreaterOrEqual(t, v2.Cap(), 128)
}

func TestVecPoolDropsBusy(t *testing.T) {
	vp := pool.NewVecPool[int](4)
	v := vp.Get()
	require.NoError(t, v.Acquire())
	require.NotPanics(t, func() { vp.Put(v) })
	require.True(t, v.Busy())
}
