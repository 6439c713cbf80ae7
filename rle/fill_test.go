package rle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/pool"
	"github.com/momentics/splitvec/rle"
)

const (
	initSize     = 600
	fragmentSize = 256
	fillSize     = 3333
)

func initialVec() *pool.Vec[byte] {
	v := pool.NewVec[byte](initSize, initSize)
	for i := range v.Items() {
		v.Items()[i] = byte(i)
	}
	return v
}

func checkPeriod(t testing.TB, res []byte, period int) {
	t.Helper()
	for i := 0; i+period < len(res); i++ {
		if res[i] != res[i+period] {
			t.Fatalf("res[%d]=%d differs from res[%d]=%d", i, res[i], i+period, res[i+period])
		}
	}
}

func TestFillStrategiesAgree(t *testing.T) {
	var want []byte
	for _, s := range []rle.Strategy{rle.Naive, rle.Push, rle.Chunked} {
		t.Run(s.String(), func(t *testing.T) {
			v := initialVec()
			require.NoError(t, rle.Fill[byte](v, fragmentSize, fillSize, s))
			require.Equal(t, initSize+fillSize, v.Len())
			require.False(t, v.Busy())
			checkPeriod(t, v.Items(), fragmentSize)
			if want == nil {
				want = append([]byte(nil), v.Items()...)
			}
			require.Equal(t, want, v.Items())
		})
	}
}

func TestFillShortCount(t *testing.T) {
	for _, s := range []rle.Strategy{rle.Naive, rle.Push, rle.Chunked} {
		v := pool.FromSlice([]int{1, 2, 3, 4})
		require.NoError(t, rle.Fill[int](v, 3, 2, s))
		require.Equal(t, []int{1, 2, 3, 4, 2, 3}, v.Items(), s.String())
	}
}

func TestFillRejectsBadDistance(t *testing.T) {
	v := pool.FromSlice([]int{1, 2})
	require.ErrorIs(t, rle.Fill[int](v, 0, 1, rle.Chunked), api.ErrInvalidArgument)
	require.ErrorIs(t, rle.Fill[int](v, 3, 1, rle.Push), api.ErrInvalidArgument)
	require.ErrorIs(t, rle.Fill[int](v, 1, 1, rle.Strategy(9)), api.ErrInvalidArgument)
	require.Equal(t, []int{1, 2}, v.Items())
}

func TestFillPropagatesReservationFailure(t *testing.T) {
	v := pool.FromSlice([]int{1, 2}, pool.WithMaxCap(4))
	require.ErrorIs(t, rle.Fill[int](v, 1, 8, rle.Chunked), api.ErrAllocation)
	require.ErrorIs(t, rle.Fill[int](v, 1, 8, rle.Naive), api.ErrResourceExhausted)
	require.Equal(t, []int{1, 2}, v.Items())
	require.False(t, v.Busy())
}

func TestParseStrategy(t *testing.T) {
	s, err := rle.ParseStrategy("Chunked")
	require.NoError(t, err)
	require.Equal(t, rle.Chunked, s)

	_, err = rle.ParseStrategy("fast")
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	require.Equal(t, "Strategy(7)", rle.Strategy(7).String())
}
