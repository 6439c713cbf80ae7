package rle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/fake"
	"github.com/momentics/splitvec/pool"
	"github.com/momentics/splitvec/rle"
	"github.com/momentics/splitvec/split"
)

func TestDecodeOverlappingReference(t *testing.T) {
	v := pool.FromSlice([]byte("ab"))
	dec := rle.NewDecoder[byte]()

	n, err := dec.Decode(v, []rle.Op[byte]{
		{Literal: []byte("c")},
		{Distance: 2, Count: 5},
		{Distance: 7, Count: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, "abcbcbcbbc", string(v.Items()))
}

func TestDecodeReferenceIntoContent(t *testing.T) {
	v := pool.FromSlice([]int{1, 2, 3})
	n, err := rle.NewDecoder[int]().Decode(v, []rle.Op[int]{{Distance: 3, Count: 7}})
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}, v.Items())
}

func TestDecodeRejectsBeforeSplitting(t *testing.T) {
	obs := &fake.Observer{}
	v := pool.FromSlice([]int{1})
	_, err := rle.NewDecoder[int](split.WithObserver(obs)).Decode(v, []rle.Op[int]{
		{Literal: []int{2}},
		{Distance: 3, Count: 1},
	})
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	require.Empty(t, obs.Events)
	require.Equal(t, []int{1}, v.Items())
}

func TestDecodeSingleSplit(t *testing.T) {
	obs := &fake.Observer{}
	v := pool.NewVec[byte](0, 0)
	_, err := rle.NewDecoder[byte](split.WithObserver(obs)).Decode(v, []rle.Op[byte]{
		{Literal: []byte("xy")},
		{Distance: 1, Count: 3},
		{Literal: []byte("z")},
	})
	require.NoError(t, err)
	require.Equal(t, "xyyyyz", string(v.Items()))
	require.Equal(t, []string{"split", "commit"}, obs.Kinds())
	require.Equal(t, 6, obs.Events[0].Reserved)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"abcabcabcabcx",
		"aaaaaaaaaaaaaaaa",
		"the quick brown fox jumps over the quick brown dog",
	}
	for _, in := range inputs {
		ops := rle.Encode([]byte(in), 64)
		v := pool.NewVec[byte](0, 0)
		_, err := rle.NewDecoder[byte]().Decode(v, ops)
		require.NoError(t, err)
		require.Equal(t, in, string(v.Items()))
	}
}

func TestEncodeFindsRuns(t *testing.T) {
	ops := rle.Encode([]byte("aaaaaaaa"), 8)
	require.Equal(t, []rle.Op[byte]{
		{Literal: []byte("a")},
		{Distance: 1, Count: 7},
	}, ops)
}
