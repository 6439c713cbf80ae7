package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	err := api.NewError(api.ErrCodeCapacityExceeded, "push rejected").
		WithContext("reserved", 3)

	require.ErrorIs(t, err, api.ErrCapacityExceeded)
	require.NotErrorIs(t, err, api.ErrAllocation)
	require.Contains(t, err.Error(), "reserved:3")
}

func TestErrorKeepsCause(t *testing.T) {
	cause := errors.New("out of memory")
	err := api.NewError(api.ErrCodeAllocation, "reserve").WithCause(cause)
	wrapped := fmt.Errorf("split: %w", err)

	require.ErrorIs(t, wrapped, api.ErrAllocation)
	require.ErrorIs(t, wrapped, cause)
	require.Equal(t, api.ErrCodeAllocation, api.CodeOf(wrapped))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, api.ErrCodeOK, api.CodeOf(nil))
	require.Equal(t, api.ErrCodeInternal, api.CodeOf(errors.New("x")))
}
