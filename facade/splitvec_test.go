package facade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/control"
	"github.com/momentics/splitvec/facade"
	"github.com/momentics/splitvec/log/testlogger"
)

func TestRuntimeLifecycle(t *testing.T) {
	rt, err := facade.New(facade.DefaultConfig(), testlogger.New(t))
	require.NoError(t, err)

	host := facade.NewVec[int](rt)
	require.GreaterOrEqual(t, host.Cap(), 4096)
	require.NoError(t, host.Append(1, 2, 3))

	content, ext, err := facade.Split[int](rt, host, 3)
	require.NoError(t, err)
	_, err = ext.ExtendFromSlice(content.Slice())
	require.NoError(t, err)
	require.NoError(t, ext.Commit())
	require.Equal(t, []int{1, 2, 3, 1, 2, 3}, host.Items())

	state := rt.DumpState()
	require.Equal(t, int64(1), state[control.KeyCommits])
	require.Contains(t, state, "split.history")
	require.Contains(t, state, "platform.cpus")

	last, ok := rt.History().Last()
	require.True(t, ok)
	require.Equal(t, control.CommitRecord{Base: 3, Written: 3, Reserved: 3, At: last.At}, last)

	families, err := rt.Gatherer().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestRuntimeMaxCapacity(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.DefaultReserve = 2
	cfg.MaxCapacity = 4
	cfg.EnableMetrics = false
	rt, err := facade.New(cfg, testlogger.New(t))
	require.NoError(t, err)
	require.Nil(t, rt.Gatherer())

	host := facade.NewVec[byte](rt)
	_, _, err = facade.Split[byte](rt, host, 5)
	require.ErrorIs(t, err, api.ErrAllocation)
	require.Equal(t, int64(0), rt.Metrics().Snapshot()[control.KeySplits])
}

func TestRuntimeReloadDefaultReserve(t *testing.T) {
	rt, err := facade.New(nil, testlogger.New(t))
	require.NoError(t, err)
	rt.Control().SetConfig(map[string]any{control.CfgDefaultReserve: 8})
	require.Equal(t, 8, rt.DefaultReserve())
	require.Equal(t, 8, facade.NewVec[int](rt).Cap())
}

func TestConfigValidate(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.HistoryLimit = -1
	_, err := facade.New(cfg, nil)
	require.ErrorIs(t, err, api.ErrInvalidArgument)

	cfg = facade.DefaultConfig()
	cfg.LogLevel = "chatty"
	require.ErrorIs(t, cfg.Validate(), api.ErrInvalidArgument)
}
