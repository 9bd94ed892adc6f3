package ioext

import (
	"testing"

	"github.com/scigolib/segy/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestTrace0_NoExtendedHeaders(t *testing.T) {
	require.Equal(t, int64(3600), Trace0(0))
}

func TestTrace0_WithExtendedHeaders(t *testing.T) {
	require.Equal(t, int64(3600+2*3200), Trace0(2))
}

func TestTraceSize(t *testing.T) {
	size, err := TraceSize(100, 4)
	require.NoError(t, err)
	require.Equal(t, int64(240+400), size)
}

func TestTraceSize_Overflow(t *testing.T) {
	// A negative sample count from a malformed header converts to a huge
	// uint64, so multiplying it by the sample size overflows.
	_, err := TraceSize(-1, 4)
	require.Error(t, err)
}

func TestTracePosition(t *testing.T) {
	require.Equal(t, int64(3600), TracePosition(3600, 640, 0))
	require.Equal(t, int64(3600+640), TracePosition(3600, 640, 1))
	require.Equal(t, int64(3600+640*5), TracePosition(3600, 640, 5))
}

func TestTraceCount(t *testing.T) {
	count, err := TraceCount(3600+640*10, 3600, 640)
	require.NoError(t, err)
	require.Equal(t, int64(10), count)
}

func TestTraceCount_SizeMismatch(t *testing.T) {
	_, err := TraceCount(3600+640*10+1, 3600, 640)
	require.ErrorIs(t, err, utils.ErrTraceSizeMismatch)
}
