package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		path     string
		cause    error
		expected string
	}{
		{
			name:     "no path",
			op:       "read trace header",
			cause:    errors.New("short read"),
			expected: "segy: read trace header: short read",
		},
		{
			name:     "with path",
			op:       "open",
			path:     "line.sgy",
			cause:    errors.New("permission denied"),
			expected: "segy: open line.sgy: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &OpError{Op: tt.op, Path: tt.path, Err: tt.cause}
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	require.Nil(t, Wrap("seek", nil))

	cause := errors.New("EOF")
	wrapped := Wrap("seek", cause)
	require.NotNil(t, wrapped)

	var opErr *OpError
	require.True(t, errors.As(wrapped, &opErr))
	require.Equal(t, "seek", opErr.Op)
	require.Equal(t, cause, opErr.Err)
}

func TestWrapPath(t *testing.T) {
	require.Nil(t, WrapPath("open", "x.sgy", nil))

	wrapped := WrapPath("open", "x.sgy", ErrFileOpen)
	require.True(t, errors.Is(wrapped, ErrFileOpen))

	var opErr *OpError
	require.True(t, errors.As(wrapped, &opErr))
	require.Equal(t, "x.sgy", opErr.Path)
}

func TestWrap_ChainedUnwrap(t *testing.T) {
	wrapped := Wrap("read_traceheader", Wrap("seek", ErrFileSeek))
	require.True(t, errors.Is(wrapped, ErrFileSeek))

	var opErr *OpError
	require.True(t, errors.As(wrapped, &opErr))
	require.Equal(t, "read_traceheader", opErr.Op)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrFileOpen, ErrFileSeek, ErrFileRead, ErrFileWrite,
		ErrMmapUnavailable, ErrMmapFailed, ErrInvalidField, ErrInvalidArgs,
		ErrInvalidSorting, ErrInvalidOffsets, ErrTraceSizeMismatch,
		ErrMissingLineIndex, ErrClosed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not equal %v", a, b)
		}
	}
}

func BenchmarkWrap(b *testing.B) {
	cause := errors.New("base error")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Wrap("seek", cause)
	}
}
