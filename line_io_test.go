package segy

import (
	"path/filepath"
	"testing"

	"github.com/scigolib/segy/internal/codec"
	"github.com/scigolib/segy/internal/core"
	"github.com/stretchr/testify/require"
)

func decodeSamples(t *testing.T, buf []byte) []float32 {
	t.Helper()
	out := make([]float32, len(buf)/4)
	for i := range out {
		bits := codec.GetInt32(buf, i*4)
		out[i] = codec.IBMToIEEE(uint32(bits))
	}
	return out
}

// TestReadLine_InlineLine covers invariant 6: reading inline line 1 returns
// the same samples as sequentially reading its five constituent traces
// (trace indices 0..4, per S1's fixture layout).
func TestReadLine_InlineLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer f.Close()

	geo, err := f.DetectGeometry(core.DefaultInlineByte, core.DefaultCrosslineByte, core.DefaultOffsetByte)
	require.NoError(t, err)

	stride, err := Stride(geo.Sorting, AxisInline, geo.InlineCount, geo.CrosslineCount)
	require.NoError(t, err)
	trace0, err := LineTrace0(1, geo.CrosslineCount, stride, geo.OffsetCount, geo.InlineIndices)
	require.NoError(t, err)

	lines, err := f.ReadLine(trace0, geo.CrosslineCount, stride, geo.OffsetCount)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	for cp := int64(0); cp < 5; cp++ {
		want, err := f.ReadTraceSamples(cp)
		require.NoError(t, err)
		require.Equal(t, want, lines[cp])
	}
}

// TestReadLine_S2S3 decodes trace 0 and trace 6's samples and checks them
// against the literal S2/S3 scenarios.
func TestReadLine_S2S3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer f.Close()

	trace0Samples, err := f.ReadTraceSamples(0)
	require.NoError(t, err)
	got0 := decodeSamples(t, trace0Samples)
	for i, v := range got0 {
		want := float32(1.2 + 0.00001*float64(i))
		require.InDelta(t, want, v, 1e-5)
	}

	trace6Samples, err := f.ReadTraceSamples(6)
	require.NoError(t, err)
	got6 := decodeSamples(t, trace6Samples)
	for i, v := range got6 {
		want := float32(2.21 + 0.00001*float64(i))
		require.InDelta(t, want, v, 1e-5)
	}
}

func TestReadDepthSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer f.Close()

	slice, err := f.ReadDepthSlice(0, 1)
	require.NoError(t, err)
	require.Equal(t, 25*4, len(slice))

	v := codec.IBMToIEEE(uint32(codec.GetInt32(slice, 0)))
	require.InDelta(t, float32(1.2), v, 1e-5)
}

func TestFieldForAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer f.Close()

	out := make([]int32, 25)
	require.NoError(t, f.FieldForAll(core.DefaultInlineByte, 0, 25, 1, out))
	require.Equal(t, int32(1), out[0])
	require.Equal(t, int32(5), out[24])
}

func TestFieldForAll_RejectsZeroStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgy")
	buildSmallFixture(t, path)

	f, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer f.Close()

	out := make([]int32, 1)
	err = f.FieldForAll(core.DefaultInlineByte, 0, 1, 0, out)
	require.Error(t, err)
}
