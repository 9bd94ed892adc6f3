package segy

import (
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// Sorting is which spatial axis varies fastest in file order (GLOSSARY).
type Sorting int

const (
	SortingInline Sorting = iota
	SortingCrossline
)

func (s Sorting) String() string {
	switch s {
	case SortingInline:
		return "INLINE"
	case SortingCrossline:
		return "CROSSLINE"
	default:
		return "UNKNOWN"
	}
}

// Axis names one of the two spatial dimensions, used by Stride to pick
// which mirror-symmetric branch applies.
type Axis int

const (
	AxisInline Axis = iota
	AxisCrossline
)

// Geometry is the derived (never persisted) description of a file's
// inline x crossline x offset cube (§3).
type Geometry struct {
	Sorting          Sorting
	InlineCount      int32
	CrosslineCount   int32
	OffsetCount      int32
	InlineIndices    []int32
	CrosslineIndices []int32
	OffsetIndices    []int32
}

func (f *File) traceField(i int64, byteOffset int) (int32, error) {
	hdr, err := f.ReadTraceHeader(i)
	if err != nil {
		return 0, err
	}
	return core.GetTraceField(hdr, byteOffset)
}

// DetectSorting walks trace 0's offset run, then applies the tie-break
// table over trace 0, trace 1 and trace T-1's (T from TraceCount)
// inline/crossline values (§4.3). The offset-run walk's own length is not
// needed by the tie-break (CountOffsets recomputes it independently); the
// walk is still performed here, with its termination reason captured
// explicitly as reachedEOF, so nothing relies on an incidental loop exit
// condition the way the original walk-until-offset-changes did.
func (f *File) DetectSorting(ilByte, xlByte, offByte int) (Sorting, error) {
	T, err := f.TraceCount()
	if err != nil {
		return 0, err
	}
	if T == 0 {
		return 0, utils.Wrap("detect sorting", utils.ErrInvalidSorting)
	}

	il0, err := f.traceField(0, ilByte)
	if err != nil {
		return 0, err
	}
	xl0, err := f.traceField(0, xlByte)
	if err != nil {
		return 0, err
	}

	_, _ = f.offsetRunLength(offByte, T)

	lastIdx := T - 1
	il1, err := f.traceField(minInt64(1, lastIdx), ilByte)
	if err != nil {
		return 0, err
	}
	xl1, err := f.traceField(minInt64(1, lastIdx), xlByte)
	if err != nil {
		return 0, err
	}
	ilLast, err := f.traceField(lastIdx, ilByte)
	if err != nil {
		return 0, err
	}
	xlLast, err := f.traceField(lastIdx, xlByte)
	if err != nil {
		return 0, err
	}

	switch {
	case il0 == ilLast:
		return SortingCrossline, nil
	case xl0 == xlLast:
		return SortingInline, nil
	case il0 == il1:
		return SortingInline, nil
	case xl0 == xl1:
		return SortingCrossline, nil
	default:
		return 0, utils.Wrap("detect sorting", utils.ErrInvalidSorting)
	}
}

// offsetRunLength walks forward from trace 0 while the offset field holds
// steady, returning the run length and whether the walk reached EOF
// without the offset ever changing.
func (f *File) offsetRunLength(offByte int, T int64) (int64, bool) {
	off0, err := f.traceField(0, offByte)
	if err != nil {
		return 0, false
	}
	for traceno := int64(1); traceno < T; traceno++ {
		off, err := f.traceField(traceno, offByte)
		if err != nil {
			return traceno, true
		}
		if off != off0 {
			return traceno, false
		}
	}
	return T, true
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// CountOffsets advances from trace 0 while inline and crossline both match
// trace 0; the first trace that differs (or T if none does) gives the
// offset count (§4.3).
func (f *File) CountOffsets(ilByte, xlByte int) (int32, error) {
	T, err := f.TraceCount()
	if err != nil {
		return 0, err
	}
	if T == 1 {
		return 1, nil
	}

	il0, err := f.traceField(0, ilByte)
	if err != nil {
		return 0, err
	}
	xl0, err := f.traceField(0, xlByte)
	if err != nil {
		return 0, err
	}

	for idx := int64(1); idx < T; idx++ {
		il, err := f.traceField(idx, ilByte)
		if err != nil {
			return 0, err
		}
		xl, err := f.traceField(idx, xlByte)
		if err != nil {
			return 0, err
		}
		if il != il0 || xl != xl0 {
			return int32(idx), nil
		}
	}
	return int32(T), nil
}

// CountLines jumps offsets traces at a time from trace 0 until the field at
// lineByte and the offset field both match trace 0 again (or the file ends),
// and returns the number of steps taken. Given the field of the axis that
// varies fastest in file order, that is the line count of that axis (§4.3).
func (f *File) CountLines(lineByte, offByte int, offsets int32) (int32, error) {
	T, err := f.TraceCount()
	if err != nil {
		return 0, err
	}
	if offsets <= 0 {
		return 0, utils.Wrap("count lines", utils.ErrInvalidArgs)
	}

	slow0, err := f.traceField(0, lineByte)
	if err != nil {
		return 0, err
	}
	off0, err := f.traceField(0, offByte)
	if err != nil {
		return 0, err
	}

	count := int32(1)
	idx := int64(offsets)
	for idx < T {
		slowV, err := f.traceField(idx, lineByte)
		if err != nil {
			return 0, err
		}
		offV, err := f.traceField(idx, offByte)
		if err != nil {
			return 0, err
		}
		if slowV == slow0 && offV == off0 {
			break
		}
		count++
		idx += int64(offsets)
	}
	return count, nil
}

// LineCounts returns (inline_count, crossline_count): CountLines over the
// fast axis's field gives the fast count, T / (fast_count * offsets) the
// slow count, swapped per sorting (§4.3 convenience wrapper).
func (f *File) LineCounts(sorting Sorting, ilByte, xlByte, offByte int, offsets int32) (int32, int32, error) {
	T, err := f.TraceCount()
	if err != nil {
		return 0, 0, err
	}

	var fastByte int
	switch sorting {
	case SortingInline:
		fastByte = xlByte
	case SortingCrossline:
		fastByte = ilByte
	default:
		return 0, 0, utils.Wrap("line counts", utils.ErrInvalidSorting)
	}

	fastCount, err := f.CountLines(fastByte, offByte, offsets)
	if err != nil {
		return 0, 0, err
	}
	slowCount := int32(T) / (fastCount * offsets)

	switch sorting {
	case SortingInline:
		return slowCount, fastCount, nil
	default:
		return fastCount, slowCount, nil
	}
}

// CollectLineIndices fills out[0:count] with the field value at fieldByte
// from traces start, start+stride, start+2*stride, … (§4.3).
func (f *File) CollectLineIndices(fieldByte int, start, stride int64, count int32, out []int32) error {
	if int32(len(out)) < count {
		return utils.Wrap("collect line indices", utils.ErrInvalidArgs)
	}
	for k := int32(0); k < count; k++ {
		idx := start + int64(k)*stride
		v, err := f.traceField(idx, fieldByte)
		if err != nil {
			return err
		}
		out[k] = v
	}
	return nil
}

// Stride returns the trace-group stride to use when reading a line along
// axis: 1 when axis is the slow axis under sorting, otherwise that same
// axis's line count (§4.3,
// Design Note mirror-symmetric table).
func Stride(sorting Sorting, axis Axis, inlineCount, crosslineCount int32) (int32, error) {
	switch axis {
	case AxisInline:
		switch sorting {
		case SortingInline:
			return 1, nil
		case SortingCrossline:
			return inlineCount, nil
		}
	case AxisCrossline:
		switch sorting {
		case SortingCrossline:
			return 1, nil
		case SortingInline:
			return crosslineCount, nil
		}
	}
	return 0, utils.ErrInvalidSorting
}

// LineTrace0 locates the first trace of line targetLineno at offset 0,
// searching linenos linearly (§4.3).
func LineTrace0(targetLineno int32, fastCount, stride, offsetCount int32, linenos []int32) (int64, error) {
	pos := -1
	for i, v := range linenos {
		if v == targetLineno {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 0, utils.ErrMissingLineIndex
	}

	var idx int64
	if stride == 1 {
		idx = int64(pos) * int64(fastCount)
	} else {
		idx = int64(pos)
	}
	return idx * int64(offsetCount), nil
}

// DetectGeometry runs the full geometry-inference pipeline with the given
// byte offsets, returning the assembled descriptor.
func (f *File) DetectGeometry(ilByte, xlByte, offByte int) (*Geometry, error) {
	sorting, err := f.DetectSorting(ilByte, xlByte, offByte)
	if err != nil {
		return nil, err
	}
	offsetCount, err := f.CountOffsets(ilByte, xlByte)
	if err != nil {
		return nil, err
	}
	T, err := f.TraceCount()
	if err != nil {
		return nil, err
	}
	if int64(offsetCount) > T {
		return nil, utils.Wrap("detect geometry", utils.ErrInvalidOffsets)
	}
	inlineCount, crosslineCount, err := f.LineCounts(sorting, ilByte, xlByte, offByte, offsetCount)
	if err != nil {
		return nil, err
	}

	offsetIndices := make([]int32, offsetCount)
	if err := f.CollectLineIndices(offByte, 0, 1, offsetCount, offsetIndices); err != nil {
		return nil, err
	}

	var inlineStride, crosslineStride int64
	switch sorting {
	case SortingInline:
		inlineStride = int64(crosslineCount) * int64(offsetCount)
		crosslineStride = int64(offsetCount)
	case SortingCrossline:
		inlineStride = int64(offsetCount)
		crosslineStride = int64(inlineCount) * int64(offsetCount)
	}

	inlineIndices := make([]int32, inlineCount)
	if err := f.CollectLineIndices(ilByte, 0, inlineStride, inlineCount, inlineIndices); err != nil {
		return nil, err
	}
	crosslineIndices := make([]int32, crosslineCount)
	if err := f.CollectLineIndices(xlByte, 0, crosslineStride, crosslineCount, crosslineIndices); err != nil {
		return nil, err
	}

	return &Geometry{
		Sorting:          sorting,
		InlineCount:      inlineCount,
		CrosslineCount:   crosslineCount,
		OffsetCount:      offsetCount,
		InlineIndices:    inlineIndices,
		CrosslineIndices: crosslineIndices,
		OffsetIndices:    offsetIndices,
	}, nil
}
