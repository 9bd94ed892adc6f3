package segy

import (
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// ReadLine reads fastCount contiguous-in-line traces' sample buffers
// starting at lineTrace0, spaced stride*offsetCount trace positions apart
// (§4.3). lineTrace0 must already be the post-multiplied trace index
// LineTrace0 returns; no implicit x offsetCount is applied here (§9,
// resolving the read_line/write_line asymmetry).
func (f *File) ReadLine(lineTrace0 int64, fastCount, stride, offsetCount int32) ([][]byte, error) {
	if fastCount < 0 {
		return nil, utils.Wrap("read line", utils.ErrInvalidArgs)
	}
	out := make([][]byte, fastCount)
	step := int64(stride) * int64(offsetCount)
	for k := int32(0); k < fastCount; k++ {
		idx := lineTrace0 + int64(k)*step
		samples, err := f.ReadTraceSamples(idx)
		if err != nil {
			return nil, err
		}
		out[k] = samples
	}
	return out, nil
}

// WriteLine writes fastCount trace sample buffers starting at
// lineTrace0, mirroring ReadLine's position arithmetic. Both functions
// take exactly the post-multiplied index LineTrace0 produces (§9).
func (f *File) WriteLine(lineTrace0 int64, stride, offsetCount int32, samples [][]byte) error {
	step := int64(stride) * int64(offsetCount)
	for k, buf := range samples {
		idx := lineTrace0 + int64(k)*step
		if err := f.WriteTraceSamples(idx, buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadDepthSlice reads the single sample at index depth from every
// offsets-th trace (traces 0, offsets, 2*offsets, …), producing a 2-D slice at
// constant time (§4.3).
func (f *File) ReadDepthSlice(depth int32, offsets int32) ([]byte, error) {
	if offsets <= 0 {
		return nil, utils.Wrap("read depth slice", utils.ErrInvalidArgs)
	}
	total, err := f.TraceCount()
	if err != nil {
		return nil, err
	}

	sampleSize := core.SampleSize(f.formatCode)
	positions := total / int64(offsets)
	out := make([]byte, positions*int64(sampleSize))

	for i := int64(0); i < positions; i++ {
		samples, err := f.ReadTraceSamples(i * int64(offsets))
		if err != nil {
			return nil, err
		}
		start := int(depth) * sampleSize
		if start+sampleSize > len(samples) {
			return nil, utils.Wrap("read depth slice", utils.ErrInvalidArgs)
		}
		copy(out[i*int64(sampleSize):(i+1)*int64(sampleSize)], samples[start:start+sampleSize])
	}
	return out, nil
}

// FieldForAll reads one trace-header field from every trace in the
// Python-like slice [start:stop:step] into out, which must have enough
// room for the resulting element count. step may not be zero (§4.3).
func (f *File) FieldForAll(fieldByte int, start, stop, step int64, out []int32) error {
	if step == 0 {
		return utils.Wrap("field for all", utils.ErrInvalidArgs)
	}

	idx := 0
	if step > 0 {
		for i := start; i < stop; i += step {
			if idx >= len(out) {
				return utils.Wrap("field for all", utils.ErrInvalidArgs)
			}
			v, err := f.traceField(i, fieldByte)
			if err != nil {
				return err
			}
			out[idx] = v
			idx++
		}
	} else {
		for i := start; i > stop; i += step {
			if idx >= len(out) {
				return utils.Wrap("field for all", utils.ErrInvalidArgs)
			}
			v, err := f.traceField(i, fieldByte)
			if err != nil {
				return err
			}
			out[idx] = v
			idx++
		}
	}
	return nil
}
