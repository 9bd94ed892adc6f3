package ioext

import (
	"github.com/scigolib/segy/internal/codec"
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// Trace0 returns the byte offset of the first trace record: the 3200-byte
// text header, the 400-byte binary header, and extendedHeaders additional
// 3200-byte extended text headers (§2).
func Trace0(extendedHeaders int32) int64 {
	return int64(codec.TextHeaderSize) + int64(core.BinaryHeaderSize) + int64(extendedHeaders)*int64(codec.TextHeaderSize)
}

// TraceSize returns the fixed byte size of one trace record: the 240-byte
// trace header plus sampleCount samples of sampleSize bytes each.
func TraceSize(sampleCount int32, sampleSize int) (int64, error) {
	n, err := utils.SafeMultiply(uint64(sampleCount), uint64(sampleSize))
	if err != nil {
		return 0, utils.Wrap("trace size", err)
	}
	total := n + uint64(core.TraceHeaderSize)
	return int64(total), nil
}

// TracePosition returns the absolute byte offset of the trace at index
// (0-based) given the file's trace0 offset and per-trace byte size.
func TracePosition(trace0, traceSize int64, index int64) int64 {
	return trace0 + index*traceSize
}

// TraceCount returns how many whole traces fit between trace0 and the end
// of the file. traceSize must divide fileSize-trace0 exactly; a file
// truncated mid-trace is a TraceSizeMismatch (§7), not a silently rounded
// count.
func TraceCount(fileSize, trace0, traceSize int64) (int64, error) {
	remainder := fileSize - trace0
	if traceSize <= 0 || remainder < 0 || remainder%traceSize != 0 {
		return 0, utils.Wrap("trace count", utils.ErrTraceSizeMismatch)
	}
	return remainder / traceSize, nil
}
