package core

import (
	"github.com/scigolib/segy/internal/codec"
	"github.com/scigolib/segy/internal/utils"
)

// GetTraceField reads the field at 1-based SEG-Y byte offset off from a
// 240-byte trace header buffer, sign-extending 16-bit fields to int32.
func GetTraceField(buf []byte, off int) (int32, error) {
	width := TraceFieldWidth(off)
	if width == codec.WidthNone {
		return 0, utils.ErrInvalidField
	}
	return codec.GetField(buf, off-1, width), nil
}

// SetTraceField writes v into the field at 1-based SEG-Y byte offset off in
// a 240-byte trace header buffer.
func SetTraceField(buf []byte, off int, v int32) error {
	width := TraceFieldWidth(off)
	if width == codec.WidthNone {
		return utils.ErrInvalidField
	}
	codec.SetField(buf, off-1, width, v)
	return nil
}

// GetBinaryField reads the field at 1-based file-absolute byte offset off
// (3201..3600) from a 400-byte binary header buffer.
func GetBinaryField(buf []byte, off int) (int32, error) {
	width := BinaryFieldWidth(off)
	if width == codec.WidthNone {
		return 0, utils.ErrInvalidField
	}
	return codec.GetField(buf, off-3201, width), nil
}

// SetBinaryField writes v into the field at 1-based file-absolute byte
// offset off in a 400-byte binary header buffer.
func SetBinaryField(buf []byte, off int, v int32) error {
	width := BinaryFieldWidth(off)
	if width == codec.WidthNone {
		return utils.ErrInvalidField
	}
	codec.SetField(buf, off-3201, width, v)
	return nil
}
