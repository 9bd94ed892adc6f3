// Package codec implements the pure, allocation-free conversions the SEG-Y
// format is built on: big-endian field access, EBCDIC/ASCII transcoding and
// IBM-float/IEEE-float conversion. Nothing in this package touches a file or
// knows what a trace is — it operates on caller-owned byte buffers only, the
// way the teacher's internal/core datatype helpers convert one buffer into
// another without reaching for I/O.
package codec

import "encoding/binary"

// Width is a recognized field width in bytes. Zero denotes "no field here".
type Width int

const (
	WidthNone Width = 0
	WidthI16  Width = 2
	WidthI32  Width = 4
)

// GetInt16 reads a big-endian, sign-extended 16-bit field starting at the
// 0-based byte offset off within buf.
func GetInt16(buf []byte, off int) int16 {
	return int16(binary.BigEndian.Uint16(buf[off : off+2]))
}

// GetInt32 reads a big-endian, sign-extended 32-bit field.
func GetInt32(buf []byte, off int) int32 {
	return int32(binary.BigEndian.Uint32(buf[off : off+4]))
}

// PutInt16 writes v as a big-endian 16-bit field at off.
func PutInt16(buf []byte, off int, v int16) {
	binary.BigEndian.PutUint16(buf[off:off+2], uint16(v))
}

// PutInt32 writes v as a big-endian 32-bit field at off.
func PutInt32(buf []byte, off int, v int32) {
	binary.BigEndian.PutUint32(buf[off:off+4], uint32(v))
}

// GetField reads the field at the 0-based offset off in buf whose width is
// given by width, sign-extending 16-bit fields to int32. width must be
// WidthI16 or WidthI32 — callers are expected to have already rejected
// WidthNone via the field-size table (§4.1 InvalidField).
func GetField(buf []byte, off int, width Width) int32 {
	switch width {
	case WidthI16:
		return int32(GetInt16(buf, off))
	case WidthI32:
		return GetInt32(buf, off)
	default:
		return 0
	}
}

// SetField writes v into the field at off with the given width, truncating
// to 16 bits when width is WidthI16.
func SetField(buf []byte, off int, width Width, v int32) {
	switch width {
	case WidthI16:
		PutInt16(buf, off, int16(v))
	case WidthI32:
		PutInt32(buf, off, v)
	}
}
