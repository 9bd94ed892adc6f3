package segy

import (
	"os"

	"github.com/scigolib/segy/internal/codec"
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/utils"
)

// CreateMode specifies how Create opens the underlying OS file.
type CreateMode int

const (
	// CreateTruncate creates a new file, overwriting if it exists.
	CreateTruncate CreateMode = iota
	// CreateExclusive creates a new file, failing if it already exists.
	CreateExclusive
)

// Create creates a new SEG-Y file with a minimal text header, a binary
// header describing sampleCount samples at formatCode per trace, and no
// extended text headers, and returns the handle it wrote them through,
// opened read-write, for trace writes.
//
// The returned handle's trace0/traceSize are already primed from the
// binary header it just wrote, so callers can go straight to
// WriteTraceHeader/WriteTraceSamples.
func Create(path string, mode CreateMode, sampleCount int32, sampleIntervalMicros int32, formatCode int32) (*File, error) {
	var flags Mode
	var osFlags int
	switch mode {
	case CreateTruncate:
		flags = ModeWriteReadTrunc
		osFlags = flags.osFlags()
	case CreateExclusive:
		// O_EXCL on top of ModeWriteReadTrunc's own flags, so Create fails
		// outright instead of silently truncating an existing file.
		flags = ModeWriteReadTrunc
		osFlags = flags.osFlags() | os.O_EXCL
	default:
		return nil, utils.Wrap("create", utils.ErrInvalidArgs)
	}
	if !core.IsFormatSupported(formatCode) {
		return nil, utils.Wrap("create", utils.ErrInvalidArgs)
	}

	textHeader := make([]byte, codec.TextHeaderSize)
	for i := range textHeader {
		textHeader[i] = ' '
	}
	codec.ASCIIToEBCDIC(textHeader)

	binHeader := make([]byte, core.BinaryHeaderSize)
	if err := core.SetBinaryField(binHeader, core.BinarySampleIntervalByte, sampleIntervalMicros); err != nil {
		return nil, err
	}
	if err := core.SetBinaryField(binHeader, core.BinarySampleCountByte, sampleCount); err != nil {
		return nil, err
	}
	if err := core.SetBinaryField(binHeader, core.BinaryFormatCodeByte, formatCode); err != nil {
		return nil, err
	}
	if err := core.SetBinaryField(binHeader, core.BinaryExtendedHeadersByte, 0); err != nil {
		return nil, err
	}
	if err := core.SetBinaryField(binHeader, core.BinaryRevisionByte, 0x0100); err != nil {
		return nil, err
	}

	f, err := openRawFlags(path, flags, osFlags)
	if err != nil {
		return nil, err
	}

	if err := f.back.Seek(0); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.back.Write(textHeader); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.back.Write(binHeader); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.back.Sync(); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.readGeometryConstants(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}
