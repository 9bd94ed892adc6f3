// Package segy provides a pure Go implementation for reading and writing
// SEG-Y rev.1 seismic data files. It exposes random-access reading and
// writing of traces and headers and reconstructs the implicit inline ×
// crossline × offset geometry from trace-header metadata alone.
package segy

import (
	"os"

	"github.com/scigolib/segy/internal/codec"
	"github.com/scigolib/segy/internal/core"
	"github.com/scigolib/segy/internal/ioext"
	"github.com/scigolib/segy/internal/utils"
)

// Mode selects how the underlying OS file is opened, mirroring the C
// fopen-style mode strings of §4.2.
type Mode string

const (
	ModeRead           Mode = "rb"
	ModeWrite          Mode = "wb"
	ModeAppend         Mode = "ab"
	ModeReadWrite      Mode = "r+b"
	ModeWriteReadTrunc Mode = "w+b"
	ModeAppendRead     Mode = "a+b"
)

func (m Mode) writable() bool {
	switch m {
	case ModeWrite, ModeAppend, ModeReadWrite, ModeWriteReadTrunc, ModeAppendRead:
		return true
	default:
		return false
	}
}

func (m Mode) osFlags() int {
	switch m {
	case ModeRead:
		return os.O_RDONLY
	case ModeWrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeAppend:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case ModeReadWrite:
		return os.O_RDWR
	case ModeWriteReadTrunc:
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case ModeAppendRead:
		return os.O_RDWR | os.O_CREATE | os.O_APPEND
	default:
		return os.O_RDONLY
	}
}

// state is the file handle's position in the Closed -> Opened(stream) ->
// Opened(stream+mapped) lifecycle (§4.4).
type state int

const (
	stateClosed state = iota
	stateOpenedStream
	stateOpenedMapped
)

// File is a single opened SEG-Y file: an OS file handle plus, once
// upgraded, a memory-mapped view of the same contents. Exactly one owner;
// not safe for concurrent use from multiple goroutines (§5).
type File struct {
	path  string
	mode  Mode
	osf   *os.File
	st    state
	back  ioext.Backend
	mapp  *ioext.Mapped

	extendedHeaders int32
	sampleCount     int32
	formatCode      int32
	trace0          int64
	traceSize       int64
}

// Open opens path with the given mode and reads the text/binary headers to
// establish trace geometry constants. The handle starts in
// Opened(stream); call Mmap to upgrade it.
func Open(path string, mode Mode) (*File, error) {
	f, err := openRaw(path, mode)
	if err != nil {
		return nil, err
	}

	if err := f.readGeometryConstants(); err != nil {
		_ = f.osf.Close()
		f.st = stateClosed
		return nil, err
	}

	return f, nil
}

// openRaw opens the OS file and wraps it in the buffered backend without
// reading the binary header, so Create can write fresh headers into a
// just-truncated file before geometry constants can be read back.
func openRaw(path string, mode Mode) (*File, error) {
	return openRawFlags(path, mode, mode.osFlags())
}

// openRawFlags is openRaw with the OS open flags supplied explicitly,
// used by Create(CreateExclusive) to add O_EXCL on top of Mode's own
// flags without needing a dedicated Mode value just for that variant.
func openRawFlags(path string, mode Mode, osFlags int) (*File, error) {
	osf, err := os.OpenFile(path, osFlags, 0644)
	if err != nil {
		return nil, utils.WrapPath("open", path, utils.ErrFileOpen)
	}

	return &File{
		path: path,
		mode: mode,
		osf:  osf,
		back: ioext.NewBuffered(osf),
		st:   stateOpenedStream,
	}, nil
}

// readGeometryConstants reads the binary header once at open time to learn
// the extended-header count, sample count and format code, from which
// trace0 and the fixed per-trace byte size follow.
func (f *File) readGeometryConstants() error {
	buf := utils.GetBuffer(core.BinaryHeaderSize)
	defer utils.ReleaseBuffer(buf)

	if err := f.back.Seek(int64(codec.TextHeaderSize)); err != nil {
		return err
	}
	if _, err := f.back.Read(buf); err != nil {
		return err
	}

	ext, err := core.ExtendedTextHeaderCount(buf)
	if err != nil {
		return err
	}
	samples, err := core.SampleCount(buf)
	if err != nil {
		return err
	}
	format, err := core.FormatCode(buf)
	if err != nil {
		return err
	}

	f.extendedHeaders = ext
	f.sampleCount = samples
	f.formatCode = format
	f.trace0 = ioext.Trace0(ext)

	size, err := ioext.TraceSize(samples, core.SampleSize(format))
	if err != nil {
		return err
	}
	f.traceSize = size
	return nil
}

// Mmap upgrades the handle to the memory-mapped backend, mapping the
// file's full current length. Only valid from Opened(stream); returns
// InvalidArgs if called again or after Close.
func (f *File) Mmap() error {
	if f.st != stateOpenedStream {
		return utils.Wrap("mmap", utils.ErrInvalidArgs)
	}

	fi, err := f.osf.Stat()
	if err != nil {
		return utils.WrapPath("mmap", f.path, utils.ErrMmapFailed)
	}

	mapped, err := ioext.Mmap(f.osf, fi.Size(), f.mode.writable())
	if err != nil {
		return err
	}

	f.mapp = mapped
	f.back = mapped
	f.st = stateOpenedMapped
	return nil
}

// Flush msyncs the mapped region (if mapped) then fsyncs the stream
// handle (§4.2).
func (f *File) Flush() error {
	if f.st == stateClosed {
		return utils.Wrap("flush", utils.ErrClosed)
	}
	return f.back.Sync()
}

// Close flushes, unmaps (if mapped) and closes the OS file. Idempotent
// from any state (§4.4).
func (f *File) Close() error {
	if f.st == stateClosed {
		return nil
	}

	var flushErr error
	if f.back != nil {
		flushErr = f.back.Sync()
	}

	if f.mapp != nil {
		if err := f.mapp.Close(); err != nil && flushErr == nil {
			flushErr = err
		}
	}

	closeErr := f.osf.Close()
	f.st = stateClosed
	f.back = nil
	f.mapp = nil

	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return utils.WrapPath("close", f.path, closeErr)
	}
	return nil
}

func (f *File) checkOpen() error {
	if f.st == stateClosed {
		return utils.Wrap("op", utils.ErrClosed)
	}
	return nil
}

// TraceCount reports the number of whole traces in the file, per §4.2's
// trace_count formula.
func (f *File) TraceCount() (int64, error) {
	if err := f.checkOpen(); err != nil {
		return 0, err
	}
	fi, err := f.osf.Stat()
	if err != nil {
		return 0, utils.WrapPath("stat", f.path, err)
	}
	return ioext.TraceCount(fi.Size(), f.trace0, f.traceSize)
}

// SampleCount returns the per-trace sample count read from the binary
// header at Open time.
func (f *File) SampleCount() int32 { return f.sampleCount }

// FormatCode returns the data sample format code read from the binary
// header at Open time.
func (f *File) FormatCode() int32 { return f.formatCode }

// Trace0 returns the byte position of the first trace record.
func (f *File) Trace0() int64 { return f.trace0 }

// TraceSize returns the fixed per-trace byte size (240 + samples*4).
func (f *File) TraceSize() int64 { return f.traceSize }

func (f *File) tracePosition(i int64) int64 {
	return ioext.TracePosition(f.trace0, f.traceSize, i)
}

func (f *File) seekTrace(i int64) error {
	return f.back.Seek(f.tracePosition(i))
}
