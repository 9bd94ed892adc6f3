package ioext

import (
	"os"

	"github.com/scigolib/segy/internal/utils"
)

// Mapped is the memory-mapped backend. All reads and writes go through the
// mapped slice via a moving cursor (§4.2); the underlying *os.File is kept
// only so Sync can still flush the stream handle once the mapping is
// msync'd.
type Mapped struct {
	f        *os.File
	data     []byte
	cursor   int64
	writable bool
}

// Mmap maps the full current contents of f, read-only or read-write
// depending on writable. Platform support lives in mmap_unix.go,
// mmap_windows.go and mmap_other.go behind the mmapFile/munmapData/
// msyncData functions.
func Mmap(f *os.File, size int64, writable bool) (*Mapped, error) {
	data, err := mmapFile(f, size, writable)
	if err != nil {
		return nil, err
	}
	return &Mapped{f: f, data: data, writable: writable}, nil
}

func (m *Mapped) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(m.data)) {
		return utils.Wrap("seek", utils.ErrFileSeek)
	}
	m.cursor = offset
	return nil
}

// Read copies len(buf) bytes from the mapped region starting at the
// cursor. A read past the end of the mapping is a FileSeek error per §7
// ("Mapped-mode I/O errors (reads past fsize) return FileSeek"), not a
// short read.
func (m *Mapped) Read(buf []byte) (int, error) {
	end := m.cursor + int64(len(buf))
	if end > int64(len(m.data)) {
		return 0, utils.Wrap("read", utils.ErrFileSeek)
	}
	n := copy(buf, m.data[m.cursor:end])
	m.cursor = end
	return n, nil
}

func (m *Mapped) Write(buf []byte) (int, error) {
	if !m.writable {
		return 0, utils.Wrap("write", utils.ErrInvalidArgs)
	}
	end := m.cursor + int64(len(buf))
	if end > int64(len(m.data)) {
		return 0, utils.Wrap("write", utils.ErrFileSeek)
	}
	n := copy(m.data[m.cursor:end], buf)
	m.cursor = end
	return n, nil
}

// Sync msyncs the mapped region, then fflushes the stream handle, mirroring
// §4.2's flush ordering.
func (m *Mapped) Sync() error {
	if m.writable {
		if err := msyncData(m.data); err != nil {
			return utils.Wrap("flush", err)
		}
	}
	if err := m.f.Sync(); err != nil {
		return utils.Wrap("flush", err)
	}
	return nil
}

func (m *Mapped) Close() error {
	if m.data == nil {
		return nil
	}
	err := munmapData(m.data)
	m.data = nil
	return err
}
