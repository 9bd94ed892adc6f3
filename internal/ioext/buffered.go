package ioext

import (
	"io"
	"os"

	"github.com/scigolib/segy/internal/utils"
)

// Buffered is the default backend: every call goes straight through the
// OS file's stream position. Go's os.File.Seek already takes a 64-bit
// offset on every supported platform, so — unlike the C original this
// library's design is modeled on — no chunked maximum-step seeking is
// needed to reach positions beyond a narrow native offset type (Design
// Note 9.1's "prefer a 64-bit-offset primitive where available").
type Buffered struct {
	f *os.File
}

// NewBuffered wraps an already-open file in the buffered backend.
func NewBuffered(f *os.File) *Buffered {
	return &Buffered{f: f}
}

func (b *Buffered) Seek(offset int64) error {
	_, err := b.f.Seek(offset, io.SeekStart)
	if err != nil {
		return utils.Wrap("seek", utils.ErrFileSeek)
	}
	return nil
}

func (b *Buffered) Read(buf []byte) (int, error) {
	n, err := io.ReadFull(b.f, buf)
	if err != nil {
		return n, utils.Wrap("read", utils.ErrFileRead)
	}
	return n, nil
}

func (b *Buffered) Write(buf []byte) (int, error) {
	n, err := b.f.Write(buf)
	if err != nil {
		return n, utils.Wrap("write", utils.ErrFileWrite)
	}
	return n, nil
}

func (b *Buffered) Sync() error {
	if err := b.f.Sync(); err != nil {
		return utils.Wrap("flush", err)
	}
	return nil
}

func (b *Buffered) Close() error {
	return nil
}
