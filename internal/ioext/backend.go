// Package ioext implements the file-handle layer's dual I/O backend:
// one implementation backed by buffered stream I/O, one backed by a
// memory-mapped view, dispatched through a single interface rather than
// branching on a mapped-or-not pointer at every call site (Design Note
// 9.1). It also carries the trace position arithmetic (§4.2) both
// backends share.
package ioext

// Backend is the operation set the file-handle layer needs from whichever
// I/O strategy backs an open file: a seekable cursor plus read/write at
// that cursor. Buffered and Mapped both implement it so callers never
// branch on which one they have.
type Backend interface {
	// Seek repositions the cursor to an absolute byte offset.
	Seek(offset int64) error
	// Read fills buf entirely from the current cursor and advances it by
	// len(buf), or fails without partial application being observable by
	// the caller (short reads are reported as an error, not a partial
	// fill).
	Read(buf []byte) (int, error)
	// Write stores buf entirely at the current cursor and advances it by
	// len(buf).
	Write(buf []byte) (int, error)
	// Sync durably persists any writes made so far.
	Sync() error
	// Close releases backend-owned resources. It does not close the
	// underlying *os.File, which the owning File manages itself so it can
	// flush through the stream handle even after a mapped backend is torn
	// down.
	Close() error
}
