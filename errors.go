package segy

import "github.com/scigolib/segy/internal/utils"

// Error taxonomy (§7). The failure modes the taxonomy names are reported
// as these sentinels, usually wrapped with operation context; callers match
// with errors.Is. Errors from stat, sync, unmap and close, and a trace-size
// overflow, carry the underlying error instead of a sentinel.
var (
	ErrFileOpen          = utils.ErrFileOpen
	ErrFileSeek          = utils.ErrFileSeek
	ErrFileRead          = utils.ErrFileRead
	ErrFileWrite         = utils.ErrFileWrite
	ErrMmapUnavailable   = utils.ErrMmapUnavailable
	ErrMmapFailed        = utils.ErrMmapFailed
	ErrInvalidField      = utils.ErrInvalidField
	ErrInvalidArgs       = utils.ErrInvalidArgs
	ErrInvalidSorting    = utils.ErrInvalidSorting
	ErrInvalidOffsets    = utils.ErrInvalidOffsets
	ErrTraceSizeMismatch = utils.ErrTraceSizeMismatch
	ErrMissingLineIndex  = utils.ErrMissingLineIndex
	ErrClosed            = utils.ErrClosed
)
