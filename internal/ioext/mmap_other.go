//go:build !unix && !windows

package ioext

import (
	"os"

	"github.com/scigolib/segy/internal/utils"
)

// mmapFile has no implementation on platforms that are neither unix nor
// windows; mapped mode reports MmapUnavailable per §7 and callers fall
// back to the buffered backend.
func mmapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	return nil, utils.Wrap("mmap", utils.ErrMmapUnavailable)
}

func munmapData(data []byte) error {
	return utils.Wrap("munmap", utils.ErrMmapUnavailable)
}

func msyncData(data []byte) error {
	return utils.Wrap("msync", utils.ErrMmapUnavailable)
}
