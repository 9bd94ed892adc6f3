//go:build unix

package ioext

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/scigolib/segy/internal/utils"
)

// mmapFile maps the first size bytes of f. golang.org/x/sys/unix is the
// only mmap-capable dependency anywhere in the retrieval pack's transitive
// module graph, so the backend talks to mmap(2)/munmap(2)/msync(2)
// directly rather than through a higher-level wrapper package.
func mmapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, utils.Wrap("mmap", utils.ErrMmapFailed)
	}
	return data, nil
}

func munmapData(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return utils.Wrap("munmap", err)
	}
	return nil
}

func msyncData(data []byte) error {
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return utils.Wrap("msync", err)
	}
	return nil
}
