//go:build windows

package ioext

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/scigolib/segy/internal/utils"
)

// unsafeSliceFromPtr views the size bytes at addr (a MapViewOfFile result)
// as a Go slice without copying.
func unsafeSliceFromPtr(addr uintptr, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
}

// unsafePtrFromSlice recovers the mapping's base address from the slice
// unsafeSliceFromPtr produced, for handing back to UnmapViewOfFile and
// FlushViewOfFile.
func unsafePtrFromSlice(data []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(data)))
}

// mmapFile maps the first size bytes of f using the Win32 file-mapping
// API, the windows-side counterpart to mmap_unix.go's mmap(2).
func mmapFile(f *os.File, size int64, writable bool) ([]byte, error) {
	protect := uint32(windows.PAGE_READONLY)
	access := uint32(windows.FILE_MAP_READ)
	if writable {
		protect = windows.PAGE_READWRITE
		access = windows.FILE_MAP_WRITE
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, uint32(size>>32), uint32(size), nil)
	if err != nil {
		return nil, utils.Wrap("mmap", utils.ErrMmapFailed)
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, access, 0, 0, uintptr(size))
	if err != nil {
		return nil, utils.Wrap("mmap", utils.ErrMmapFailed)
	}

	return unsafeSliceFromPtr(addr, int(size)), nil
}

func munmapData(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := windows.UnmapViewOfFile(unsafePtrFromSlice(data)); err != nil {
		return utils.Wrap("munmap", err)
	}
	return nil
}

func msyncData(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := windows.FlushViewOfFile(unsafePtrFromSlice(data), uintptr(len(data))); err != nil {
		return utils.Wrap("msync", err)
	}
	return nil
}
