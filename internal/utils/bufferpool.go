package utils

import "sync"

// traceHeaderSize sizes the pool's default allocation: room for one
// 240-byte trace header. A request larger than the pooled buffer's
// capacity, such as readGeometryConstants' 400-byte binary header, is
// served by a fresh allocation.
const traceHeaderSize = 240

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, traceHeaderSize)
	},
}

// GetBuffer returns a byte slice from the pool.
func GetBuffer(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2) // Increase capacity.
	}
	return buf[:size]
}

// ReleaseBuffer returns a buffer to the pool.
func ReleaseBuffer(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
