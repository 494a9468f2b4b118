package pool

import "sync"

var symbolSlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetSymbolSlice retrieves a uint32 slice of exactly size elements from the pool.
//
// The contents are not zeroed. The caller must call the returned cleanup
// function once the slice is no longer referenced.
//
// Example:
//
//	syms, cleanup := pool.GetSymbolSlice(len(data))
//	defer cleanup()
func GetSymbolSlice(size int) ([]uint32, func()) {
	ptr, _ := symbolSlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { symbolSlicePool.Put(ptr) }
}
