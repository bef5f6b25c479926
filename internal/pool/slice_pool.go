package pool

import "sync"

// Typed scratch-slice pools for the delta/zigzag transform stage of the
// element-kind engine. Only the widths that carry meaningful allocation
// cost (32/64-bit) are pooled; 8/16-bit arrays are small enough that a
// fresh allocation per call is cheaper than pool bookkeeping.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
)

// GetInt64Slice retrieves a slice of the exact requested length from the
// pool, reusing backing storage when the pooled slice has enough capacity.
// The returned cleanup function must be called (typically via defer) to
// return the slice to the pool.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int64SlicePool.Put(ptr) }
}

// GetInt32Slice retrieves a slice of the exact requested length from the
// pool, reusing backing storage when the pooled slice has enough capacity.
// The returned cleanup function must be called (typically via defer) to
// return the slice to the pool.
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}
