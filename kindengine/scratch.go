package kindengine

import "github.com/tia-lab/cydec/internal/pool"

// intSliceI32 and intSliceI64 borrow pooled scratch slices for the 32/64-bit
// delta stage, the widths most likely to carry large arrays.
func intSliceI32(size int) ([]int32, func()) {
	return pool.GetInt32Slice(size)
}

func intSliceI64(size int) ([]int64, func()) {
	return pool.GetInt64Slice(size)
}
