// Package kindengine implements the per-width composition of delta
// transform, zigzag encoding, and varint packing, plus the float
// quantisation glue for F32/F64 and the pass-through path for Bytes.
//
// Each Pack<Kind> function produces the pre-compression buffer
// (first-element|varints-of-zigzagged-deltas); callers apply a
// bytecompress.Codec afterward. This keeps the transform stage and the
// byte-compression stage as two independently testable layers.
package kindengine

import (
	"fmt"

	"github.com/tia-lab/cydec/errs"
	"github.com/tia-lab/cydec/internal/pool"
	"github.com/tia-lab/cydec/transform"
	"github.com/tia-lab/cydec/varint"
	"github.com/tia-lab/cydec/zigzag"
)

// PackI8 packs a signed 8-bit array into (first-element|zigzagged-deltas) varints.
func PackI8(values []int8) []byte {
	if len(values) == 0 {
		return nil
	}

	deltas := make([]int8, len(values))
	transform.DeltaEncode(deltas, values)

	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Grow(varint.MaxLen * len(values))

	bb.B = varint.AppendUint64(bb.B, uint64(uint8(deltas[0])))
	for _, d := range deltas[1:] {
		bb.B = varint.AppendUint64(bb.B, uint64(zigzag.Encode8(d)))
	}

	return append([]byte(nil), bb.Bytes()...)
}

// UnpackI8 inverts PackI8. count must match the number of elements originally
// packed; a mismatch between count and the varints actually present in data
// is reported as errs.ErrMalformed.
func UnpackI8(data []byte, count int) ([]int8, error) {
	if count == 0 {
		return nil, nil
	}

	deltas := make([]int8, count)

	v, offset, err := varint.ReadUint64(data, 0)
	if err != nil {
		return nil, err
	}
	deltas[0] = int8(uint8(v)) //nolint:gosec

	for i := 1; i < count; i++ {
		zv, next, err := varint.ReadUint64(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		deltas[i] = zigzag.Decode8(uint8(zv)) //nolint:gosec
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: expected %d varints, %d trailing bytes", errs.ErrMalformed, count, len(data)-offset)
	}

	out := make([]int8, count)
	transform.DeltaDecode(out, deltas)

	return out, nil
}

// PackI16 packs a signed 16-bit array into (first-element|zigzagged-deltas) varints.
func PackI16(values []int16) []byte {
	if len(values) == 0 {
		return nil
	}

	deltas := make([]int16, len(values))
	transform.DeltaEncode(deltas, values)

	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Grow(varint.MaxLen * len(values))

	bb.B = varint.AppendUint64(bb.B, uint64(uint16(deltas[0])))
	for _, d := range deltas[1:] {
		bb.B = varint.AppendUint64(bb.B, uint64(zigzag.Encode16(d)))
	}

	return append([]byte(nil), bb.Bytes()...)
}

// UnpackI16 inverts PackI16.
func UnpackI16(data []byte, count int) ([]int16, error) {
	if count == 0 {
		return nil, nil
	}

	deltas := make([]int16, count)

	v, offset, err := varint.ReadUint64(data, 0)
	if err != nil {
		return nil, err
	}
	deltas[0] = int16(uint16(v)) //nolint:gosec

	for i := 1; i < count; i++ {
		zv, next, err := varint.ReadUint64(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		deltas[i] = zigzag.Decode16(uint16(zv)) //nolint:gosec
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: expected %d varints, %d trailing bytes", errs.ErrMalformed, count, len(data)-offset)
	}

	out := make([]int16, count)
	transform.DeltaDecode(out, deltas)

	return out, nil
}

// PackI32 packs a signed 32-bit array into (first-element|zigzagged-deltas) varints.
func PackI32(values []int32) []byte {
	if len(values) == 0 {
		return nil
	}

	deltas, cleanup := intSliceI32(len(values))
	defer cleanup()
	transform.DeltaEncode(deltas, values)

	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Grow(varint.MaxLen * len(values))

	bb.B = varint.AppendUint64(bb.B, uint64(uint32(deltas[0])))
	for _, d := range deltas[1:] {
		bb.B = varint.AppendUint64(bb.B, uint64(zigzag.Encode32(d)))
	}

	return append([]byte(nil), bb.Bytes()...)
}

// UnpackI32 inverts PackI32.
func UnpackI32(data []byte, count int) ([]int32, error) {
	if count == 0 {
		return nil, nil
	}

	deltas, cleanup := intSliceI32(count)
	defer cleanup()

	v, offset, err := varint.ReadUint64(data, 0)
	if err != nil {
		return nil, err
	}
	deltas[0] = int32(uint32(v)) //nolint:gosec

	for i := 1; i < count; i++ {
		zv, next, err := varint.ReadUint64(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		deltas[i] = zigzag.Decode32(uint32(zv)) //nolint:gosec
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: expected %d varints, %d trailing bytes", errs.ErrMalformed, count, len(data)-offset)
	}

	out := make([]int32, count)
	transform.DeltaDecode(out, deltas)

	return out, nil
}

// PackI64 packs a signed 64-bit array into (first-element|zigzagged-deltas) varints.
func PackI64(values []int64) []byte {
	if len(values) == 0 {
		return nil
	}

	deltas, cleanup := intSliceI64(len(values))
	defer cleanup()
	transform.DeltaEncode(deltas, values)

	bb := pool.GetBuffer()
	defer pool.PutBuffer(bb)
	bb.Grow(varint.MaxLen * len(values))

	bb.B = varint.AppendUint64(bb.B, uint64(deltas[0]))
	for _, d := range deltas[1:] {
		bb.B = varint.AppendUint64(bb.B, zigzag.Encode64(d))
	}

	return append([]byte(nil), bb.Bytes()...)
}

// UnpackI64 inverts PackI64.
func UnpackI64(data []byte, count int) ([]int64, error) {
	if count == 0 {
		return nil, nil
	}

	deltas, cleanup := intSliceI64(count)
	defer cleanup()

	v, offset, err := varint.ReadUint64(data, 0)
	if err != nil {
		return nil, err
	}
	deltas[0] = int64(v) //nolint:gosec

	for i := 1; i < count; i++ {
		zv, next, err := varint.ReadUint64(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		deltas[i] = zigzag.Decode64(zv)
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: expected %d varints, %d trailing bytes", errs.ErrMalformed, count, len(data)-offset)
	}

	out := make([]int64, count)
	transform.DeltaDecode(out, deltas)

	return out, nil
}

// PackBytes bypasses the numeric transform chain entirely: the raw input is
// submitted to the byte compressor unchanged.
func PackBytes(data []byte) []byte {
	return data
}

// UnpackBytes is the identity inverse of PackBytes.
func UnpackBytes(data []byte) []byte {
	return data
}
