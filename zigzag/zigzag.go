// Package zigzag implements the bijective mapping between signed integers
// and unsigned integers used to prepare delta-encoded values for varint
// packing, placing small-magnitude values (whether positive or negative)
// near zero.
//
// encode(x) = (x<<1) ^ (x>>(n-1)), decode(u) = (u>>1) ^ -(u&1).
package zigzag

// Encode8 zigzag-encodes a signed 8-bit integer.
func Encode8(v int8) uint8 { return uint8(v<<1) ^ uint8(v>>7) }

// Decode8 reverses Encode8.
func Decode8(u uint8) int8 { return int8(u>>1) ^ -int8(u&1) }

// Encode16 zigzag-encodes a signed 16-bit integer.
func Encode16(v int16) uint16 { return uint16(v<<1) ^ uint16(v>>15) }

// Decode16 reverses Encode16.
func Decode16(u uint16) int16 { return int16(u>>1) ^ -int16(u&1) }

// Encode32 zigzag-encodes a signed 32-bit integer.
func Encode32(v int32) uint32 { return uint32(v<<1) ^ uint32(v>>31) }

// Decode32 reverses Encode32.
func Decode32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }

// Encode64 zigzag-encodes a signed 64-bit integer.
//
// encode(0) = 0, encode(-1) = 1, encode(1) = 2, and the mapping is a
// bijection across the full int64 range including math.MinInt64.
func Encode64(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) } //nolint:gosec

// Decode64 reverses Encode64.
func Decode64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) } //nolint:gosec
