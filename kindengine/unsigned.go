package kindengine

// Unsigned element kinds are reinterpreted as same-width signed values
// before reuse of the signed pack/unpack path; the element kind tag in the
// frame header ensures the decoder reinterprets back. A same-width integer
// conversion in Go copies the bit pattern, so int8(u) for a uint8 u is
// exactly that reinterpretation.

// PackU8 reinterprets values as int8 and packs them via PackI8.
func PackU8(values []uint8) []byte {
	signed := make([]int8, len(values))
	for i, v := range values {
		signed[i] = int8(v)
	}

	return PackI8(signed)
}

// UnpackU8 inverts PackU8.
func UnpackU8(data []byte, count int) ([]uint8, error) {
	signed, err := UnpackI8(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint8, len(signed))
	for i, v := range signed {
		out[i] = uint8(v)
	}

	return out, nil
}

// PackU16 reinterprets values as int16 and packs them via PackI16.
func PackU16(values []uint16) []byte {
	signed := make([]int16, len(values))
	for i, v := range values {
		signed[i] = int16(v)
	}

	return PackI16(signed)
}

// UnpackU16 inverts PackU16.
func UnpackU16(data []byte, count int) ([]uint16, error) {
	signed, err := UnpackI16(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, len(signed))
	for i, v := range signed {
		out[i] = uint16(v)
	}

	return out, nil
}

// PackU32 reinterprets values as int32 and packs them via PackI32.
func PackU32(values []uint32) []byte {
	signed := make([]int32, len(values))
	for i, v := range values {
		signed[i] = int32(v)
	}

	return PackI32(signed)
}

// UnpackU32 inverts PackU32.
func UnpackU32(data []byte, count int) ([]uint32, error) {
	signed, err := UnpackI32(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, len(signed))
	for i, v := range signed {
		out[i] = uint32(v)
	}

	return out, nil
}

// PackU64 reinterprets values as int64 and packs them via PackI64.
func PackU64(values []uint64) []byte {
	signed := make([]int64, len(values))
	for i, v := range values {
		signed[i] = int64(v) //nolint:gosec
	}

	return PackI64(signed)
}

// UnpackU64 inverts PackU64.
func UnpackU64(data []byte, count int) ([]uint64, error) {
	signed, err := UnpackI64(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, len(signed))
	for i, v := range signed {
		out[i] = uint64(v) //nolint:gosec
	}

	return out, nil
}
