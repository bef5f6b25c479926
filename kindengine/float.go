package kindengine

import "github.com/tia-lab/cydec/transform"

// PackF32 quantises values to int32 at the given power-of-ten scale and
// packs them via PackI32. It returns errs.ErrUnsupported for NaN/Inf input
// or errs.ErrOverflow if a quantised value exceeds int32.
func PackF32(values []float32, scale int) ([]byte, error) {
	ints := make([]int32, len(values))
	for i, v := range values {
		q, err := transform.QuantiseF32(v, scale)
		if err != nil {
			return nil, err
		}
		ints[i] = q
	}

	return PackI32(ints), nil
}

// UnpackF32 inverts PackF32.
func UnpackF32(data []byte, count int, scale int) ([]float32, error) {
	ints, err := UnpackI32(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]float32, count)
	for i, q := range ints {
		out[i] = transform.DequantiseF32(q, scale)
	}

	return out, nil
}

// PackF64 quantises values to int64 at the given power-of-ten scale and
// packs them via PackI64. It returns errs.ErrUnsupported for NaN/Inf input
// or errs.ErrOverflow if a quantised value exceeds int64.
func PackF64(values []float64, scale int) ([]byte, error) {
	ints := make([]int64, len(values))
	for i, v := range values {
		q, err := transform.QuantiseF64(v, scale)
		if err != nil {
			return nil, err
		}
		ints[i] = q
	}

	return PackI64(ints), nil
}

// UnpackF64 inverts PackF64.
func UnpackF64(data []byte, count int, scale int) ([]float64, error) {
	ints, err := UnpackI64(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]float64, count)
	for i, q := range ints {
		out[i] = transform.DequantiseF64(q, scale)
	}

	return out, nil
}
