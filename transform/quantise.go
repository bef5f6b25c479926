package transform

import (
	"fmt"
	"math"

	"github.com/tia-lab/cydec/errs"
)

// DefaultScaleF64 is the default power-of-ten scale factor for float64 arrays.
const DefaultScaleF64 = 9

// DefaultScaleF32 is the default power-of-ten scale factor for float32 arrays.
const DefaultScaleF32 = 6

// QuantiseF64 maps value to round(value * 10^scale), checked against the
// int64 range. NaN and infinities are rejected with errs.ErrUnsupported;
// out-of-range results are rejected with errs.ErrOverflow.
func QuantiseF64(value float64, scale int) (int64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnsupported, value)
	}

	scaled := value * math.Pow(10, float64(scale))
	rounded := math.Round(scaled)

	// math.MaxInt64 rounds up to 2^63 as a float64, one past the largest
	// representable int64, so the upper bound must be written explicitly
	// rather than compared against float64(math.MaxInt64).
	if rounded >= 9223372036854775808.0 || rounded < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v at scale %d", errs.ErrOverflow, value, scale)
	}

	return int64(rounded), nil
}

// DequantiseF64 inverts QuantiseF64: value = q / 10^scale.
func DequantiseF64(q int64, scale int) float64 {
	return float64(q) / math.Pow(10, float64(scale))
}

// QuantiseF32 maps value to round(value * 10^scale), checked against the
// int32 range. NaN and infinities are rejected with errs.ErrUnsupported;
// out-of-range results are rejected with errs.ErrOverflow.
func QuantiseF32(value float32, scale int) (int32, error) {
	if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
		return 0, fmt.Errorf("%w: %v", errs.ErrUnsupported, value)
	}

	scaled := float64(value) * math.Pow(10, float64(scale))
	rounded := math.Round(scaled)

	if rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return 0, fmt.Errorf("%w: %v at scale %d", errs.ErrOverflow, value, scale)
	}

	return int32(rounded), nil
}

// DequantiseF32 inverts QuantiseF32: value = q / 10^scale.
func DequantiseF32(q int32, scale int) float32 {
	return float32(float64(q) / math.Pow(10, float64(scale)))
}
