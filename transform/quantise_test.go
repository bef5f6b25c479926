package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tia-lab/cydec/errs"
)

func TestQuantiseF64_RoundTrip(t *testing.T) {
	q, err := QuantiseF64(3.14159, DefaultScaleF64)
	require.NoError(t, err)
	require.Equal(t, int64(3141590000), q)
	require.InDelta(t, 3.14159, DequantiseF64(q, DefaultScaleF64), 1e-9)
}

func TestQuantiseF64_RejectsNaNAndInf(t *testing.T) {
	_, err := QuantiseF64(math.NaN(), 9)
	require.ErrorIs(t, err, errs.ErrUnsupported)

	_, err = QuantiseF64(math.Inf(1), 9)
	require.ErrorIs(t, err, errs.ErrUnsupported)

	_, err = QuantiseF64(math.Inf(-1), 9)
	require.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestQuantiseF64_Overflow(t *testing.T) {
	_, err := QuantiseF64(math.MaxFloat64, 9)
	require.ErrorIs(t, err, errs.ErrOverflow)
}

func TestQuantiseF32_RoundTrip(t *testing.T) {
	q, err := QuantiseF32(2.5, DefaultScaleF32)
	require.NoError(t, err)
	require.Equal(t, int32(2500000), q)
	require.InDelta(t, 2.5, DequantiseF32(q, DefaultScaleF32), 1e-6)
}

func TestQuantiseF32_RejectsNaNAndInf(t *testing.T) {
	_, err := QuantiseF32(float32(math.NaN()), 6)
	require.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestQuantiseF32_Overflow(t *testing.T) {
	_, err := QuantiseF32(math.MaxFloat32, 6)
	require.ErrorIs(t, err, errs.ErrOverflow)
}
