package kindengine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tia-lab/cydec/errs"
)

func TestPackUnpackF64_RoundTrip(t *testing.T) {
	values := []float64{0, 3.14159, -2.71828, 1e6, -1e6}
	data, err := PackF64(values, 9)
	require.NoError(t, err)

	got, err := UnpackF64(data, len(values), 9)
	require.NoError(t, err)
	for i := range values {
		require.InDelta(t, values[i], got[i], 1e-9)
	}
}

func TestPackUnpackF32_RoundTrip(t *testing.T) {
	values := []float32{0, 1.5, -1.5, 100.25}
	data, err := PackF32(values, 6)
	require.NoError(t, err)

	got, err := UnpackF32(data, len(values), 6)
	require.NoError(t, err)
	for i := range values {
		require.InDelta(t, values[i], got[i], 1e-5)
	}
}

func TestPackF64_RejectsNaN(t *testing.T) {
	_, err := PackF64([]float64{math.NaN()}, 9)
	require.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestPackF32_RejectsOverflow(t *testing.T) {
	_, err := PackF32([]float32{math.MaxFloat32}, 6)
	require.ErrorIs(t, err, errs.ErrOverflow)
}
