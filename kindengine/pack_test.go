package kindengine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackI8_RoundTrip(t *testing.T) {
	values := []int8{0, 5, -5, math.MaxInt8, math.MinInt8, math.MinInt8, math.MaxInt8}
	data := PackI8(values)

	got, err := UnpackI8(data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackUnpackI16_RoundTrip(t *testing.T) {
	values := []int16{0, 1000, -1000, math.MaxInt16, math.MinInt16}
	data := PackI16(values)

	got, err := UnpackI16(data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackUnpackI32_RoundTrip(t *testing.T) {
	values := []int32{0, 70000, -70000, math.MaxInt32, math.MinInt32}
	data := PackI32(values)

	got, err := UnpackI32(data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackUnpackI64_RoundTrip(t *testing.T) {
	values := []int64{0, 1 << 40, -(1 << 40), math.MaxInt64, math.MinInt64}
	data := PackI64(values)

	got, err := UnpackI64(data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPackUnpack_Empty(t *testing.T) {
	data := PackI64(nil)
	require.Nil(t, data)

	got, err := UnpackI64(data, 0)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPackUnpack_SingleElement(t *testing.T) {
	values := []int64{42}
	data := PackI64(values)

	got, err := UnpackI64(data, 1)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestUnpackI64_CountMismatch(t *testing.T) {
	values := []int64{1, 2, 3}
	data := PackI64(values)

	_, err := UnpackI64(data, 2)
	require.Error(t, err)
}

func TestPackUnpackBytes_Identity(t *testing.T) {
	data := []byte("some opaque payload")
	require.Equal(t, data, PackBytes(data))
	require.Equal(t, data, UnpackBytes(data))
}
