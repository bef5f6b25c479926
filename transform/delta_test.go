package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeltaEncodeDecode_RoundTrip(t *testing.T) {
	values := []int64{10, 12, 11, 11, -50, math.MaxInt64, math.MinInt64}

	deltas := make([]int64, len(values))
	DeltaEncode(deltas, values)
	require.Equal(t, values[0], deltas[0])

	back := make([]int64, len(values))
	DeltaDecode(back, deltas)
	require.Equal(t, values, back)
}

func TestDeltaEncode_Aliased(t *testing.T) {
	values := []int32{5, 8, 3, 3, -100}
	want := make([]int32, len(values))
	DeltaEncode(want, values)

	buf := append([]int32(nil), values...)
	DeltaEncode(buf, buf)
	require.Equal(t, want, buf)
}

func TestDeltaDecode_Aliased(t *testing.T) {
	deltas := []int16{3, 1, -1, 0, 200}
	want := make([]int16, len(deltas))
	DeltaDecode(want, deltas)

	buf := append([]int16(nil), deltas...)
	DeltaDecode(buf, buf)
	require.Equal(t, want, buf)
}

func TestDeltaEncode_Empty(t *testing.T) {
	DeltaEncode([]int8{}, []int8{})
	DeltaDecode([]int8{}, []int8{})
}

func TestDeltaEncode_Wraparound(t *testing.T) {
	values := []int8{math.MinInt8, math.MaxInt8}
	deltas := make([]int8, 2)
	DeltaEncode(deltas, values)

	back := make([]int8, 2)
	DeltaDecode(back, deltas)
	require.Equal(t, values, back)
}
