package cydec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tia-lab/cydec/bytecompress"
	"github.com/tia-lab/cydec/errs"
	"github.com/tia-lab/cydec/parallel"
)

func TestIntegerCodec_I64_RoundTrip(t *testing.T) {
	codec := NewIntegerCodec()
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1000, 999}

	frame, err := codec.CompressI64(values)
	require.NoError(t, err)

	got, err := codec.DecompressI64(frame)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestIntegerCodec_Empty(t *testing.T) {
	codec := NewIntegerCodec()

	frame, err := codec.CompressI32(nil)
	require.NoError(t, err)

	got, err := codec.DecompressI32(frame)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIntegerCodec_SingleElement(t *testing.T) {
	codec := NewIntegerCodec()

	frame, err := codec.CompressU8([]uint8{7})
	require.NoError(t, err)

	got, err := codec.DecompressU8(frame)
	require.NoError(t, err)
	require.Equal(t, []uint8{7}, got)
}

func TestIntegerCodec_ParRoundTrip_EveryChunkSize(t *testing.T) {
	codec := NewIntegerCodec()

	values := make([]int32, 237)
	for i := range values {
		values[i] = int32(i*i - 100)
	}

	for chunkSize := 1; chunkSize <= 300; chunkSize++ {
		frame, err := codec.ParCompressI32(values, chunkSize)
		require.NoError(t, err, "chunkSize=%d", chunkSize)

		got, err := codec.ParDecompressI32(frame)
		require.NoError(t, err, "chunkSize=%d", chunkSize)
		require.Equal(t, values, got, "chunkSize=%d", chunkSize)

		// decompress_K must also handle a MultiChunk frame, just without
		// parallelism.
		seq, err := codec.DecompressI32(frame)
		require.NoError(t, err, "chunkSize=%d", chunkSize)
		require.Equal(t, values, seq, "chunkSize=%d", chunkSize)
	}
}

func TestIntegerCodec_SequentialAndParallelAgree(t *testing.T) {
	values := make([]int64, 500)
	for i := range values {
		values[i] = int64(i) * 7
	}

	seqCodec := NewIntegerCodec(WithExecutor(parallel.NewSequentialExecutor()))
	parCodec := NewIntegerCodec(WithExecutor(parallel.NewExecutor()))

	seqFrame, err := seqCodec.ParCompressI64(values, 32)
	require.NoError(t, err)

	parFrame, err := parCodec.ParCompressI64(values, 32)
	require.NoError(t, err)

	require.Equal(t, seqFrame, parFrame)
}

func TestFloatingCodec_F64_RoundTrip(t *testing.T) {
	codec := NewFloatingCodec()
	values := []float64{0, 3.14159, -2.71828, 1e4, -1e4}

	frame, err := codec.CompressF64(values)
	require.NoError(t, err)

	got, err := codec.DecompressF64(frame)
	require.NoError(t, err)
	for i := range values {
		require.InDelta(t, values[i], got[i], 1e-9)
	}
}

func TestFloatingCodec_CustomScale(t *testing.T) {
	codec := NewFloatingCodec().WithFloatOptions(WithScaleF64(2))
	values := []float64{1.23, 4.56}

	frame, err := codec.CompressF64(values)
	require.NoError(t, err)

	got, err := codec.DecompressF64(frame)
	require.NoError(t, err)
	require.InDelta(t, 1.23, got[0], 1e-2)
	require.InDelta(t, 4.56, got[1], 1e-2)
}

func TestFloatingCodec_RejectsNaN(t *testing.T) {
	codec := NewFloatingCodec()

	_, err := codec.CompressF64([]float64{math.NaN()})
	require.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestFloatingCodec_ParRoundTrip(t *testing.T) {
	codec := NewFloatingCodec()

	values := make([]float32, 150)
	for i := range values {
		values[i] = float32(i) * 0.5
	}

	frame, err := codec.ParCompressF32(values, 16)
	require.NoError(t, err)

	got, err := codec.ParDecompressF32(frame)
	require.NoError(t, err)
	for i := range values {
		require.InDelta(t, values[i], got[i], 1e-4)
	}
}

func TestKindMismatch_Detected(t *testing.T) {
	intCodec := NewIntegerCodec()
	floatCodec := NewFloatingCodec()

	frame, err := intCodec.CompressI64([]int64{1, 2, 3})
	require.NoError(t, err)

	_, err = floatCodec.DecompressF64(frame)
	require.ErrorIs(t, err, errs.ErrKindMismatch)
}

func TestCorruptedFrame_ReportsBadMagic(t *testing.T) {
	codec := NewIntegerCodec()

	frame, err := codec.CompressI8([]int8{1, 2, 3})
	require.NoError(t, err)

	corrupted := append([]byte(nil), frame...)
	corrupted[0] = 'Z'

	_, err = codec.DecompressI8(corrupted)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestBytesCodec_RoundTrip(t *testing.T) {
	codec := NewBytesCodec()
	data := []byte("arbitrary opaque payload, not a numeric array")

	frame, err := codec.Compress(data)
	require.NoError(t, err)

	got, err := codec.Decompress(frame)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestWithBackend_NoOp(t *testing.T) {
	codec := NewIntegerCodec(WithBackend(bytecompress.NewNoOp()))
	values := []int16{1, 2, 3, 4, 5}

	frame, err := codec.CompressI16(values)
	require.NoError(t, err)

	got, err := codec.DecompressI16(frame)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestCompressionRatio_ConstantArray(t *testing.T) {
	codec := NewIntegerCodec()

	values := make([]int64, 5000)
	for i := range values {
		values[i] = 42
	}

	frame, err := codec.CompressI64(values)
	require.NoError(t, err)
	require.Less(t, len(frame), len(values)*8/10)
}
