package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tia-lab/cydec/errs"
)

func buildIndex(lengths []uint64) ChunkIndex {
	ci := ChunkIndex{
		ChunkCount: uint32(len(lengths)), //nolint:gosec
		ChunkSize:  4,
		Offsets:    make([]uint64, len(lengths)),
		Lengths:    lengths,
	}

	offset := uint64(ci.ByteSize())
	for i, l := range lengths {
		ci.Offsets[i] = offset
		offset += l
	}

	return ci
}

func TestChunkIndex_RoundTrip(t *testing.T) {
	ci := buildIndex([]uint64{10, 20, 5})

	data := EncodeChunkIndex(ci)
	got, n, err := DecodeChunkIndex(data)
	require.NoError(t, err)
	require.Equal(t, ci, got)
	require.Equal(t, len(data), n)
}

func TestChunkIndex_Empty(t *testing.T) {
	ci := ChunkIndex{ChunkCount: 0, ChunkSize: 4}
	data := EncodeChunkIndex(ci)

	got, _, err := DecodeChunkIndex(data)
	require.NoError(t, err)
	require.Equal(t, uint32(0), got.ChunkCount)
}

func TestChunkIndex_RejectsBadFirstOffset(t *testing.T) {
	ci := buildIndex([]uint64{10})
	ci.Offsets[0] += 1

	data := EncodeChunkIndex(ci)
	_, _, err := DecodeChunkIndex(data)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestChunkIndex_RejectsNonIncreasingOffsets(t *testing.T) {
	ci := buildIndex([]uint64{10, 20})
	ci.Offsets[1] = ci.Offsets[0]

	data := EncodeChunkIndex(ci)
	_, _, err := DecodeChunkIndex(data)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestChunkIndex_RejectsGapBetweenChunks(t *testing.T) {
	ci := buildIndex([]uint64{10, 20})
	ci.Lengths[0] = 5 // leaves a gap before offsets[1]

	data := EncodeChunkIndex(ci)
	_, _, err := DecodeChunkIndex(data)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestChunkIndex_Truncated(t *testing.T) {
	ci := buildIndex([]uint64{10})
	data := EncodeChunkIndex(ci)

	_, _, err := DecodeChunkIndex(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrTruncated)
}
