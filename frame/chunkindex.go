package frame

import (
	"fmt"

	"github.com/tia-lab/cydec/errs"
)

// chunkIndexFixedSize is the byte length of chunk count + chunk size, before
// the per-chunk offset/length arrays.
const chunkIndexFixedSize = 4 + 8

// ChunkIndex describes the layout of a MultiChunk frame's payload section:
// chunk count, logical elements per chunk, and the byte offset/length of
// each chunk's independently-encoded SingleBlock payload.
type ChunkIndex struct {
	ChunkCount uint32
	ChunkSize  uint64
	Offsets    []uint64
	Lengths    []uint64
}

// ByteSize returns the on-wire size of the index region itself (not
// including the chunk payloads that follow it).
func (ci ChunkIndex) ByteSize() int {
	return chunkIndexFixedSize + 16*int(ci.ChunkCount)
}

// EncodeChunkIndex serializes ci.
func EncodeChunkIndex(ci ChunkIndex) []byte {
	out := make([]byte, 0, ci.ByteSize())
	out = le.AppendUint32(out, ci.ChunkCount)
	out = le.AppendUint64(out, ci.ChunkSize)

	for _, off := range ci.Offsets {
		out = le.AppendUint64(out, off)
	}
	for _, length := range ci.Lengths {
		out = le.AppendUint64(out, length)
	}

	return out
}

// DecodeChunkIndex parses a ChunkIndex from the start of data and returns it
// along with the byte offset of whatever follows it (the concatenated chunk
// payloads).
//
// DecodeChunkIndex validates that offsets[0] equals the index region's byte
// size, offsets are strictly increasing,
// offsets[i]+lengths[i] == offsets[i+1], and returns errs.ErrMalformed if
// any of them is violated.
func DecodeChunkIndex(data []byte) (ChunkIndex, int, error) {
	if len(data) < chunkIndexFixedSize {
		return ChunkIndex{}, 0, errs.ErrTruncated
	}

	var ci ChunkIndex
	ci.ChunkCount = le.Uint32(data[0:4])
	ci.ChunkSize = le.Uint64(data[4:12])

	offset := chunkIndexFixedSize
	arraysSize := 16 * int(ci.ChunkCount)
	if len(data) < offset+arraysSize {
		return ChunkIndex{}, 0, errs.ErrTruncated
	}

	ci.Offsets = make([]uint64, ci.ChunkCount)
	for i := range ci.Offsets {
		ci.Offsets[i] = le.Uint64(data[offset : offset+8])
		offset += 8
	}

	ci.Lengths = make([]uint64, ci.ChunkCount)
	for i := range ci.Lengths {
		ci.Lengths[i] = le.Uint64(data[offset : offset+8])
		offset += 8
	}

	if err := ci.validate(); err != nil {
		return ChunkIndex{}, 0, err
	}

	return ci, offset, nil
}

func (ci ChunkIndex) validate() error {
	if ci.ChunkCount == 0 {
		return nil
	}

	indexRegionSize := uint64(ci.ByteSize())
	if ci.Offsets[0] != indexRegionSize {
		return fmt.Errorf("%w: first chunk offset %d != index region size %d", errs.ErrMalformed, ci.Offsets[0], indexRegionSize)
	}

	for i := 0; i < int(ci.ChunkCount); i++ {
		if i > 0 && ci.Offsets[i] <= ci.Offsets[i-1] {
			return fmt.Errorf("%w: chunk offsets not strictly increasing at index %d", errs.ErrMalformed, i)
		}

		if i < int(ci.ChunkCount)-1 {
			if ci.Offsets[i]+ci.Lengths[i] != ci.Offsets[i+1] {
				return fmt.Errorf("%w: chunk %d offset+length does not reach next chunk's offset", errs.ErrMalformed, i)
			}
		}
	}

	return nil
}
