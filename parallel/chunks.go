package parallel

import (
	"fmt"

	"github.com/tia-lab/cydec/errs"
	"github.com/tia-lab/cydec/frame"
)

// Range is one chunk's logical element span: elements [Start, Start+Count).
type Range struct {
	Start int
	Count int
}

// Split divides totalCount logical elements into chunks of chunkSize,
// stable and contiguous in input order; the last chunk may be shorter.
// chunkSize must be >= 1.
func Split(totalCount, chunkSize int) []Range {
	if totalCount == 0 {
		return nil
	}

	n := (totalCount + chunkSize - 1) / chunkSize
	ranges := make([]Range, n)
	for i := range ranges {
		start := i * chunkSize
		count := chunkSize
		if start+count > totalCount {
			count = totalCount - start
		}
		ranges[i] = Range{Start: start, Count: count}
	}

	return ranges
}

// EncodeChunk is called once per chunk, in parallel, to produce that chunk's
// standalone SingleBlock frame bytes.
type EncodeChunk func(r Range) ([]byte, error)

// EncodeMultiChunk splits [0,totalCount) into chunks of chunkSize, encodes
// them in parallel via exec, and assembles the MultiChunk frame (outer
// header, chunk index, concatenated chunk payloads).
func EncodeMultiChunk(exec Executor, totalCount, chunkSize int, kind frame.ElementKind, scale int64, encode EncodeChunk) ([]byte, error) {
	ranges := Split(totalCount, chunkSize)

	chunkBytes, err := exec.Map(len(ranges), func(i int) ([]byte, error) {
		return encode(ranges[i])
	})
	if err != nil {
		return nil, err
	}

	ci := frame.ChunkIndex{
		ChunkCount: uint32(len(ranges)), //nolint:gosec
		ChunkSize:  uint64(chunkSize),   //nolint:gosec
		Offsets:    make([]uint64, len(ranges)),
		Lengths:    make([]uint64, len(ranges)),
	}

	indexSize := uint64(ci.ByteSize())
	offset := indexSize
	for i, cb := range chunkBytes {
		ci.Offsets[i] = offset
		ci.Lengths[i] = uint64(len(cb))
		offset += uint64(len(cb))
	}

	payload := make([]byte, 0, offset)
	payload = append(payload, frame.EncodeChunkIndex(ci)...)
	for _, cb := range chunkBytes {
		payload = append(payload, cb...)
	}

	h := frame.Header{
		Version:      frame.CurrentVersion,
		CodecKind:    frame.MultiChunk,
		ElementKind:  kind,
		ElementCount: uint64(totalCount), //nolint:gosec
		ScaleFactor:  scale,
	}

	return frame.Encode(h, payload), nil
}

// DecodeChunk is called once per chunk, in parallel, to decode that chunk's
// standalone SingleBlock frame into the destination range. Implementations
// must only write within [r.Start, r.Start+r.Count).
type DecodeChunk func(chunkFrame []byte, r Range) error

// DecodeMultiChunk parses the chunk index from a MultiChunk frame's payload
// and decodes every chunk in parallel via exec.
func DecodeMultiChunk(exec Executor, payload []byte, totalCount int, decode DecodeChunk) error {
	ci, _, err := frame.DecodeChunkIndex(payload)
	if err != nil {
		return err
	}

	var sumCounts int
	ranges := make([]Range, ci.ChunkCount)
	for i := range ranges {
		start := i * int(ci.ChunkSize)
		count := int(ci.ChunkSize)
		if start+count > totalCount {
			count = totalCount - start
		}
		ranges[i] = Range{Start: start, Count: count}
		sumCounts += count
	}

	if sumCounts != totalCount {
		return fmt.Errorf("%w: chunk sizes sum to %d, element count is %d", errs.ErrMalformed, sumCounts, totalCount)
	}

	_, err = exec.Map(int(ci.ChunkCount), func(i int) ([]byte, error) {
		lo, hi := ci.Offsets[i], ci.Offsets[i]+ci.Lengths[i]
		if hi > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: chunk %d extends past payload", errs.ErrTruncated, i)
		}

		chunkFrame := payload[lo:hi]

		return nil, decode(chunkFrame, ranges[i])
	})

	return err
}
