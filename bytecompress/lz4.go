package bytecompress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/tia-lab/cydec/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; the type carries internal
// hash-table state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is the default ByteCompressor for cydec frames.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4 creates an LZ4 codec.
func NewLZ4() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data using an LZ4 block, returning nil for empty input.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	if n == 0 {
		// Incompressible input: lz4 reports n==0 rather than expanding the block.
		// Fall back to storing the raw bytes so Decompress has something to invert.
		return append([]byte{0}, data...), nil
	}

	return append([]byte{1}, dst[:n]...), nil
}

// Decompress reverses Compress, using an adaptive buffer-doubling strategy
// when the uncompressed size isn't known ahead of time.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	stored, payload := data[0], data[1:]
	if stored == 0 {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	const maxSize = 128 * 1024 * 1024 // 128MiB safety limit
	bufSize := len(payload) * 4
	if bufSize == 0 {
		bufSize = 64
	}

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(payload, buf)
		if err == nil {
			return buf[:n], nil
		}

		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
			bufSize *= 2
			continue
		}

		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, lz4.ErrInvalidSourceShortBuffer)
}
