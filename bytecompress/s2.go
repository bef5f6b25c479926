package bytecompress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/tia-lab/cydec/errs"
)

// S2Codec is an alternate ByteCompressor favoring speed over ratio, for
// callers managing their own non-standard frames.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2 creates an S2 codec.
func NewS2() S2Codec {
	return S2Codec{}
}

// Compress compresses data with S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	return out, nil
}
