package bytecompress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/tia-lab/cydec/errs"
)

// zstdEncoderPool and zstdDecoderPool pool klauspost/compress/zstd encoders
// and decoders; both types are explicitly designed for reuse after a warmup
// to avoid allocating fresh state on every call.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("bytecompress: failed to create zstd encoder: %v", err))
			}

			return enc
		},
	}
	zstdDecoderPool = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
			)
			if err != nil {
				panic(fmt.Sprintf("bytecompress: failed to create zstd decoder: %v", err))
			}

			return dec
		},
	}
)

// ZstdCodec is an alternate ByteCompressor favoring compression ratio over
// speed, for callers managing their own non-standard frames.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstd creates a Zstd codec.
func NewZstd() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses data with Zstandard.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	return out, nil
}
