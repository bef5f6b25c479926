// Package cydec implements compression of homogeneous numeric arrays,
// lossless for integers and fixed-precision for floats: delta transform, zigzag mapping, and varint packing in front of a
// pluggable byte-oriented compressor, framed in a small self-describing
// container that a decoder can validate without side information.
//
// IntegerCodec and FloatingCodec are the public entry points. Each exposes
// one Compress/Decompress pair per element width plus their parallel,
// chunked counterparts; all four share the same on-disk frame family, so
// compress_K, par_compress_K, decompress_K, and par_decompress_K interoperate
// freely regardless of which one produced a given frame.
package cydec

import (
	"fmt"

	"github.com/tia-lab/cydec/bytecompress"
	"github.com/tia-lab/cydec/errs"
	"github.com/tia-lab/cydec/frame"
	"github.com/tia-lab/cydec/internal/codeccore"
	"github.com/tia-lab/cydec/internal/options"
	"github.com/tia-lab/cydec/kindengine"
	"github.com/tia-lab/cydec/parallel"
	"github.com/tia-lab/cydec/transform"
)

// DefaultChunkSize is used by the Par* methods when no chunk size is given
// that would produce at least one chunk.
const DefaultChunkSize = 1024

// Option configures an IntegerCodec or FloatingCodec at construction time,
// built on the generic functional-options helper in internal/options.
type Option = options.Option[*config]

type config struct {
	backend   bytecompress.Codec
	executor  parallel.Executor
	chunkSize int
}

func defaultConfig() config {
	return config{
		backend:   bytecompress.NewLZ4(),
		executor:  parallel.NewExecutor(),
		chunkSize: DefaultChunkSize,
	}
}

// WithBackend overrides the ByteCompressor used for the opaque compression
// stage. The default is LZ4.
func WithBackend(backend bytecompress.Codec) Option {
	return options.NoError(func(c *config) {
		c.backend = backend
	})
}

// WithExecutor overrides the ParallelExecutor driving Par* methods. The
// default fans work out across goroutines; parallel.NewSequentialExecutor()
// runs chunks on the caller's goroutine instead.
func WithExecutor(exec parallel.Executor) Option {
	return options.NoError(func(c *config) {
		c.executor = exec
	})
}

// WithChunkSize overrides the chunk size Par* methods use when the caller
// does not pass one explicitly (values less than 1 are ignored).
func WithChunkSize(n int) Option {
	return options.NoError(func(c *config) {
		if n >= 1 {
			c.chunkSize = n
		}
	})
}

func build(opts []Option) config {
	c := defaultConfig()
	_ = options.Apply(&c, opts...) // the built-in Option constructors never fail

	return c
}

// IntegerCodec compresses and decompresses fixed-width integer arrays.
type IntegerCodec struct {
	cfg config
}

// NewIntegerCodec constructs an IntegerCodec. With no options it uses LZ4
// compression and a goroutine-parallel executor.
func NewIntegerCodec(opts ...Option) *IntegerCodec {
	return &IntegerCodec{cfg: build(opts)}
}

func i8Pack(v []int8) ([]byte, error)   { return kindengine.PackI8(v), nil }
func i16Pack(v []int16) ([]byte, error) { return kindengine.PackI16(v), nil }
func i32Pack(v []int32) ([]byte, error) { return kindengine.PackI32(v), nil }
func i64Pack(v []int64) ([]byte, error) { return kindengine.PackI64(v), nil }

func u8Pack(v []uint8) ([]byte, error)   { return kindengine.PackU8(v), nil }
func u16Pack(v []uint16) ([]byte, error) { return kindengine.PackU16(v), nil }
func u32Pack(v []uint32) ([]byte, error) { return kindengine.PackU32(v), nil }
func u64Pack(v []uint64) ([]byte, error) { return kindengine.PackU64(v), nil }

// CompressI8 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressI8(values []int8) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindI8, 0, c.cfg.backend, i8Pack)
}

// DecompressI8 inverts any I8 frame produced by CompressI8 or ParCompressI8.
func (c *IntegerCodec) DecompressI8(data []byte) ([]int8, error) {
	return codeccore.Decompress(data, frame.KindI8, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackI8)
}

// ParCompressI8 encodes values into a MultiChunk frame, chunkSize elements
// per chunk (chunkSize <= 0 uses the codec's configured default).
func (c *IntegerCodec) ParCompressI8(values []int8, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindI8, 0, c.cfg.backend, c.cfg.executor, i8Pack)
}

// ParDecompressI8 inverts any I8 frame, decoding MultiChunk frames across the
// codec's configured Executor.
func (c *IntegerCodec) ParDecompressI8(data []byte) ([]int8, error) {
	return codeccore.Decompress(data, frame.KindI8, c.cfg.backend, c.cfg.executor, kindengine.UnpackI8)
}

// CompressI16 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressI16(values []int16) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindI16, 0, c.cfg.backend, i16Pack)
}

// DecompressI16 inverts any I16 frame produced by CompressI16 or ParCompressI16.
func (c *IntegerCodec) DecompressI16(data []byte) ([]int16, error) {
	return codeccore.Decompress(data, frame.KindI16, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackI16)
}

// ParCompressI16 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressI16(values []int16, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindI16, 0, c.cfg.backend, c.cfg.executor, i16Pack)
}

// ParDecompressI16 inverts any I16 frame.
func (c *IntegerCodec) ParDecompressI16(data []byte) ([]int16, error) {
	return codeccore.Decompress(data, frame.KindI16, c.cfg.backend, c.cfg.executor, kindengine.UnpackI16)
}

// CompressI32 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressI32(values []int32) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindI32, 0, c.cfg.backend, i32Pack)
}

// DecompressI32 inverts any I32 frame produced by CompressI32 or ParCompressI32.
func (c *IntegerCodec) DecompressI32(data []byte) ([]int32, error) {
	return codeccore.Decompress(data, frame.KindI32, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackI32)
}

// ParCompressI32 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressI32(values []int32, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindI32, 0, c.cfg.backend, c.cfg.executor, i32Pack)
}

// ParDecompressI32 inverts any I32 frame.
func (c *IntegerCodec) ParDecompressI32(data []byte) ([]int32, error) {
	return codeccore.Decompress(data, frame.KindI32, c.cfg.backend, c.cfg.executor, kindengine.UnpackI32)
}

// CompressI64 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressI64(values []int64) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindI64, 0, c.cfg.backend, i64Pack)
}

// DecompressI64 inverts any I64 frame produced by CompressI64 or ParCompressI64.
func (c *IntegerCodec) DecompressI64(data []byte) ([]int64, error) {
	return codeccore.Decompress(data, frame.KindI64, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackI64)
}

// ParCompressI64 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressI64(values []int64, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindI64, 0, c.cfg.backend, c.cfg.executor, i64Pack)
}

// ParDecompressI64 inverts any I64 frame.
func (c *IntegerCodec) ParDecompressI64(data []byte) ([]int64, error) {
	return codeccore.Decompress(data, frame.KindI64, c.cfg.backend, c.cfg.executor, kindengine.UnpackI64)
}

// CompressU8 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressU8(values []uint8) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindU8, 0, c.cfg.backend, u8Pack)
}

// DecompressU8 inverts any U8 frame produced by CompressU8 or ParCompressU8.
func (c *IntegerCodec) DecompressU8(data []byte) ([]uint8, error) {
	return codeccore.Decompress(data, frame.KindU8, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackU8)
}

// ParCompressU8 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressU8(values []uint8, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindU8, 0, c.cfg.backend, c.cfg.executor, u8Pack)
}

// ParDecompressU8 inverts any U8 frame.
func (c *IntegerCodec) ParDecompressU8(data []byte) ([]uint8, error) {
	return codeccore.Decompress(data, frame.KindU8, c.cfg.backend, c.cfg.executor, kindengine.UnpackU8)
}

// CompressU16 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressU16(values []uint16) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindU16, 0, c.cfg.backend, u16Pack)
}

// DecompressU16 inverts any U16 frame produced by CompressU16 or ParCompressU16.
func (c *IntegerCodec) DecompressU16(data []byte) ([]uint16, error) {
	return codeccore.Decompress(data, frame.KindU16, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackU16)
}

// ParCompressU16 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressU16(values []uint16, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindU16, 0, c.cfg.backend, c.cfg.executor, u16Pack)
}

// ParDecompressU16 inverts any U16 frame.
func (c *IntegerCodec) ParDecompressU16(data []byte) ([]uint16, error) {
	return codeccore.Decompress(data, frame.KindU16, c.cfg.backend, c.cfg.executor, kindengine.UnpackU16)
}

// CompressU32 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressU32(values []uint32) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindU32, 0, c.cfg.backend, u32Pack)
}

// DecompressU32 inverts any U32 frame produced by CompressU32 or ParCompressU32.
func (c *IntegerCodec) DecompressU32(data []byte) ([]uint32, error) {
	return codeccore.Decompress(data, frame.KindU32, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackU32)
}

// ParCompressU32 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressU32(values []uint32, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindU32, 0, c.cfg.backend, c.cfg.executor, u32Pack)
}

// ParDecompressU32 inverts any U32 frame.
func (c *IntegerCodec) ParDecompressU32(data []byte) ([]uint32, error) {
	return codeccore.Decompress(data, frame.KindU32, c.cfg.backend, c.cfg.executor, kindengine.UnpackU32)
}

// CompressU64 encodes values into a SingleBlock frame.
func (c *IntegerCodec) CompressU64(values []uint64) ([]byte, error) {
	return codeccore.CompressSingle(values, frame.KindU64, 0, c.cfg.backend, u64Pack)
}

// DecompressU64 inverts any U64 frame produced by CompressU64 or ParCompressU64.
func (c *IntegerCodec) DecompressU64(data []byte) ([]uint64, error) {
	return codeccore.Decompress(data, frame.KindU64, c.cfg.backend, parallel.NewSequentialExecutor(), kindengine.UnpackU64)
}

// ParCompressU64 encodes values into a MultiChunk frame.
func (c *IntegerCodec) ParCompressU64(values []uint64, chunkSize int) ([]byte, error) {
	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindU64, 0, c.cfg.backend, c.cfg.executor, u64Pack)
}

// ParDecompressU64 inverts any U64 frame.
func (c *IntegerCodec) ParDecompressU64(data []byte) ([]uint64, error) {
	return codeccore.Decompress(data, frame.KindU64, c.cfg.backend, c.cfg.executor, kindengine.UnpackU64)
}

func (c *IntegerCodec) resolveChunkSize(chunkSize int) int {
	if chunkSize < 1 {
		return c.cfg.chunkSize
	}

	return chunkSize
}

// FloatingCodec compresses and decompresses fixed-precision float arrays.
// Values are quantised to a power-of-ten fixed-point representation before
// the integer pipeline runs; WithScaleF32/WithScaleF64 set that scale.
type FloatingCodec struct {
	cfg      config
	scaleF32 int
	scaleF64 int
}

// FloatOption configures a FloatingCodec at construction time, in addition
// to the shared Option set.
type FloatOption func(*FloatingCodec)

// WithScaleF32 overrides the power-of-ten scale used for float32 arrays.
// The default is transform.DefaultScaleF32.
func WithScaleF32(scale int) FloatOption {
	return func(c *FloatingCodec) {
		c.scaleF32 = scale
	}
}

// WithScaleF64 overrides the power-of-ten scale used for float64 arrays.
// The default is transform.DefaultScaleF64.
func WithScaleF64(scale int) FloatOption {
	return func(c *FloatingCodec) {
		c.scaleF64 = scale
	}
}

// NewFloatingCodec constructs a FloatingCodec. With no options it uses LZ4
// compression, a goroutine-parallel executor, and the package default scales.
func NewFloatingCodec(opts ...Option) *FloatingCodec {
	return &FloatingCodec{
		cfg:      build(opts),
		scaleF32: transform.DefaultScaleF32,
		scaleF64: transform.DefaultScaleF64,
	}
}

// WithFloatOptions applies float-specific options after construction,
// returning the same *FloatingCodec for chaining.
func (c *FloatingCodec) WithFloatOptions(opts ...FloatOption) *FloatingCodec {
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CompressF32 quantises values at the codec's configured scale and encodes
// them into a SingleBlock frame.
func (c *FloatingCodec) CompressF32(values []float32) ([]byte, error) {
	scale := c.scaleF32
	pack := func(v []float32) ([]byte, error) { return kindengine.PackF32(v, scale) }

	return codeccore.CompressSingle(values, frame.KindF32, int64(scale), c.cfg.backend, pack)
}

// DecompressF32 inverts any F32 frame produced by CompressF32 or ParCompressF32.
func (c *FloatingCodec) DecompressF32(data []byte) ([]float32, error) {
	return decompressFloat32(data, c.cfg.backend, parallel.NewSequentialExecutor())
}

// ParCompressF32 quantises values and encodes them into a MultiChunk frame.
func (c *FloatingCodec) ParCompressF32(values []float32, chunkSize int) ([]byte, error) {
	scale := c.scaleF32
	pack := func(v []float32) ([]byte, error) { return kindengine.PackF32(v, scale) }

	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindF32, int64(scale), c.cfg.backend, c.cfg.executor, pack)
}

// ParDecompressF32 inverts any F32 frame.
func (c *FloatingCodec) ParDecompressF32(data []byte) ([]float32, error) {
	return decompressFloat32(data, c.cfg.backend, c.cfg.executor)
}

func decompressFloat32(data []byte, backend bytecompress.Codec, exec parallel.Executor) ([]float32, error) {
	h, _, err := frame.Decode(data)
	if err != nil {
		return nil, err
	}

	scale := int(h.ScaleFactor)
	unpack := func(d []byte, count int) ([]float32, error) { return kindengine.UnpackF32(d, count, scale) }

	return codeccore.Decompress(data, frame.KindF32, backend, exec, unpack)
}

// CompressF64 quantises values at the codec's configured scale and encodes
// them into a SingleBlock frame.
func (c *FloatingCodec) CompressF64(values []float64) ([]byte, error) {
	scale := c.scaleF64
	pack := func(v []float64) ([]byte, error) { return kindengine.PackF64(v, scale) }

	return codeccore.CompressSingle(values, frame.KindF64, int64(scale), c.cfg.backend, pack)
}

// DecompressF64 inverts any F64 frame produced by CompressF64 or ParCompressF64.
func (c *FloatingCodec) DecompressF64(data []byte) ([]float64, error) {
	return decompressFloat64(data, c.cfg.backend, parallel.NewSequentialExecutor())
}

// ParCompressF64 quantises values and encodes them into a MultiChunk frame.
func (c *FloatingCodec) ParCompressF64(values []float64, chunkSize int) ([]byte, error) {
	scale := c.scaleF64
	pack := func(v []float64) ([]byte, error) { return kindengine.PackF64(v, scale) }

	return codeccore.ParCompress(values, c.resolveChunkSize(chunkSize), frame.KindF64, int64(scale), c.cfg.backend, c.cfg.executor, pack)
}

// ParDecompressF64 inverts any F64 frame.
func (c *FloatingCodec) ParDecompressF64(data []byte) ([]float64, error) {
	return decompressFloat64(data, c.cfg.backend, c.cfg.executor)
}

func decompressFloat64(data []byte, backend bytecompress.Codec, exec parallel.Executor) ([]float64, error) {
	h, _, err := frame.Decode(data)
	if err != nil {
		return nil, err
	}

	scale := int(h.ScaleFactor)
	unpack := func(d []byte, count int) ([]float64, error) { return kindengine.UnpackF64(d, count, scale) }

	return codeccore.Decompress(data, frame.KindF64, backend, exec, unpack)
}

func (c *FloatingCodec) resolveChunkSize(chunkSize int) int {
	if chunkSize < 1 {
		return c.cfg.chunkSize
	}

	return chunkSize
}

// BytesCodec passes raw byte payloads through the frame/compression
// pipeline unchanged, bypassing the numeric transform entirely.
type BytesCodec struct {
	cfg config
}

// NewBytesCodec constructs a BytesCodec.
func NewBytesCodec(opts ...Option) *BytesCodec {
	return &BytesCodec{cfg: build(opts)}
}

// Compress wraps data in a SingleBlock Bytes frame.
func (c *BytesCodec) Compress(data []byte) ([]byte, error) {
	pack := func(v []byte) ([]byte, error) { return kindengine.PackBytes(v), nil }

	return codeccore.CompressSingle(data, frame.KindBytes, 0, c.cfg.backend, pack)
}

// Decompress inverts Compress.
func (c *BytesCodec) Decompress(data []byte) ([]byte, error) {
	unpack := func(d []byte, count int) ([]byte, error) {
		raw := kindengine.UnpackBytes(d)
		if len(raw) != count {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrMalformed, count, len(raw))
		}

		return raw, nil
	}

	return codeccore.Decompress(data, frame.KindBytes, c.cfg.backend, parallel.NewSequentialExecutor(), unpack)
}
