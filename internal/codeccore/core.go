// Package codeccore holds the generic compress/decompress skeleton shared
// by every element-width method on IntegerCodec and FloatingCodec. cydec
// keeps its public methods monomorphic, one per width, and shares their
// bodies through this internal generic core instead of duplicating the
// frame-assembly logic eleven times.
package codeccore

import (
	"fmt"

	"github.com/tia-lab/cydec/bytecompress"
	"github.com/tia-lab/cydec/errs"
	"github.com/tia-lab/cydec/frame"
	"github.com/tia-lab/cydec/parallel"
)

// PackFunc packs a slice of T into the pre-compression transform buffer.
// Only float packs can fail (NaN/Inf/overflow); integer packs always
// return a nil error.
type PackFunc[T any] func(values []T) ([]byte, error)

// UnpackFunc inverts PackFunc, given the expected element count.
type UnpackFunc[T any] func(data []byte, count int) ([]T, error)

// CompressSingle builds a SingleBlock frame.
func CompressSingle[T any](values []T, kind frame.ElementKind, scale int64, backend bytecompress.Codec, pack PackFunc[T]) ([]byte, error) {
	raw, err := pack(values)
	if err != nil {
		return nil, err
	}

	compressed, err := backend.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	h := frame.Header{
		Version:      frame.CurrentVersion,
		CodecKind:    frame.SingleBlock,
		ElementKind:  kind,
		ElementCount: uint64(len(values)), //nolint:gosec
		ScaleFactor:  scale,
	}

	return frame.Encode(h, compressed), nil
}

// ParCompress builds a MultiChunk frame, encoding each chunk independently
// through exec.
func ParCompress[T any](values []T, chunkSize int, kind frame.ElementKind, scale int64, backend bytecompress.Codec, exec parallel.Executor, pack PackFunc[T]) ([]byte, error) {
	if chunkSize < 1 {
		chunkSize = 1
	}

	return parallel.EncodeMultiChunk(exec, len(values), chunkSize, kind, scale, func(r parallel.Range) ([]byte, error) {
		return CompressSingle(values[r.Start:r.Start+r.Count], kind, scale, backend, pack)
	})
}

// Decompress decodes a frame of either codec kind. The plain and parallel
// decompress entry points share this; the only difference between them is
// which Executor drives a MultiChunk frame's chunk fan-out.
func Decompress[T any](data []byte, kind frame.ElementKind, backend bytecompress.Codec, exec parallel.Executor, unpack UnpackFunc[T]) ([]T, error) {
	h, payload, err := frame.Decode(data)
	if err != nil {
		return nil, err
	}

	if h.ElementKind != kind {
		return nil, fmt.Errorf("%w: requested %s, frame declares %s", errs.ErrKindMismatch, kind, h.ElementKind)
	}

	switch h.CodecKind {
	case frame.SingleBlock:
		return decodeSingleBlock(payload, int(h.ElementCount), backend, unpack) //nolint:gosec
	case frame.MultiChunk:
		return decodeMultiChunk(payload, int(h.ElementCount), kind, backend, exec, unpack) //nolint:gosec
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCodecKind, h.CodecKind)
	}
}

func decodeSingleBlock[T any](payload []byte, count int, backend bytecompress.Codec, unpack UnpackFunc[T]) ([]T, error) {
	raw, err := backend.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrBackendFailure, err)
	}

	return unpack(raw, count)
}

func decodeMultiChunk[T any](payload []byte, totalCount int, kind frame.ElementKind, backend bytecompress.Codec, exec parallel.Executor, unpack UnpackFunc[T]) ([]T, error) {
	out := make([]T, totalCount)

	err := parallel.DecodeMultiChunk(exec, payload, totalCount, func(chunkFrame []byte, r parallel.Range) error {
		ch, chPayload, err := frame.Decode(chunkFrame)
		if err != nil {
			return err
		}

		if ch.ElementKind != kind {
			return fmt.Errorf("%w: chunk declares %s, expected %s", errs.ErrKindMismatch, ch.ElementKind, kind)
		}

		if ch.CodecKind != frame.SingleBlock {
			return fmt.Errorf("%w: chunk frame must be SingleBlock", errs.ErrMalformed)
		}

		vals, err := decodeSingleBlock(chPayload, r.Count, backend, unpack)
		if err != nil {
			return err
		}

		copy(out[r.Start:r.Start+r.Count], vals)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
