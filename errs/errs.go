// Package errs defines the sentinel errors shared across cydec's codec,
// frame, and parallel packages.
//
// Callers should compare against these with errors.Is, since internal
// call sites wrap them with additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrBadMagic is returned when a frame does not begin with the CYDEC magic bytes.
	ErrBadMagic = errors.New("cydec: bad magic")

	// ErrUnsupportedVersion is returned when a frame's version byte exceeds the
	// highest version this build understands.
	ErrUnsupportedVersion = errors.New("cydec: unsupported version")

	// ErrUnknownCodecKind is returned when a frame's codec-kind byte is not a
	// recognized enumeration value.
	ErrUnknownCodecKind = errors.New("cydec: unknown codec kind")

	// ErrUnknownElementKind is returned when a frame's element-kind byte is not a
	// recognized enumeration value.
	ErrUnknownElementKind = errors.New("cydec: unknown element kind")

	// ErrKindMismatch is returned when a caller decodes a frame with a codec
	// handle for a different element kind than the frame declares.
	ErrKindMismatch = errors.New("cydec: element kind mismatch")

	// ErrTruncated is returned when a read runs past the end of the buffer,
	// in either the header or the payload.
	ErrTruncated = errors.New("cydec: truncated frame")

	// ErrMalformed is returned for structurally invalid payloads: a varint whose
	// continuation bit runs off the end of the buffer, a varint that overflows
	// 64 bits, an element count that doesn't match the number of varints present,
	// or a chunk index whose offsets/lengths are inconsistent.
	ErrMalformed = errors.New("cydec: malformed payload")

	// ErrOverflow is returned when float quantisation overflows the destination
	// signed integer width.
	ErrOverflow = errors.New("cydec: quantised value overflows destination width")

	// ErrUnsupported is returned when a float input is NaN or infinite.
	ErrUnsupported = errors.New("cydec: unsupported float value")

	// ErrBackendFailure wraps an error returned by the configured ByteCompressor.
	ErrBackendFailure = errors.New("cydec: backend compressor failure")
)
