// Package frame implements cydec's self-describing binary container: the
// fixed header, the optional float scale factor, and the two payload shapes
// (SingleBlock, MultiChunk).
//
// The header layout and the validate-on-read discipline follow a
// Parse/Bytes discipline, simplified to cydec's flat field list and fixed
// little-endian byte order.
package frame

import (
	"fmt"

	"github.com/tia-lab/cydec/endian"
	"github.com/tia-lab/cydec/errs"
)

// Magic is the fixed 5-byte prefix of every cydec frame.
var Magic = [5]byte{'C', 'Y', 'D', 'E', 'C'}

// CurrentVersion is the format version this build writes.
const CurrentVersion uint8 = 1

// MaxSupportedVersion is the highest version this build can read.
const MaxSupportedVersion uint8 = 1

// fixedHeaderSize is the byte length of magic+version+codecKind+elementKind+elementCount,
// i.e. everything before the optional scale factor.
const fixedHeaderSize = 5 + 1 + 1 + 1 + 8

// scaleSize is the byte length of the optional scale-factor field.
const scaleSize = 8

// Header is the parsed form of a frame's fixed-size prefix.
type Header struct {
	Version      uint8
	CodecKind    CodecKind
	ElementKind  ElementKind
	ElementCount uint64
	// ScaleFactor is meaningful only when ElementKind.IsFloat().
	ScaleFactor int64
}

// HeaderSize returns the on-wire size of h's header, 16 bytes for integer/
// bytes kinds and 24 bytes for float kinds.
func (h Header) HeaderSize() int {
	if h.ElementKind.IsFloat() {
		return fixedHeaderSize + scaleSize
	}

	return fixedHeaderSize
}

var le = endian.LittleEndian()

// Encode serializes h followed by payload into a complete frame.
func Encode(h Header, payload []byte) []byte {
	out := make([]byte, 0, h.HeaderSize()+len(payload))
	out = append(out, Magic[:]...)
	out = append(out, h.Version, byte(h.CodecKind), byte(h.ElementKind))
	out = le.AppendUint64(out, h.ElementCount)

	if h.ElementKind.IsFloat() {
		out = le.AppendUint64(out, uint64(h.ScaleFactor)) //nolint:gosec
	}

	out = append(out, payload...)

	return out
}

// Decode validates and parses a frame's header, returning the header and a
// slice of data referencing the payload region (no copy).
//
// Decode returns errs.ErrTruncated if data is shorter than the header it
// claims to have, errs.ErrBadMagic if the magic bytes don't match,
// errs.ErrUnsupportedVersion if the version exceeds MaxSupportedVersion, and
// errs.ErrUnknownCodecKind / errs.ErrUnknownElementKind for unrecognized tag
// bytes.
func Decode(data []byte) (Header, []byte, error) {
	if len(data) < fixedHeaderSize {
		return Header{}, nil, errs.ErrTruncated
	}

	if [5]byte(data[0:5]) != Magic {
		return Header{}, nil, errs.ErrBadMagic
	}

	var h Header
	h.Version = data[5]
	if h.Version == 0 || h.Version > MaxSupportedVersion {
		return Header{}, nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.CodecKind = CodecKind(data[6])
	if !h.CodecKind.Valid() {
		return Header{}, nil, fmt.Errorf("%w: %d", errs.ErrUnknownCodecKind, data[6])
	}

	h.ElementKind = ElementKind(data[7])
	if !h.ElementKind.Valid() {
		return Header{}, nil, fmt.Errorf("%w: %d", errs.ErrUnknownElementKind, data[7])
	}

	h.ElementCount = le.Uint64(data[8:16])

	offset := fixedHeaderSize
	if h.ElementKind.IsFloat() {
		if len(data) < fixedHeaderSize+scaleSize {
			return Header{}, nil, fmt.Errorf("%w: missing scale factor", errs.ErrTruncated)
		}

		h.ScaleFactor = int64(le.Uint64(data[offset : offset+scaleSize])) //nolint:gosec
		offset += scaleSize
	}

	return h, data[offset:], nil
}
