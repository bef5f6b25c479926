// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It extends the standard library's encoding/binary package by combining
// ByteOrder and AppendByteOrder into a single interface, and gives the frame
// writer a fast append-based path for header integers.
//
// cydec's wire format fixes little-endian for every multi-byte header
// field, so this package only exposes the little-endian engine and
// a host-endianness check.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface for convenient byte-order operations. binary.LittleEndian
// satisfies it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the engine used for every cydec frame field.
func LittleEndian() Engine {
	return binary.LittleEndian
}

// checkNativeOrder uses a fixed integer value to determine the host's byte
// order, without importing runtime-specific build tags.
func checkNativeOrder() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the running machine is little-endian.
// cydec frames are little-endian regardless of this value.
func IsNativeLittleEndian() bool {
	return checkNativeOrder() == binary.LittleEndian
}
