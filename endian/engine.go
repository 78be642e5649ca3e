// Package endian provides the byte order engine used by the bit-level codec.
//
// It extends Go's standard encoding/binary package by combining ByteOrder and
// AppendByteOrder into a single EndianEngine interface, giving the rest of the
// codec one small interface to depend on instead of two.
//
// # Basic Usage
//
// Descriptors default to little-endian:
//
//	import "github.com/fcp-project/fcp-codec/endian"
//
//	engine := endian.GetLittleEndianEngine()
//
// Big-endian only changes behavior for whole-octet primitive widths (8, 16,
// 32, 64 bits) — see the bitio package for where that restriction is enforced.
//
//	engine := endian.GetBigEndianEngine()
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// SwapsWidth reports whether bitlength is one of the whole-octet widths
// (8, 16, 32, 64) for which big-endian byte-swapping is defined.
//
// A big-endian descriptor never swaps bytes for any other width (e.g. 24
// bits) — the caller must not request Big endianness for those widths, and
// the core is permitted to ignore the flag when it happens.
func SwapsWidth(bitlength int) bool {
	switch bitlength {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}
