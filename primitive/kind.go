// Package primitive implements typed encode/decode of unsigned and signed
// integers up to 64 bits, IEEE-754 f32/f64, enumerations (narrow unsigned
// on the wire), and byte-sized booleans; integers and floats carry a linear
// scale/offset.
//
// The engine-driven, buffer-growth-aware shape of these codecs is grounded
// on encoding.NumericRawEncoder/Decoder (raw float64 over an EndianEngine)
// and encoding.VarStringEncoder (explicit width-validation error style);
// the bit-level read/write itself is delegated to bitio.Buffer.
package primitive

import "github.com/fcp-project/fcp-codec/bitio"

// Kind tags the category of primitive a Field describes.
type Kind uint8

const (
	KindUnsigned Kind = iota
	KindSigned
	KindF32
	KindF64
	KindEnum
	KindBool
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "Unsigned"
	case KindSigned:
		return "Signed"
	case KindF32:
		return "F32"
	case KindF64:
		return "F64"
	case KindEnum:
		return "Enum"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Field describes one primitive's wire shape: its kind, bit width (meaningful
// for Unsigned/Signed/Enum; implied for F32/F64/Bool), endianness, and linear
// scale/offset. Scale defaults to 1 and Offset to 0 — the
// zero value of Field is not directly usable (Bits is 0); use NewField or one
// of the kind constructors below.
type Field struct {
	Kind       Kind
	Bits       int
	Endianness bitio.Endianness
	Scale      float64
	Offset     float64
}

// NewField builds a Field with the given kind/bits and default scale (1) and
// offset (0), little-endian.
func NewField(kind Kind, bits int) Field {
	return Field{Kind: kind, Bits: bits, Endianness: bitio.Little, Scale: 1, Offset: 0}
}

// Unsigned returns a Field for an N-bit unsigned integer.
func Unsigned(bits int) Field { return NewField(KindUnsigned, bits) }

// Signed returns a Field for an N-bit two's-complement signed integer.
func Signed(bits int) Field { return NewField(KindSigned, bits) }

// F32 returns a Field for an IEEE-754 32-bit float.
func F32() Field { return NewField(KindF32, 32) }

// F64 returns a Field for an IEEE-754 64-bit float.
func F64() Field { return NewField(KindF64, 64) }

// Bool returns a Field for an 8-bit boolean (0 = false, nonzero = true).
func Bool() Field { return NewField(KindBool, 8) }

// Enum returns a Field for an N-bit enumeration's underlying unsigned
// integer representation.
func Enum(bits int) Field { return NewField(KindEnum, bits) }

// WithEndianness returns a copy of f with the given endianness.
func (f Field) WithEndianness(e bitio.Endianness) Field {
	f.Endianness = e

	return f
}

// WithScale returns a copy of f with the given scale/offset.
func (f Field) WithScale(scale, offset float64) Field {
	f.Scale = scale
	f.Offset = offset

	return f
}

// HasDefaultScale reports whether f uses the identity affine map
// (scale=1, offset=0). The integer fast path in the codecs is taken whenever
// scale is 1, whatever the offset.
func (f Field) HasDefaultScale() bool {
	return f.Scale == 1 && f.Offset == 0
}
