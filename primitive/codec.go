package primitive

import (
	"math"

	"github.com/fcp-project/fcp-codec/bitio"
	"github.com/fcp-project/fcp-codec/errs"
)

// DecodeUnsigned reads f.Bits raw bits and applies f's scale/offset,
// returning the physical value as an unsigned 64-bit integer.
func DecodeUnsigned(buf *bitio.Buffer, f Field) (uint64, error) {
	raw, err := buf.GetWord(f.Bits, false, f.Endianness)
	if err != nil {
		return 0, err
	}

	return scaleDecodeUnsigned(raw, f.Scale, f.Offset), nil
}

// EncodeUnsigned applies f's inverse scale/offset to physical and writes
// f.Bits raw bits.
func EncodeUnsigned(buf *bitio.Buffer, f Field, physical uint64) error {
	raw := scaleEncodeUnsigned(physical, f.Scale, f.Offset)

	return buf.PushWord(raw, f.Bits, f.Endianness)
}

// DecodeSigned reads f.Bits raw bits, sign-extends, and applies f's
// scale/offset, returning the physical value as a signed 64-bit integer.
func DecodeSigned(buf *bitio.Buffer, f Field) (int64, error) {
	raw, err := buf.GetWord(f.Bits, true, f.Endianness)
	if err != nil {
		return 0, err
	}

	return scaleDecodeSigned(int64(raw), f.Scale, f.Offset), nil
}

// EncodeSigned applies f's inverse scale/offset to physical and writes the
// low f.Bits bits of its two's-complement representation.
func EncodeSigned(buf *bitio.Buffer, f Field, physical int64) error {
	raw := scaleEncodeSigned(physical, f.Scale, f.Offset)

	return buf.PushWord(uint64(raw), f.Bits, f.Endianness)
}

// DecodeF32 reads exactly 32 raw bits, bit-casts to float32, and applies
// f's scale/offset as doubles. Fails with ErrWidthMismatch if f.Bits != 32.
func DecodeF32(buf *bitio.Buffer, f Field) (float64, error) {
	if f.Bits != 32 {
		return 0, errs.ErrWidthMismatch
	}

	raw, err := buf.GetWord(32, false, f.Endianness)
	if err != nil {
		return 0, err
	}

	value := float64(math.Float32frombits(uint32(raw)))

	return f.Scale*value + f.Offset, nil
}

// EncodeF32 applies f's inverse scale/offset, bit-casts the result to
// float32, and writes 32 bits. Fails with ErrWidthMismatch if f.Bits != 32.
func EncodeF32(buf *bitio.Buffer, f Field, physical float64) error {
	if f.Bits != 32 {
		return errs.ErrWidthMismatch
	}

	raw := (physical - f.Offset) / f.Scale
	if f.Scale == 1 {
		raw = physical - f.Offset
	}

	bits := math.Float32bits(float32(raw))

	return buf.PushWord(uint64(bits), 32, f.Endianness)
}

// DecodeF64 reads exactly 64 raw bits, bit-casts to float64, and applies
// f's scale/offset. Fails with ErrWidthMismatch if f.Bits != 64.
func DecodeF64(buf *bitio.Buffer, f Field) (float64, error) {
	if f.Bits != 64 {
		return 0, errs.ErrWidthMismatch
	}

	raw, err := buf.GetWord(64, false, f.Endianness)
	if err != nil {
		return 0, err
	}

	value := math.Float64frombits(raw)

	return f.Scale*value + f.Offset, nil
}

// EncodeF64 applies f's inverse scale/offset, bit-casts the result to
// float64, and writes 64 bits. Fails with ErrWidthMismatch if f.Bits != 64.
func EncodeF64(buf *bitio.Buffer, f Field, physical float64) error {
	if f.Bits != 64 {
		return errs.ErrWidthMismatch
	}

	raw := (physical - f.Offset) / f.Scale
	if f.Scale == 1 {
		raw = physical - f.Offset
	}

	bits := math.Float64bits(raw)

	return buf.PushWord(bits, 64, f.Endianness)
}

// DecodeBool reads 8 bits; 0 decodes to false, any other value to true.
func DecodeBool(buf *bitio.Buffer, endianness bitio.Endianness) (bool, error) {
	raw, err := buf.GetWord(8, false, endianness)
	if err != nil {
		return false, err
	}

	return raw != 0, nil
}

// EncodeBool writes 0 or 1.
func EncodeBool(buf *bitio.Buffer, endianness bitio.Endianness, value bool) error {
	var raw uint64
	if value {
		raw = 1
	}

	return buf.PushWord(raw, 8, endianness)
}

// DecodeEnumRaw reads the bits raw unsigned integer underlying an
// enumeration. Mapping the integer to a variant name (or failing with
// ErrUnknownEnumTag) is the schema package's responsibility, since only it
// holds the enum's name↔integer table.
func DecodeEnumRaw(buf *bitio.Buffer, bits int, endianness bitio.Endianness) (uint64, error) {
	return buf.GetWord(bits, false, endianness)
}

// EncodeEnumRaw writes the integer value associated with an enum variant.
func EncodeEnumRaw(buf *bitio.Buffer, bits int, endianness bitio.Endianness, value uint64) error {
	return buf.PushWord(value, bits, endianness)
}

// scaleDecodeUnsigned implements physical = scale*raw + offset for the
// unsigned integer path.
//
// When scale == 1 the fast integer path is used: physical = raw + offset,
// avoiding a float round-trip. When scale != 1, the reference implementation
// truncates the raw bitfield to 32 bits before multiplying as a double —
// this is a deliberate preservation of that behavior, not a bug fix.
func scaleDecodeUnsigned(raw uint64, scale, offset float64) uint64 {
	if scale == 1 {
		return uint64(int64(raw) + int64(offset))
	}

	truncated := uint32(raw) //nolint:gosec // intentional 32-bit truncation, see doc comment
	physical := scale*float64(truncated) + offset

	return uint64(int64(physical))
}

// scaleEncodeUnsigned is the inverse of scaleDecodeUnsigned.
func scaleEncodeUnsigned(physical uint64, scale, offset float64) uint64 {
	if scale == 1 {
		return uint64(int64(physical) - int64(offset))
	}

	raw := (float64(physical) - offset) / scale

	return uint64(int64(raw))
}

// scaleDecodeSigned is the signed-integer analogue of scaleDecodeUnsigned.
// The scale != 1 path truncates the sign-extended raw value to 32 bits
// (int32) before multiplying, mirroring the source's int32_t cast.
func scaleDecodeSigned(raw int64, scale, offset float64) int64 {
	if scale == 1 {
		return raw + int64(offset)
	}

	truncated := int32(raw) //nolint:gosec // intentional 32-bit truncation, see scaleDecodeUnsigned
	physical := scale*float64(truncated) + offset

	return int64(physical)
}

// scaleEncodeSigned is the inverse of scaleDecodeSigned.
func scaleEncodeSigned(physical int64, scale, offset float64) int64 {
	if scale == 1 {
		return physical - int64(offset)
	}

	raw := (float64(physical) - offset) / scale

	return int64(raw)
}
