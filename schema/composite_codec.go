package schema

import (
	"github.com/fcp-project/fcp-codec/bitio"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/primitive"
	"github.com/fcp-project/fcp-codec/valuetree"
)

// maxRecursionDepth bounds nested Struct/Array/Optional descent, guarding
// against cyclic or pathologically deep schemas.
const maxRecursionDepth = 64

// lengthPrefixBits is the fixed width of the DynamicArray/String count
// prefix, regardless of any endianness or width configured on the container
// or its element.
const lengthPrefixBits = 32

// optionalTagBits is the fixed width of the Optional presence tag.
const optionalTagBits = 8

// Decode walks d against buf, producing the value tree it describes.
func Decode(buf *bitio.Buffer, d Descriptor) (valuetree.Value, error) {
	return decode(buf, d, 0)
}

// Encode walks d, writing v's shape to buf. v must conform to d's shape
// (e.g. a KindStruct descriptor requires a Map value); mismatches return
// errs.ErrTypeMismatch.
func Encode(buf *bitio.Buffer, d Descriptor, v valuetree.Value) error {
	return encode(buf, d, v, 0)
}

func decode(buf *bitio.Buffer, d Descriptor, depth int) (valuetree.Value, error) {
	if depth > maxRecursionDepth {
		return valuetree.Null(), errs.ErrRecursionLimit
	}

	switch d.Kind {
	case KindPrimitive:
		return decodePrimitive(buf, d.Primitive)
	case KindEnumType:
		return decodeEnum(buf, d)
	case KindStruct:
		return decodeStruct(buf, d, depth)
	case KindFixedArray:
		return decodeFixedArray(buf, d, depth)
	case KindDynamicArray:
		return decodeDynamicArray(buf, d, depth)
	case KindString:
		return decodeString(buf, d)
	case KindOptional:
		return decodeOptional(buf, d, depth)
	default:
		return valuetree.Null(), errs.ErrUnknownType
	}
}

func encode(buf *bitio.Buffer, d Descriptor, v valuetree.Value, depth int) error {
	if depth > maxRecursionDepth {
		return errs.ErrRecursionLimit
	}

	switch d.Kind {
	case KindPrimitive:
		return encodePrimitive(buf, d.Primitive, v)
	case KindEnumType:
		return encodeEnum(buf, d, v)
	case KindStruct:
		return encodeStruct(buf, d, v, depth)
	case KindFixedArray:
		return encodeFixedArray(buf, d, v, depth)
	case KindDynamicArray:
		return encodeDynamicArray(buf, d, v, depth)
	case KindString:
		return encodeString(buf, d, v)
	case KindOptional:
		return encodeOptional(buf, d, v, depth)
	default:
		return errs.ErrUnknownType
	}
}

func decodePrimitive(buf *bitio.Buffer, f primitive.Field) (valuetree.Value, error) {
	switch f.Kind {
	case primitive.KindUnsigned:
		raw, err := primitive.DecodeUnsigned(buf, f)
		if err != nil {
			return valuetree.Null(), err
		}

		return valuetree.Uint64(raw), nil
	case primitive.KindSigned:
		raw, err := primitive.DecodeSigned(buf, f)
		if err != nil {
			return valuetree.Null(), err
		}

		return valuetree.Int64(raw), nil
	case primitive.KindF32:
		raw, err := primitive.DecodeF32(buf, f)
		if err != nil {
			return valuetree.Null(), err
		}

		return valuetree.Float64(raw), nil
	case primitive.KindF64:
		raw, err := primitive.DecodeF64(buf, f)
		if err != nil {
			return valuetree.Null(), err
		}

		return valuetree.Float64(raw), nil
	case primitive.KindBool:
		raw, err := primitive.DecodeBool(buf, f.Endianness)
		if err != nil {
			return valuetree.Null(), err
		}

		return valuetree.Bool(raw), nil
	default:
		return valuetree.Null(), errs.ErrUnknownType
	}
}

func encodePrimitive(buf *bitio.Buffer, f primitive.Field, v valuetree.Value) error {
	switch f.Kind {
	case primitive.KindUnsigned:
		raw, err := asUint64(v)
		if err != nil {
			return err
		}

		return primitive.EncodeUnsigned(buf, f, raw)
	case primitive.KindSigned:
		raw, err := asInt64(v)
		if err != nil {
			return err
		}

		return primitive.EncodeSigned(buf, f, raw)
	case primitive.KindF32:
		raw, err := asFloat64(v)
		if err != nil {
			return err
		}

		return primitive.EncodeF32(buf, f, raw)
	case primitive.KindF64:
		raw, err := asFloat64(v)
		if err != nil {
			return err
		}

		return primitive.EncodeF64(buf, f, raw)
	case primitive.KindBool:
		if v.Kind() != valuetree.KindBool {
			return errs.ErrTypeMismatch
		}

		return primitive.EncodeBool(buf, f.Endianness, v.AsBool())
	default:
		return errs.ErrUnknownType
	}
}

func decodeEnum(buf *bitio.Buffer, d Descriptor) (valuetree.Value, error) {
	raw, err := primitive.DecodeEnumRaw(buf, d.EnumField.Bits, d.EnumField.Endianness)
	if err != nil {
		return valuetree.Null(), err
	}

	for _, variant := range d.Variants {
		if variant.Value == raw {
			return valuetree.String(variant.Name), nil
		}
	}

	return valuetree.Null(), errs.ErrUnknownEnumTag
}

func encodeEnum(buf *bitio.Buffer, d Descriptor, v valuetree.Value) error {
	if v.Kind() != valuetree.KindString {
		return errs.ErrTypeMismatch
	}

	name := v.AsString()
	for _, variant := range d.Variants {
		if variant.Name == name {
			return primitive.EncodeEnumRaw(buf, d.EnumField.Bits, d.EnumField.Endianness, variant.Value)
		}
	}

	return errs.ErrUnknownEnumName
}

func decodeStruct(buf *bitio.Buffer, d Descriptor, depth int) (valuetree.Value, error) {
	fields := make(map[string]valuetree.Value, len(d.Fields))

	for _, sf := range d.Fields {
		val, err := decode(buf, sf.Descriptor, depth+1)
		if err != nil {
			return valuetree.Null(), err
		}

		fields[sf.Name] = val
	}

	return valuetree.Map(fields), nil
}

func encodeStruct(buf *bitio.Buffer, d Descriptor, v valuetree.Value, depth int) error {
	if v.Kind() != valuetree.KindMap {
		return errs.ErrTypeMismatch
	}

	for _, sf := range d.Fields {
		fieldVal, ok := v.Field(sf.Name)
		if !ok {
			return errs.ErrMissingField
		}

		if err := encode(buf, sf.Descriptor, fieldVal, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func decodeFixedArray(buf *bitio.Buffer, d Descriptor, depth int) (valuetree.Value, error) {
	items := make([]valuetree.Value, d.FixedLen)

	for i := range d.FixedLen {
		val, err := decode(buf, *d.Element, depth+1)
		if err != nil {
			return valuetree.Null(), err
		}

		items[i] = val
	}

	return valuetree.Seq(items), nil
}

func encodeFixedArray(buf *bitio.Buffer, d Descriptor, v valuetree.Value, depth int) error {
	if v.Kind() != valuetree.KindSeq {
		return errs.ErrTypeMismatch
	}

	items := v.AsSeq()
	if len(items) != d.FixedLen {
		return errs.ErrWidthMismatch
	}

	for _, item := range items {
		if err := encode(buf, *d.Element, item, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func decodeDynamicArray(buf *bitio.Buffer, d Descriptor, depth int) (valuetree.Value, error) {
	count, err := buf.GetWord(lengthPrefixBits, false, bitio.Little)
	if err != nil {
		return valuetree.Null(), err
	}

	if d.MaxLen > 0 && int(count) > d.MaxLen {
		return valuetree.Null(), errs.ErrOversizedFrame
	}

	items := make([]valuetree.Value, count)
	for i := range items {
		val, err := decode(buf, *d.Element, depth+1)
		if err != nil {
			return valuetree.Null(), err
		}

		items[i] = val
	}

	return valuetree.Seq(items), nil
}

func encodeDynamicArray(buf *bitio.Buffer, d Descriptor, v valuetree.Value, depth int) error {
	if v.Kind() != valuetree.KindSeq {
		return errs.ErrTypeMismatch
	}

	items := v.AsSeq()
	if d.MaxLen > 0 && len(items) > d.MaxLen {
		return errs.ErrOversizedFrame
	}

	if err := buf.PushWord(uint64(len(items)), lengthPrefixBits, bitio.Little); err != nil {
		return err
	}

	for _, item := range items {
		if err := encode(buf, *d.Element, item, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func decodeString(buf *bitio.Buffer, d Descriptor) (valuetree.Value, error) {
	count, err := buf.GetWord(lengthPrefixBits, false, bitio.Little)
	if err != nil {
		return valuetree.Null(), err
	}

	if d.MaxLen > 0 && int(count) > d.MaxLen {
		return valuetree.Null(), errs.ErrOversizedFrame
	}

	raw := make([]byte, count)
	for i := range raw {
		b, err := buf.GetWord(8, false, bitio.Little)
		if err != nil {
			return valuetree.Null(), err
		}

		raw[i] = byte(b)
	}

	return valuetree.String(string(raw)), nil
}

func encodeString(buf *bitio.Buffer, d Descriptor, v valuetree.Value) error {
	if v.Kind() != valuetree.KindString {
		return errs.ErrTypeMismatch
	}

	s := v.AsString()
	if d.MaxLen > 0 && len(s) > d.MaxLen {
		return errs.ErrOversizedFrame
	}

	if err := buf.PushWord(uint64(len(s)), lengthPrefixBits, bitio.Little); err != nil {
		return err
	}

	for i := range len(s) {
		if err := buf.PushWord(uint64(s[i]), 8, bitio.Little); err != nil {
			return err
		}
	}

	return nil
}

func decodeOptional(buf *bitio.Buffer, d Descriptor, depth int) (valuetree.Value, error) {
	present, err := buf.GetWord(optionalTagBits, false, bitio.Little)
	if err != nil {
		return valuetree.Null(), err
	}

	if present == 0 {
		return valuetree.Null(), nil
	}

	return decode(buf, *d.Element, depth+1)
}

func encodeOptional(buf *bitio.Buffer, d Descriptor, v valuetree.Value, depth int) error {
	if v.IsNull() {
		return buf.PushWord(0, optionalTagBits, bitio.Little)
	}

	if err := buf.PushWord(1, optionalTagBits, bitio.Little); err != nil {
		return err
	}

	return encode(buf, *d.Element, v, depth+1)
}

func asUint64(v valuetree.Value) (uint64, error) {
	switch v.Kind() {
	case valuetree.KindUint64:
		return v.AsUint64(), nil
	case valuetree.KindInt64:
		return uint64(v.AsInt64()), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}

func asInt64(v valuetree.Value) (int64, error) {
	switch v.Kind() {
	case valuetree.KindInt64:
		return v.AsInt64(), nil
	case valuetree.KindUint64:
		return int64(v.AsUint64()), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}

func asFloat64(v valuetree.Value) (float64, error) {
	switch v.Kind() {
	case valuetree.KindFloat64:
		return v.AsFloat64(), nil
	case valuetree.KindInt64:
		return float64(v.AsInt64()), nil
	case valuetree.KindUint64:
		return float64(v.AsUint64()), nil
	default:
		return 0, errs.ErrTypeMismatch
	}
}
