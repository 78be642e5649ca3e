// Package schema implements the recursive composition of primitive fields
// into structs, fixed/dynamic arrays, strings, optionals, and enums over a
// valuetree.Value.
//
// The descriptor shape — an ordered, named composition of sub-descriptors —
// is grounded on blob.NumericBlob/TextBlob's field-ordering convention; the
// Encode/Decode interface pairing one type parameter's read and write
// sides is grounded on encoding.ColumnarEncoder/ColumnarDecoder.
package schema

import "github.com/fcp-project/fcp-codec/primitive"

// DescriptorKind tags which shape a Descriptor describes.
type DescriptorKind uint8

const (
	KindPrimitive DescriptorKind = iota
	KindEnumType
	KindStruct
	KindFixedArray
	KindDynamicArray
	KindString
	KindOptional
)

// String implements fmt.Stringer.
func (k DescriptorKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEnumType:
		return "Enum"
	case KindStruct:
		return "Struct"
	case KindFixedArray:
		return "FixedArray"
	case KindDynamicArray:
		return "DynamicArray"
	case KindString:
		return "String"
	case KindOptional:
		return "Optional"
	default:
		return "Unknown"
	}
}

// EnumVariant pairs a wire integer with the name it resolves to in the
// value tree.
type EnumVariant struct {
	Name  string
	Value uint64
}

// StructField is one named, ordered member of a Struct descriptor.
type StructField struct {
	Name       string
	Descriptor Descriptor
}

// Descriptor is a recursive description of one field's wire shape. Exactly
// one of the kind-specific members is meaningful, selected by Kind.
type Descriptor struct {
	Kind DescriptorKind

	// Primitive is populated when Kind == KindPrimitive.
	Primitive primitive.Field

	// EnumField is the underlying wire field (Kind == KindEnumType); Variants
	// maps its raw integer values to value-tree names.
	EnumField primitive.Field
	Variants  []EnumVariant

	// Fields is populated when Kind == KindStruct, in wire order.
	Fields []StructField

	// Element is the repeated element shape for FixedArray/DynamicArray.
	Element *Descriptor

	// FixedLen is the element count for KindFixedArray.
	FixedLen int

	// MaxLen caps DynamicArray/String length on both encode and decode, as a
	// guard against malformed length prefixes; 0 means no cap.
	MaxLen int
}

// Primitive builds a Descriptor wrapping a primitive.Field.
func Primitive(f primitive.Field) Descriptor {
	return Descriptor{Kind: KindPrimitive, Primitive: f}
}

// Enum builds a Descriptor for an enumeration over the given underlying
// field and variant table.
func Enum(underlying primitive.Field, variants []EnumVariant) Descriptor {
	return Descriptor{Kind: KindEnumType, EnumField: underlying, Variants: variants}
}

// Struct builds a Descriptor for an ordered composition of named fields.
func Struct(fields ...StructField) Descriptor {
	return Descriptor{Kind: KindStruct, Fields: fields}
}

// FixedArray builds a Descriptor for exactly n repetitions of elem, with no
// length prefix on the wire.
func FixedArray(elem Descriptor, n int) Descriptor {
	return Descriptor{Kind: KindFixedArray, Element: &elem, FixedLen: n}
}

// DynamicArray builds a Descriptor for a 32-bit little-endian length-prefixed
// repetition of elem, capped at maxLen elements (0 means no cap). The prefix width is fixed
// regardless of the element's own endianness; it is not a per-descriptor
// parameter.
func DynamicArray(elem Descriptor, maxLen int) Descriptor {
	return Descriptor{
		Kind:    KindDynamicArray,
		Element: &elem,
		MaxLen:  maxLen,
	}
}

// String builds a Descriptor for a 32-bit little-endian length-prefixed
// UTF-8 byte string, capped at maxLen bytes (0 means no cap).
func String(maxLen int) Descriptor {
	return Descriptor{Kind: KindString, MaxLen: maxLen}
}

// Optional builds a Descriptor wrapping elem behind an 8-bit presence tag
// (0 absent, 1 present), with payload present only if set.
func Optional(elem Descriptor) Descriptor {
	return Descriptor{Kind: KindOptional, Element: &elem}
}
