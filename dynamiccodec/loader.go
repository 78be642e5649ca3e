package dynamiccodec

import (
	"math"

	"github.com/fcp-project/fcp-codec/bitio"
	"github.com/fcp-project/fcp-codec/compress"
	"github.com/fcp-project/fcp-codec/endian"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/format"
	"github.com/fcp-project/fcp-codec/internal/pool"
	"github.com/fcp-project/fcp-codec/primitive"
	"github.com/fcp-project/fcp-codec/schema"
)

// maxDescriptorDepth bounds recursion while walking a schema blob's
// descriptor tree, guarding LoadBinarySchema against a crafted blob whose
// nested FixedArray/DynamicArray/Optional wrappers would otherwise recurse
// the decoder past the goroutine stack limit.
const maxDescriptorDepth = 64

// ImplEntry is one row fed to EncodeBlob's implementation table (spec
// §6.2): a type name bound to the (bus, id) pair it is addressed by.
type ImplEntry struct {
	TypeName string
	Bus      string
	ID       uint16
}

// LoadBinarySchema parses a schema blob produced by EncodeBlob (or an
// equivalent external generator following the same binary schema
// descriptor format) into a Registry. Failure to parse is fatal to the
// would-be instance: LoadBinarySchema returns errs.ErrSchemaLoadFailed
// wrapping the underlying cause.
func LoadBinarySchema(data []byte) (*Registry, error) {
	header, err := parseBlobHeader(data)
	if err != nil {
		return nil, wrapLoadErr(err)
	}

	payload := data[HeaderSize:]
	if header.Compression != format.CompressionNone {
		codec, err := compress.GetCodec(header.Compression)
		if err != nil {
			return nil, wrapLoadErr(err)
		}

		payload, err = codec.Decompress(payload)
		if err != nil {
			return nil, wrapLoadErr(err)
		}
	}

	names, n, err := decodeNameTable(payload)
	if err != nil {
		return nil, wrapLoadErr(err)
	}
	payload = payload[n:]

	reg := newRegistry()

	typeEntries, payload, err := decodeTypeTable(payload, names, int(header.TypeCount))
	if err != nil {
		return nil, wrapLoadErr(err)
	}

	for _, te := range typeEntries {
		reg.types.put(te.name, te.descriptor)
	}

	implEntries, _, err := decodeImplTable(payload, names, int(header.ImplCount))
	if err != nil {
		return nil, wrapLoadErr(err)
	}

	entries := make([]implEntry, len(implEntries))
	for i, ie := range implEntries {
		entries[i] = implEntry{name: ie.TypeName, bus: ie.Bus, id: ie.ID}
	}
	reg.impl = newImplTable(entries)

	return reg, nil
}

func wrapLoadErr(cause error) error {
	return &loadError{cause: cause}
}

// loadError wraps the specific parse failure while still satisfying
// errors.Is(err, errs.ErrSchemaLoadFailed) for callers that only care that
// construction failed.
type loadError struct {
	cause error
}

func (e *loadError) Error() string { return "fcp: schema load failed: " + e.cause.Error() }
func (e *loadError) Unwrap() []error {
	return []error{errs.ErrSchemaLoadFailed, e.cause}
}

// EncodeBlob serializes types and impls into a binary schema blob
// consumable by LoadBinarySchema. All names encountered (type names,
// struct field names, enum variant names, implementation type names) are
// interned into one shared name table.
func EncodeBlob(types map[string]schema.Descriptor, impls []ImplEntry, compression format.CompressionType) ([]byte, error) {
	interner := newInterner()

	for name := range types {
		interner.intern(name)
	}
	for _, im := range impls {
		interner.intern(im.TypeName)
	}

	typeNames := make([]string, 0, len(types))
	for name := range types {
		typeNames = append(typeNames, name)
		internDescriptorNames(interner, types[name])
	}

	nameTable, err := encodeNameTable(interner.names)
	if err != nil {
		return nil, err
	}

	typeTable, err := encodeTypeTable(typeNames, types, interner)
	if err != nil {
		return nil, err
	}

	implTableBytes, err := encodeImplTable(impls, interner)
	if err != nil {
		return nil, err
	}

	header := newBlobHeader(compression)
	header.NameCount = uint16(len(interner.names)) //nolint:gosec
	header.TypeCount = uint16(len(typeNames))      //nolint:gosec
	header.ImplCount = uint16(len(impls))          //nolint:gosec

	assembled := pool.GetSchemaBuffer()
	defer pool.PutSchemaBuffer(assembled)

	assembled.MustWrite(nameTable)
	assembled.MustWrite(typeTable)
	assembled.MustWrite(implTableBytes)
	payload := assembled.Bytes()

	if compression != format.CompressionNone {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return nil, err
		}

		payload, err = codec.Compress(payload)
		if err != nil {
			return nil, err
		}
	}

	return append(header.Bytes(), payload...), nil
}

// interner assigns a stable index to every name it sees, in first-seen
// order, for use as the blob's shared name table.
type interner struct {
	names []string
	index map[string]int
}

func newInterner() *interner {
	return &interner{index: make(map[string]int)}
}

func (in *interner) intern(name string) int {
	if idx, ok := in.index[name]; ok {
		return idx
	}

	idx := len(in.names)
	in.names = append(in.names, name)
	in.index[name] = idx

	return idx
}

func internDescriptorNames(in *interner, d schema.Descriptor) {
	switch d.Kind {
	case schema.KindEnumType:
		for _, v := range d.Variants {
			in.intern(v.Name)
		}
	case schema.KindStruct:
		for _, f := range d.Fields {
			in.intern(f.Name)
			internDescriptorNames(in, f.Descriptor)
		}
	case schema.KindFixedArray, schema.KindDynamicArray, schema.KindOptional:
		internDescriptorNames(in, *d.Element)
	}
}

type typeTableEntry struct {
	name       string
	descriptor schema.Descriptor
}

func encodeTypeTable(order []string, types map[string]schema.Descriptor, in *interner) ([]byte, error) {
	var out []byte

	engine := endian.GetLittleEndianEngine()

	for _, name := range order {
		nameIdx := make([]byte, 2)
		engine.PutUint16(nameIdx, uint16(in.intern(name))) //nolint:gosec
		out = append(out, nameIdx...)

		encoded, err := encodeDescriptor(types[name], in)
		if err != nil {
			return nil, err
		}

		out = append(out, encoded...)
	}

	return out, nil
}

func decodeTypeTable(data []byte, names []string, count int) ([]typeTableEntry, []byte, error) {
	engine := endian.GetLittleEndianEngine()
	entries := make([]typeTableEntry, 0, count)

	offset := 0
	for range count {
		if len(data) < offset+2 {
			return nil, nil, errs.ErrTruncated
		}

		nameIdx := int(engine.Uint16(data[offset:]))
		offset += 2

		if nameIdx < 0 || nameIdx >= len(names) {
			return nil, nil, errs.ErrNameIndexOutOfRange
		}

		d, consumed, err := decodeDescriptor(data[offset:], names, 0)
		if err != nil {
			return nil, nil, err
		}
		offset += consumed

		entries = append(entries, typeTableEntry{name: names[nameIdx], descriptor: d})
	}

	return entries, data[offset:], nil
}

func encodeImplTable(impls []ImplEntry, in *interner) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	var out []byte

	for _, im := range impls {
		row := make([]byte, 8)
		engine.PutUint16(row[0:2], uint16(in.intern(im.TypeName))) //nolint:gosec
		copy(row[2:6], padBusBytes(im.Bus))
		engine.PutUint16(row[6:8], im.ID)
		out = append(out, row...)
	}

	return out, nil
}

func decodeImplTable(data []byte, names []string, count int) ([]ImplEntry, []byte, error) {
	engine := endian.GetLittleEndianEngine()
	entries := make([]ImplEntry, 0, count)

	offset := 0
	for range count {
		if len(data) < offset+8 {
			return nil, nil, errs.ErrTruncated
		}

		nameIdx := int(engine.Uint16(data[offset:]))
		bus := string(data[offset+2 : offset+6])
		id := engine.Uint16(data[offset+6 : offset+8])
		offset += 8

		if nameIdx < 0 || nameIdx >= len(names) {
			return nil, nil, errs.ErrNameIndexOutOfRange
		}

		entries = append(entries, ImplEntry{TypeName: names[nameIdx], Bus: bus, ID: id})
	}

	return entries, data[offset:], nil
}

func padBusBytes(bus string) []byte {
	b := make([]byte, 4)
	copy(b, bus)

	return b
}

// encodeDescriptor/decodeDescriptor serialize a recursive Descriptor tree
// into the blob's binary shape; see DescriptorKind's doc for the tag byte
// values.
func encodeDescriptor(d schema.Descriptor, in *interner) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	switch d.Kind {
	case schema.KindPrimitive:
		out := make([]byte, 1+1+2+1+8+8)
		out[0] = byte(d.Kind)
		out[1] = byte(d.Primitive.Kind)
		engine.PutUint16(out[2:4], uint16(d.Primitive.Bits)) //nolint:gosec
		out[4] = byte(d.Primitive.Endianness)
		engine.PutUint64(out[5:13], math.Float64bits(d.Primitive.Scale))
		engine.PutUint64(out[13:21], math.Float64bits(d.Primitive.Offset))

		return out, nil

	case schema.KindEnumType:
		head := make([]byte, 1+2+1+2)
		head[0] = byte(d.Kind)
		engine.PutUint16(head[1:3], uint16(d.EnumField.Bits)) //nolint:gosec
		head[3] = byte(d.EnumField.Endianness)
		engine.PutUint16(head[4:6], uint16(len(d.Variants))) //nolint:gosec

		out := head
		for _, v := range d.Variants {
			row := make([]byte, 2+8)
			engine.PutUint16(row[0:2], uint16(in.intern(v.Name))) //nolint:gosec
			engine.PutUint64(row[2:10], v.Value)
			out = append(out, row...)
		}

		return out, nil

	case schema.KindStruct:
		head := make([]byte, 1+2)
		head[0] = byte(d.Kind)
		engine.PutUint16(head[1:3], uint16(len(d.Fields))) //nolint:gosec

		out := head
		for _, f := range d.Fields {
			row := make([]byte, 2)
			engine.PutUint16(row, uint16(in.intern(f.Name))) //nolint:gosec
			out = append(out, row...)

			sub, err := encodeDescriptor(f.Descriptor, in)
			if err != nil {
				return nil, err
			}

			out = append(out, sub...)
		}

		return out, nil

	case schema.KindFixedArray:
		head := make([]byte, 1+4)
		head[0] = byte(d.Kind)
		engine.PutUint32(head[1:5], uint32(d.FixedLen)) //nolint:gosec

		sub, err := encodeDescriptor(*d.Element, in)
		if err != nil {
			return nil, err
		}

		return append(head, sub...), nil

	case schema.KindDynamicArray:
		head := make([]byte, 1+4)
		head[0] = byte(d.Kind)
		engine.PutUint32(head[1:5], uint32(d.MaxLen)) //nolint:gosec

		sub, err := encodeDescriptor(*d.Element, in)
		if err != nil {
			return nil, err
		}

		return append(head, sub...), nil

	case schema.KindString:
		out := make([]byte, 1+4)
		out[0] = byte(d.Kind)
		engine.PutUint32(out[1:5], uint32(d.MaxLen)) //nolint:gosec

		return out, nil

	case schema.KindOptional:
		head := []byte{byte(d.Kind)}

		sub, err := encodeDescriptor(*d.Element, in)
		if err != nil {
			return nil, err
		}

		return append(head, sub...), nil

	default:
		return nil, errs.ErrUnknownType
	}
}

func decodeDescriptor(data []byte, names []string, depth int) (schema.Descriptor, int, error) {
	if depth > maxDescriptorDepth {
		return schema.Descriptor{}, 0, errs.ErrRecursionLimit
	}

	if len(data) < 1 {
		return schema.Descriptor{}, 0, errs.ErrTruncated
	}

	engine := endian.GetLittleEndianEngine()
	kind := schema.DescriptorKind(data[0])

	switch kind {
	case schema.KindPrimitive:
		if len(data) < 21 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		f := primitive.Field{
			Kind:       primitive.Kind(data[1]),
			Bits:       int(engine.Uint16(data[2:4])),
			Endianness: bitio.Endianness(data[4]),
			Scale:      math.Float64frombits(engine.Uint64(data[5:13])),
			Offset:     math.Float64frombits(engine.Uint64(data[13:21])),
		}

		return schema.Primitive(f), 21, nil

	case schema.KindEnumType:
		if len(data) < 6 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		bits := int(engine.Uint16(data[1:3]))
		endianness := bitio.Endianness(data[3])
		count := int(engine.Uint16(data[4:6]))
		offset := 6

		variants := make([]schema.EnumVariant, count)
		for i := range variants {
			if len(data) < offset+10 {
				return schema.Descriptor{}, 0, errs.ErrTruncated
			}

			nameIdx := int(engine.Uint16(data[offset : offset+2]))
			if nameIdx < 0 || nameIdx >= len(names) {
				return schema.Descriptor{}, 0, errs.ErrNameIndexOutOfRange
			}

			value := engine.Uint64(data[offset+2 : offset+10])
			variants[i] = schema.EnumVariant{Name: names[nameIdx], Value: value}
			offset += 10
		}

		underlying := primitive.Enum(bits).WithEndianness(endianness)

		return schema.Enum(underlying, variants), offset, nil

	case schema.KindStruct:
		if len(data) < 3 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		count := int(engine.Uint16(data[1:3]))
		offset := 3

		fields := make([]schema.StructField, count)
		for i := range fields {
			if len(data) < offset+2 {
				return schema.Descriptor{}, 0, errs.ErrTruncated
			}

			nameIdx := int(engine.Uint16(data[offset : offset+2]))
			if nameIdx < 0 || nameIdx >= len(names) {
				return schema.Descriptor{}, 0, errs.ErrNameIndexOutOfRange
			}
			offset += 2

			sub, consumed, err := decodeDescriptor(data[offset:], names, depth+1)
			if err != nil {
				return schema.Descriptor{}, 0, err
			}
			offset += consumed

			fields[i] = schema.StructField{Name: names[nameIdx], Descriptor: sub}
		}

		return schema.Struct(fields...), offset, nil

	case schema.KindFixedArray:
		if len(data) < 5 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		fixedLen := int(engine.Uint32(data[1:5]))

		elem, consumed, err := decodeDescriptor(data[5:], names, depth+1)
		if err != nil {
			return schema.Descriptor{}, 0, err
		}

		return schema.FixedArray(elem, fixedLen), 5 + consumed, nil

	case schema.KindDynamicArray:
		if len(data) < 5 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		maxLen := int(engine.Uint32(data[1:5]))

		elem, consumed, err := decodeDescriptor(data[5:], names, depth+1)
		if err != nil {
			return schema.Descriptor{}, 0, err
		}

		return schema.DynamicArray(elem, maxLen), 5 + consumed, nil

	case schema.KindString:
		if len(data) < 5 {
			return schema.Descriptor{}, 0, errs.ErrTruncated
		}

		maxLen := int(engine.Uint32(data[1:5]))

		return schema.String(maxLen), 5, nil

	case schema.KindOptional:
		elem, consumed, err := decodeDescriptor(data[1:], names, depth+1)
		if err != nil {
			return schema.Descriptor{}, 0, err
		}

		return schema.Optional(elem), 1 + consumed, nil

	default:
		return schema.Descriptor{}, 0, errs.ErrUnknownType
	}
}
