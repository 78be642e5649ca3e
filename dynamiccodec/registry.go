package dynamiccodec

import (
	"github.com/fcp-project/fcp-codec/bitio"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/schema"
	"github.com/fcp-project/fcp-codec/valuetree"
)

type implKey struct {
	bus string
	id  uint16
}

// Registry is the runtime result of loading a binary schema blob: a
// name→descriptor table plus a (bus,id) implementation table. It is
// immutable after construction and safe to share read-only across
// concurrently-running encode/decode calls.
//
// Registry satisfies frame.Codec, so it is interchangeable with
// staticcodec.Codec behind a Binding.
type Registry struct {
	types *nameIndex[schema.Descriptor]
	impl  *implTable
}

func newRegistry() *Registry {
	return &Registry{
		types: newNameIndex[schema.Descriptor](),
		impl:  newImplTable(nil),
	}
}

// Encode produces the wire bytes for name's descriptor applied to v,
// bit-exact with staticcodec.Codec.Encode for the same descriptor.
func (r *Registry) Encode(name string, v valuetree.Value) ([]byte, error) {
	d, ok := r.types.get(name)
	if !ok {
		return nil, errs.ErrUnknownType
	}

	buf := bitio.New()
	defer buf.Release()

	if err := schema.Encode(buf, d, v); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decode parses data against name's descriptor.
func (r *Registry) Decode(name string, data []byte) (valuetree.Value, error) {
	d, ok := r.types.get(name)
	if !ok {
		return valuetree.Null(), errs.ErrUnknownType
	}

	buf := bitio.NewFromBytes(data)
	defer buf.Release()

	return schema.Decode(buf, d)
}

// NameFor resolves the message type registered for the (bus, id) pair. The
// second return is false on no match, never an error.
func (r *Registry) NameFor(bus string, id uint16) (string, bool) {
	name, ok := r.impl.nameFor[implKey{bus: bus, id: id}]

	return name, ok
}

// IDFor resolves the CAN id registered for name.
func (r *Registry) IDFor(name string) (uint16, bool) {
	id, ok := r.impl.idFor[name]

	return id, ok
}

// BusFor resolves the bus registered for name.
func (r *Registry) BusFor(name string) (string, bool) {
	bus, ok := r.impl.busFor[name]

	return bus, ok
}

// HasType reports whether name has a registered descriptor.
func (r *Registry) HasType(name string) bool {
	_, ok := r.types.get(name)

	return ok
}
