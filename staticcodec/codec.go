// Package staticcodec implements the generated-code face of the codec,
// where every named type's descriptor is registered ahead of time (by a
// code generator in production use; directly by the caller here) and
// encode/decode dispatch by name.
//
// The construct-then-encode/decode lifecycle is grounded on
// blob.NumericEncoder/NumericDecoder's pairing; the package-level factory
// functions are grounded on the top-level convenience-wrapper pattern used
// throughout this codebase.
package staticcodec

import (
	"github.com/fcp-project/fcp-codec/bitio"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/internal/options"
	"github.com/fcp-project/fcp-codec/schema"
	"github.com/fcp-project/fcp-codec/valuetree"
)

type implKey struct {
	bus string
	id  uint16
}

// defaultTableCapacity sizes the registration maps for the common case of a
// handful of message types per generated bus definition. Callers that know
// the real count ahead of time should pass WithTypeCapacity/WithImplCapacity
// to avoid the growth-triggered rehashing that init-time registration would
// otherwise pay for.
const defaultTableCapacity = 8

// Config holds the construction-time sizing hints applied by New's options.
type Config struct {
	typeCapacity int
	implCapacity int
}

// WithTypeCapacity pre-sizes the name→descriptor table for n registrations.
func WithTypeCapacity(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.typeCapacity = n })
}

// WithImplCapacity pre-sizes the (bus,id) implementation tables for n
// registrations.
func WithImplCapacity(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.implCapacity = n })
}

// Codec holds the named-type and (bus,id) implementation tables baked into
// generated code. The zero value is not usable; construct with New.
type Codec struct {
	types map[string]schema.Descriptor

	idFor   map[string]uint16
	busFor  map[string]string
	nameFor map[implKey]string
}

// New creates an empty Codec ready for RegisterType/RegisterImplementation
// calls. Generated code that knows its type and implementation counts ahead
// of time can pass WithTypeCapacity/WithImplCapacity to pre-size the
// registration tables.
func New(opts ...options.Option[*Config]) *Codec {
	cfg := &Config{typeCapacity: defaultTableCapacity, implCapacity: defaultTableCapacity}
	_ = options.Apply(cfg, opts...)

	return &Codec{
		types:   make(map[string]schema.Descriptor, cfg.typeCapacity),
		idFor:   make(map[string]uint16, cfg.implCapacity),
		busFor:  make(map[string]string, cfg.implCapacity),
		nameFor: make(map[implKey]string, cfg.implCapacity),
	}
}

// RegisterType binds name to d. Registering the same name twice overwrites
// the previous descriptor; generated code is expected to call this once per
// type at init time.
func (c *Codec) RegisterType(name string, d schema.Descriptor) {
	c.types[name] = d
}

// RegisterImplementation binds name to the (bus, id) pair used to address
// it on the CAN transport. Used by frame.Binding's lookup functions.
func (c *Codec) RegisterImplementation(name string, bus string, id uint16) {
	c.idFor[name] = id
	c.busFor[name] = bus
	c.nameFor[implKey{bus: bus, id: id}] = name
}

// Encode produces the wire bytes for name's descriptor applied to v.
// Returns errs.ErrUnknownType if name was never registered.
func (c *Codec) Encode(name string, v valuetree.Value) ([]byte, error) {
	d, ok := c.types[name]
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

// Decode parses data against name's descriptor, producing the value tree it
// describes. Returns errs.ErrUnknownType if name was never registered.
func (c *Codec) Decode(name string, data []byte) (valuetree.Value, error) {
	d, ok := c.types[name]
	if !ok {
		return valuetree.Null(), errs.ErrUnknownType
	}

	buf := bitio.NewFromBytes(data)
	defer buf.Release()

	return schema.Decode(buf, d)
}

// NameFor resolves the message type name registered for the (bus, id)
// pair. The second return is false on no match, never an error.
func (c *Codec) NameFor(bus string, id uint16) (string, bool) {
	name, ok := c.nameFor[implKey{bus: bus, id: id}]

	return name, ok
}

// IDFor resolves the CAN id registered for name.
func (c *Codec) IDFor(name string) (uint16, bool) {
	id, ok := c.idFor[name]

	return id, ok
}

// BusFor resolves the bus registered for name.
func (c *Codec) BusFor(name string) (string, bool) {
	bus, ok := c.busFor[name]

	return bus, ok
}
