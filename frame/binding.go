package frame

import (
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/valuetree"
)

// Codec is the name-addressable encode/decode surface a Binding adapts to
// frames. Both staticcodec.Codec and dynamiccodec.Registry satisfy it, so
// callers can swap implementations and observe identical results.
type Codec interface {
	Encode(name string, v valuetree.Value) ([]byte, error)
	Decode(name string, data []byte) (valuetree.Value, error)
	NameFor(bus string, id uint16) (string, bool)
	IDFor(name string) (uint16, bool)
	BusFor(name string) (string, bool)
}

// Binding adapts a Codec to the CAN frame transport.
type Binding struct {
	codec Codec
}

// NewBinding wraps codec for frame-level encode/decode.
func NewBinding(codec Codec) *Binding {
	return &Binding{codec: codec}
}

// EncodeFrame looks up name's (bus, id) in the underlying codec, encodes v,
// and packs the result into a Frame. Returns errs.ErrUnknownType if name is
// not registered, or errs.ErrOversizedFrame if the encoded payload exceeds
// 8 bytes.
func (b *Binding) EncodeFrame(name string, v valuetree.Value) (Frame, error) {
	id, ok := b.codec.IDFor(name)
	if !ok {
		return Frame{}, errs.ErrUnknownType
	}

	bus, ok := b.codec.BusFor(name)
	if !ok {
		return Frame{}, errs.ErrUnknownType
	}

	payload, err := b.codec.Encode(name, v)
	if err != nil {
		return Frame{}, err
	}

	if len(payload) > maxDataLen {
		return Frame{}, errs.ErrOversizedFrame
	}

	return NewFrame(bus, id, payload), nil
}

// DecodeFrame looks up f's (bus, id) pair to resolve the message name, then
// decodes f's payload against it. An unknown (bus, id) pair is not an
// error: ok is false and err is nil.
func (b *Binding) DecodeFrame(f Frame) (name string, v valuetree.Value, ok bool, err error) {
	name, found := b.codec.NameFor(f.Bus, f.ID)
	if !found {
		return "", valuetree.Null(), false, nil
	}

	v, err = b.codec.Decode(name, f.Payload())
	if err != nil {
		return "", valuetree.Null(), false, err
	}

	return name, v, true, nil
}
