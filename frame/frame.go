// Package frame implements the adapter between the codec and a constrained
// field-bus transport frame. Frame mirrors the {bus, id, dlc, data[8]}
// record of a reference CAN frame_t; Binding wraps a name-addressable codec
// (StaticSchemaCodec or a dynamic schema registry) to encode/decode
// against it.
//
// Grounded on the reference frame_t's equality and Can wrapper, and on the
// heterogeneous top-level factory shape used for the dual-backend Binding
// below.
package frame

import "strings"

// maxDataLen is the maximum payload size of a frame.
const maxDataLen = 8

// busLen is the fixed width of a Frame's bus identifier.
const busLen = 4

// Frame is one field-bus message: a bus identifier, a numeric id (an 11-bit
// CAN identifier held in a 16-bit value), a declared data length, and up to
// 8 payload bytes. NewFrame stores the id as given; it does not check or
// clear the high 5 bits.
type Frame struct {
	Bus  string
	ID   uint16
	DLC  uint8
	Data [maxDataLen]byte
}

// NewFrame builds a Frame, zero-padding bus to 4 characters and
// zero-filling data beyond dlc bytes.
func NewFrame(bus string, id uint16, data []byte) Frame {
	f := Frame{Bus: padBus(bus), ID: id, DLC: uint8(len(data))}
	copy(f.Data[:], data)

	return f
}

// Equal reports whether f and other describe the same frame.
func (f Frame) Equal(other Frame) bool {
	return f.Bus == other.Bus && f.ID == other.ID && f.DLC == other.DLC && f.Data == other.Data
}

// Payload returns the frame's declared data bytes, f.Data[:f.DLC].
func (f Frame) Payload() []byte {
	return f.Data[:f.DLC]
}

func padBus(bus string) string {
	if len(bus) >= busLen {
		return bus[:busLen]
	}

	return bus + strings.Repeat("\x00", busLen-len(bus))
}
