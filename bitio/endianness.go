package bitio

// Endianness selects how Buffer.GetWord/PushWord byte-swap whole-octet
// widths. It is distinct from endian.EndianEngine: the engine interface is
// used by higher layers (schema blob headers, length prefixes) for plain
// byte-slice encode/binary.ByteOrder-style operations, while Endianness
// governs the bit-buffer's own per-primitive swap rule.
type Endianness uint8

const (
	// Little is the default wire endianness.
	Little Endianness = iota
	// Big byte-swaps 8/16/32/64-bit primitive reads and writes only; all
	// other widths are encoded/decoded little-endian regardless.
	Big
)

// String implements fmt.Stringer.
func (e Endianness) String() string {
	switch e {
	case Little:
		return "Little"
	case Big:
		return "Big"
	default:
		return "Unknown"
	}
}
