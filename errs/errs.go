// Package errs defines the sentinel error values returned by the fcp codec
// packages.
//
// Every failure mode in the codec is represented by one of these package-level
// errors so callers can compare with errors.Is instead of parsing messages.
// Functions that fail for a reason not covered by the operation they perform
// wrap one of these sentinels with fmt.Errorf("...: %w", err) to attach
// positional context (field name, byte offset, type name) without inventing a
// new error type.
package errs

import "errors"

var (
	// ErrTruncated indicates the input bytes are fewer than the descriptor
	// requires to complete a read.
	ErrTruncated = errors.New("fcp: truncated input")

	// ErrWidthMismatch indicates a primitive was asked to read or write a bit
	// width it cannot represent (e.g. F32 with bitlength != 32). The schema
	// package also returns it when a FixedArray value's element count differs
	// from the descriptor's FixedLen.
	ErrWidthMismatch = errors.New("fcp: primitive width mismatch")

	// ErrTypeMismatch indicates a value tree's shape is incompatible with the
	// descriptor being encoded against.
	ErrTypeMismatch = errors.New("fcp: value tree type mismatch")

	// ErrUnknownType indicates a requested type name is not present in the
	// schema registry.
	ErrUnknownType = errors.New("fcp: unknown type name")

	// ErrUnknownEnumName indicates an enum encode was given a variant name
	// absent from the enumeration's mapping.
	ErrUnknownEnumName = errors.New("fcp: unknown enum variant name")

	// ErrUnknownEnumTag indicates an enum decode read an integer value with
	// no corresponding variant name. The buffer cursor is left valid.
	ErrUnknownEnumTag = errors.New("fcp: unknown enum variant tag")

	// ErrMissingField indicates a struct encode value is missing a field
	// required by the struct descriptor.
	ErrMissingField = errors.New("fcp: missing required field")

	// ErrOversizedFrame indicates an encoded payload exceeds the 8-byte frame
	// data capacity. The schema package also returns it when a DynamicArray or
	// String length exceeds the descriptor's MaxLen.
	ErrOversizedFrame = errors.New("fcp: payload exceeds frame capacity")

	// ErrSchemaLoadFailed indicates a binary schema descriptor blob is
	// malformed and could not be parsed into a registry.
	ErrSchemaLoadFailed = errors.New("fcp: schema blob load failed")

	// ErrInvalidMagicNumber indicates a schema blob header does not start
	// with the expected magic number.
	ErrInvalidMagicNumber = errors.New("fcp: invalid schema blob magic number")

	// ErrInvalidHeaderSize indicates a schema blob is shorter than the
	// expected fixed header size.
	ErrInvalidHeaderSize = errors.New("fcp: invalid schema blob header size")

	// ErrUnsupportedVersion indicates a schema blob was produced by an
	// incompatible format version.
	ErrUnsupportedVersion = errors.New("fcp: unsupported schema blob version")

	// ErrUnsupportedCompression indicates a schema blob header names a
	// compression tag this build does not support.
	ErrUnsupportedCompression = errors.New("fcp: unsupported schema blob compression")

	// ErrHashCollision indicates a 64-bit name hash was tracked twice
	// without a name to tell the two apart (collision.Tracker.TrackID).
	ErrHashCollision = errors.New("fcp: name hash collision")

	// ErrDuplicateName indicates a name was registered twice in the same
	// registry.
	ErrDuplicateName = errors.New("fcp: duplicate registered name")

	// ErrDuplicateImplementation indicates a (protocol, id, bus) tuple was
	// registered against more than one type name.
	ErrDuplicateImplementation = errors.New("fcp: duplicate frame implementation entry")

	// ErrNoMatch indicates a frame's (bus, id) pair has no registered type.
	// FrameBinding.Decode treats this as an absent result, never an error.
	ErrNoMatch = errors.New("fcp: no matching frame implementation")

	// ErrRecursionLimit indicates a descriptor graph nests deeper than the
	// loader's configured recursion cap.
	ErrRecursionLimit = errors.New("fcp: schema recursion limit exceeded")

	// ErrInvalidBitWidth indicates a primitive descriptor names a bit width
	// outside [1, 64].
	ErrInvalidBitWidth = errors.New("fcp: invalid primitive bit width")

	// ErrEncoderFinished indicates use of an encoder after its buffer was
	// released. No package in this module currently returns it.
	ErrEncoderFinished = errors.New("fcp: encoder already finished")

	// ErrNameTableOverflow indicates a schema blob's name table would exceed
	// 65535 entries, the limit imposed by its uint16 count prefix.
	ErrNameTableOverflow = errors.New("fcp: name table exceeds maximum entry count")

	// ErrNameTooLong indicates a single interned name exceeds 65535 bytes,
	// the limit imposed by its uint16 length prefix.
	ErrNameTooLong = errors.New("fcp: interned name exceeds maximum length")

	// ErrNameIndexOutOfRange indicates a schema blob references a name table
	// index beyond the table's bounds.
	ErrNameIndexOutOfRange = errors.New("fcp: name table index out of range")

	// ErrEmptyName indicates a registry operation was given an empty type
	// or field name, which cannot be interned or hashed meaningfully.
	ErrEmptyName = errors.New("fcp: name must not be empty")
)
