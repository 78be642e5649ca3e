// Package dynamiccodec implements the runtime schema registry: a registry
// built at runtime by loading a self-describing binary schema blob, then
// walking its descriptor tree the same way staticcodec does for a
// generation-time one. Behavior is bit-exact with staticcodec for the same
// descriptor, since both delegate to schema.Encode/schema.Decode.
//
// The blob's fixed header (magic, version, compression tag, table counts)
// is grounded on section.NumericHeader/NumericFlag; transparent decompression
// is grounded on blob.NumericDecoder's header-then-payload parsing
// sequence.
package dynamiccodec

import (
	"github.com/fcp-project/fcp-codec/endian"
	"github.com/fcp-project/fcp-codec/errs"
	"github.com/fcp-project/fcp-codec/format"
)

// blobMagic identifies a binary schema descriptor blob.
const blobMagic uint16 = 0xFC01

// blobVersion is the only version this loader understands.
const blobVersion uint8 = 1

// HeaderSize is the fixed size in bytes of blobHeader.Bytes().
const HeaderSize = 14

// blobHeader is the fixed-size preamble of a schema blob: a magic number,
// version, compression tag for the section that follows, and counts for
// the blob's name, type and implementation tables. EnumCount is carried in
// the header but EncodeBlob leaves it zero and LoadBinarySchema ignores it:
// enum variants are stored inline in their descriptors, not in a table.
type blobHeader struct {
	Magic           uint16
	Version         uint8
	Compression     format.CompressionType
	NameCount       uint16
	EnumCount       uint16
	TypeCount       uint16
	ImplCount       uint16
}

func newBlobHeader(compression format.CompressionType) blobHeader {
	return blobHeader{Magic: blobMagic, Version: blobVersion, Compression: compression}
}

// parseBlobHeader reads and validates a blobHeader from the first
// HeaderSize bytes of data.
func parseBlobHeader(data []byte) (blobHeader, error) {
	if len(data) < HeaderSize {
		return blobHeader{}, errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h := blobHeader{
		Magic:       engine.Uint16(data[0:2]),
		Version:     data[2],
		Compression: format.CompressionType(data[3]),
		NameCount:   engine.Uint16(data[4:6]),
		EnumCount:   engine.Uint16(data[6:8]),
		TypeCount:   engine.Uint16(data[8:10]),
		ImplCount:   engine.Uint16(data[10:12]),
	}

	if h.Magic != blobMagic {
		return blobHeader{}, errs.ErrInvalidMagicNumber
	}

	if h.Version != blobVersion {
		return blobHeader{}, errs.ErrUnsupportedVersion
	}

	return h, nil
}

// Bytes serializes h into HeaderSize bytes.
func (h blobHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[0:2], h.Magic)
	b[2] = h.Version
	b[3] = byte(h.Compression)
	engine.PutUint16(b[4:6], h.NameCount)
	engine.PutUint16(b[6:8], h.EnumCount)
	engine.PutUint16(b[8:10], h.TypeCount)
	engine.PutUint16(b[10:12], h.ImplCount)
	// bytes 12-13 reserved, left zero.

	return b
}
