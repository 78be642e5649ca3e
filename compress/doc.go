// Package compress provides compression and decompression codecs for binary
// schema descriptor blobs at rest.
//
// A schema blob is built once (by a build-time generator or an ad hoc
// caller) and loaded rarely relative to the per-message encode/decode hot
// path, so this package optimizes for compression ratio and simplicity of
// integration over raw throughput.
//
// # Overview
//
// The compress package supports multiple general-purpose algorithms,
// applied to the whole blob payload after the binary descriptor encoding:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec, _ := compress.GetCodec(format.CompressionNone)
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when the blob is small enough that compression overhead isn't worth
// it, or when the caller already compresses the blob at a higher layer
// (e.g. an HTTP response body).
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Best for distributing or archiving large schema blobs (many named types,
// many implementation entries) where storage/bandwidth dominates and the
// blob is decompressed once per process lifetime.
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec, _ := compress.GetCodec(format.CompressionS2)
//
// Balanced choice when a blob is reloaded frequently (e.g. hot-reloading a
// schema during development) and decode latency matters more than the best
// possible ratio.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec, _ := compress.GetCodec(format.CompressionLZ4)
//
// Fastest decompression of the three real algorithms; a reasonable default
// when the blob is reloaded on every process start and startup latency
// matters.
//
// # Build Tags
//
// Zstd has two implementations selected at build time: a cgo binding
// (github.com/valyala/gozstd, build tag cgo — used whenever cgo is
// enabled) and a pure-Go implementation (github.com/klauspost/compress/zstd,
// build tag !cgo — used whenever cgo is disabled). Both satisfy the same ZstdCompressor type.
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines; the
// built-in registry returned by GetCodec is constructed once and reused.
//
// # Integration with dynamiccodec
//
// dynamiccodec.EncodeBlob/LoadBinarySchema use this package's GetCodec to
// apply the compression tag recorded in the blob header transparently —
// callers never pick an algorithm at load time, only at build time.
package compress
