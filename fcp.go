// Package fcp provides a constrained field-bus message codec: typed
// primitive encoding, recursive composite (struct/array/string/optional)
// description, and a name-addressable registry that can be built either at
// compile time (StaticSchemaCodec) or by loading a binary schema blob at
// runtime (DynamicSchemaCodec). Both registries bind to CAN frames through
// a single FrameBinding.
//
// # Basic Usage
//
// Building a static registry and binding it to frames:
//
//	import "github.com/fcp-project/fcp-codec"
//
//	codec := fcp.NewStaticCodec()
//	codec.RegisterType("EngineTemp", engineTempDescriptor)
//	codec.RegisterImplementation("EngineTemp", "can0", 0x100)
//
//	binding := fcp.NewBinding(codec)
//	f, err := binding.EncodeFrame("EngineTemp", value)
//
// Loading a registry from a binary schema blob produced elsewhere:
//
//	registry, err := fcp.LoadDynamicSchema(blobData)
//	binding := fcp.NewBinding(registry)
//
// # Package Structure
//
// This file provides convenient top-level wrappers around the staticcodec,
// dynamiccodec, and frame packages. For advanced usage — direct descriptor
// construction, custom compression selection when building a blob — use
// those packages directly.
package fcp

import (
	"github.com/fcp-project/fcp-codec/dynamiccodec"
	"github.com/fcp-project/fcp-codec/format"
	"github.com/fcp-project/fcp-codec/frame"
	"github.com/fcp-project/fcp-codec/internal/options"
	"github.com/fcp-project/fcp-codec/schema"
	"github.com/fcp-project/fcp-codec/staticcodec"
)

// NewStaticCodec creates an empty generated-code-style registry. Callers
// populate it with RegisterType/RegisterImplementation, typically from
// generated init code. Pass staticcodec.WithTypeCapacity/WithImplCapacity to
// pre-size the registration tables when the type count is known ahead of
// time.
func NewStaticCodec(opts ...options.Option[*staticcodec.Config]) *staticcodec.Codec {
	return staticcodec.New(opts...)
}

// LoadDynamicSchema parses a binary schema descriptor blob into a runtime
// registry. The blob is produced by EncodeSchemaBlob or an equivalent
// external generator following the same format.
func LoadDynamicSchema(data []byte) (*dynamiccodec.Registry, error) {
	return dynamiccodec.LoadBinarySchema(data)
}

// EncodeSchemaBlob serializes a set of named descriptors and their (bus,
// id) implementation bindings into the binary schema blob format consumed
// by LoadDynamicSchema, optionally compressing the result.
func EncodeSchemaBlob(types map[string]schema.Descriptor, impls []dynamiccodec.ImplEntry, compression format.CompressionType) ([]byte, error) {
	return dynamiccodec.EncodeBlob(types, impls, compression)
}

// NewBinding adapts a name-addressable codec (either a *staticcodec.Codec
// or a *dynamiccodec.Registry) to the CAN frame transport.
func NewBinding(codec frame.Codec) *frame.Binding {
	return frame.NewBinding(codec)
}
