package dynamiccodec

import "github.com/fcp-project/fcp-codec/valuetree"

// DecodeJSON decodes a wire frame payload for the named runtime type into a
// value tree, suitable for marshaling to JSON. A thin alias over
// Registry.Decode for callers that think in terms of the JSON-facing
// surface rather than the raw codec.
func (r *Registry) DecodeJSON(name string, data []byte) (valuetree.Value, error) {
	return r.Decode(name, data)
}

// EncodeJSON encodes a value tree (typically unmarshaled from JSON) into a
// wire frame payload for the named runtime type.
func (r *Registry) EncodeJSON(name string, v valuetree.Value) ([]byte, error) {
	return r.Encode(name, v)
}
