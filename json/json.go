// Package json provides a JSON codec implementation.
package json

import (
	"encoding/json"

	"github.com/zoobzio/entree"
)

// jsonCodec implements entree.Codec for JSON.
type jsonCodec struct{}

var _ entree.Codec = (*jsonCodec)(nil)

// New returns a JSON codec backed by encoding/json.
func New() entree.Codec {
	return &jsonCodec{}
}

// Provider returns a negotiating provider for JSON bodies. It declares
// itself under application/json and text/json and accepts any +json media
// type.
func Provider(opts ...entree.ProviderOption) (*entree.Provider, error) {
	return entree.New(entree.NewMapper(New()), opts...)
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
