// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/entree"
)

// xmlCodec implements entree.Codec for XML.
type xmlCodec struct{}

var _ entree.Codec = (*xmlCodec)(nil)

// New returns an XML codec backed by encoding/xml.
func New() entree.Codec {
	return &xmlCodec{}
}

// Provider returns a negotiating provider for XML bodies. It accepts any
// +xml media type.
func Provider(opts ...entree.ProviderOption) (*entree.Provider, error) {
	return entree.New(entree.NewMapper(New()), opts...)
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
