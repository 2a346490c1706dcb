// Package yaml provides a YAML codec implementation.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/entree"
)

// yamlCodec implements entree.Codec for YAML.
type yamlCodec struct{}

var _ entree.Codec = (*yamlCodec)(nil)

// New returns a YAML codec backed by yaml.v3.
func New() entree.Codec {
	return &yamlCodec{}
}

// Provider returns a negotiating provider for YAML bodies. It accepts any
// +yaml media type.
func Provider(opts ...entree.ProviderOption) (*entree.Provider, error) {
	return entree.New(entree.NewMapper(New()), opts...)
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
