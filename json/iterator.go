package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/zoobzio/entree"
)

// iterCodec implements entree.Codec with json-iterator.
type iterCodec struct {
	api jsoniter.API
}

var _ entree.Codec = (*iterCodec)(nil)

// Iterator returns a JSON codec backed by json-iterator in its
// stdlib-compatible configuration. Output matches New byte for byte.
func Iterator() entree.Codec {
	return &iterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// ContentType returns the MIME type for JSON.
func (c *iterCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *iterCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *iterCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
