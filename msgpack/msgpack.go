// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/entree"
)

// msgpackCodec implements entree.Codec for MessagePack.
type msgpackCodec struct{}

var _ entree.Codec = (*msgpackCodec)(nil)

// New returns a MessagePack codec.
func New() entree.Codec {
	return &msgpackCodec{}
}

// Provider returns a negotiating provider for MessagePack bodies. It accepts
// any +msgpack media type.
func Provider(opts ...entree.ProviderOption) (*entree.Provider, error) {
	return entree.New(entree.NewMapper(New()), opts...)
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
