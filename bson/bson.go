// Package bson provides a BSON codec implementation.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/entree"
)

// bsonCodec implements entree.Codec for BSON.
type bsonCodec struct{}

var _ entree.Codec = (*bsonCodec)(nil)

// New returns a BSON codec backed by the MongoDB driver.
func New() entree.Codec {
	return &bsonCodec{}
}

// Provider returns a negotiating provider for BSON bodies.
func Provider(opts ...entree.ProviderOption) (*entree.Provider, error) {
	return entree.New(entree.NewMapper(New()), opts...)
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
