package entree

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Mapper turns typed values into message bodies and back. Implementations
// own the object graph encoding; the provider owns eligibility, charset
// resolution, and stream error handling.
type Mapper interface {
	// ContentType returns the canonical MIME type the mapper produces.
	ContentType() string

	// Decode reads a body in the given charset from r into v.
	Decode(r io.Reader, cs Charset, v any) error

	// Encode writes v to w as a body in the given charset.
	Encode(w io.Writer, cs Charset, v any) error
}

// codecMapper adapts a byte-level Codec to streams with charset transcoding.
type codecMapper struct {
	codec Codec
}

// NewMapper returns a Mapper backed by the given codec. Bodies are buffered
// through a shared pool; non-UTF-8 charsets are transcoded on the way
// through.
func NewMapper(c Codec) Mapper {
	return &codecMapper{codec: c}
}

// ContentType returns the codec's MIME type.
func (m *codecMapper) ContentType() string {
	return m.codec.ContentType()
}

// Decode buffers the body, transcoded to UTF-8 when the charset requires it,
// and unmarshals into v. Unmarshal errors propagate unchanged.
func (m *codecMapper) Decode(r io.Reader, cs Charset, v any) error {
	buf := bytebufferpool.Get()
	defer func() {
		buf.Reset()
		bytebufferpool.Put(buf)
	}()

	if _, err := buf.ReadFrom(cs.NewReader(r)); err != nil {
		return err
	}
	return m.codec.Unmarshal(buf.Bytes(), v)
}

// Encode marshals v, transcodes the bytes to the charset, and writes the
// body with a single Write call. Marshal and write errors propagate
// unchanged.
func (m *codecMapper) Encode(w io.Writer, cs Charset, v any) error {
	data, err := m.codec.Marshal(v)
	if err != nil {
		return err
	}
	data, err = cs.EncodeBytes(data)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
