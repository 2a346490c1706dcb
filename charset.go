package entree

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// UTF8 is the default charset. Bodies in UTF-8 pass through untouched.
var UTF8 = Charset{name: "UTF-8"}

// Charset is a resolved character encoding for request and response bodies.
// The zero value behaves as UTF-8. A nil encoding means no transcoding is
// needed.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// Name returns the IANA name the charset was resolved from.
func (c Charset) Name() string {
	if c.name == "" {
		return "UTF-8"
	}
	return c.name
}

// IsUTF8 reports whether the charset transcodes as a no-op.
func (c Charset) IsUTF8() bool {
	return c.enc == nil
}

// NewReader wraps r so its bytes are transcoded from the charset to UTF-8.
// For UTF-8 the reader is returned unchanged.
func (c Charset) NewReader(r io.Reader) io.Reader {
	if c.enc == nil {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// EncodeBytes transcodes UTF-8 bytes to the charset.
// For UTF-8 the input is returned unchanged.
func (c Charset) EncodeBytes(b []byte) ([]byte, error) {
	if c.enc == nil {
		return b, nil
	}
	out, _, err := transform.Bytes(c.enc.NewEncoder(), b)
	return out, err
}

// LookupCharset resolves an IANA charset name. Empty and UTF-8 names resolve
// to UTF8; names the IANA registry does not know, or knows but has no
// implementation for, fail with ErrUnsupportedCharset.
func LookupCharset(name string) (Charset, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return Charset{}, newCharsetError(name, err)
	}
	return Charset{name: name, enc: enc}, nil
}

// ResolveCharset resolves the body charset of a media type from its charset
// parameter. A missing parameter, or an absent media type, resolves to UTF-8.
func ResolveCharset(mt MediaType) (Charset, error) {
	return LookupCharset(mt.Param("charset"))
}
