// Package entree negotiates typed values onto and off of HTTP message
// bodies.
//
// The package offers a Provider that decides, per exchange, whether a Go
// type should be encoded or decoded for a given media type, and a Mapper
// interface that owns the actual byte work. The provider contributes the
// glue a transport needs around a serializer: eligibility filtering, charset
// resolution, and write-error classification.
//
// # Negotiation
//
// A provider serves one body format, derived from its mapper's content type
// ("json" for application/json). A media type negotiates to the format when
// its subtype matches, when its structured-syntax suffix matches
// (application/hal+json), or when the exchange declares no media type at
// all.
//
// Three groups of types are never negotiated:
//
//   - raw body carriers the transport streams natively: []byte, string,
//     []rune, the io stream interfaces, http.ResponseWriter, *http.Response
//   - types that read themselves: anything implementing io.Reader
//   - types that write themselves: anything implementing io.Writer,
//     io.WriterTo, or http.ResponseWriter
//
// Callers exclude further types at construction:
//
//	p, err := entree.New(mapper, entree.WithIgnored(RawPage{}))
//
// # Charsets
//
// The charset parameter of the media type is honored in both directions.
// Bodies default to UTF-8; a charset the IANA registry does not know fails
// with ErrUnsupportedCharset. Decoding transcodes the wire charset to UTF-8
// before the mapper sees the bytes, and encoding transcodes the mapper's
// output before it reaches the wire.
//
// # Peer Disconnects
//
// A write that fails because the peer hung up mid-response is not an
// application error: the response is unsalvageable either way. Write
// swallows those failures and reports the peer_closed outcome on
// SignalWriteComplete instead. All other errors, on both paths, propagate
// to the caller unchanged.
//
// # Basic Usage
//
//	provider, err := entree.New(entree.NewMapper(json.New()))
//	if err != nil {
//	    return err
//	}
//
//	t := entree.TypeOf[Order]()
//	mt, _ := entree.ParseMediaType(r.Header.Get("Content-Type"))
//
//	if provider.Readable(t, mt) {
//	    v, err := provider.Read(r.Context(), t, mt, r.Body)
//	    ...
//	}
//
//	if provider.Writeable(t, mt) {
//	    err := provider.Write(r.Context(), order, t, mt, w.Header(), w)
//	    ...
//	}
//
// # Fallback
//
// Providers for several formats compose into an ordered set; the first
// eligible provider serves the exchange:
//
//	set := entree.NewProviders(jsonProvider, yamlProvider, msgpackProvider)
//	p, ok := set.ReaderFor(t, mt)
//
// # Body Formats
//
// Codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Each subpackage also exposes a Provider constructor wiring its codec
// through NewMapper.
package entree

import "reflect"

// TypeOf returns the reflect.Type of T. It is a convenience for eligibility
// checks and reads:
//
//	provider.Readable(entree.TypeOf[*Order](), mt)
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
