package entree

import (
	"io"
	"net/http"
	"reflect"
)

var (
	typeBytes           = reflect.TypeOf([]byte(nil))
	typeString          = reflect.TypeOf("")
	typeRunes           = reflect.TypeOf([]rune(nil))
	typeResponse        = reflect.TypeOf((*http.Response)(nil))
	ifaceReader         = reflect.TypeOf((*io.Reader)(nil)).Elem()
	ifaceReadCloser     = reflect.TypeOf((*io.ReadCloser)(nil)).Elem()
	ifaceWriter         = reflect.TypeOf((*io.Writer)(nil)).Elem()
	ifaceWriteCloser    = reflect.TypeOf((*io.WriteCloser)(nil)).Elem()
	ifaceWriterTo       = reflect.TypeOf((*io.WriterTo)(nil)).Elem()
	ifaceResponseWriter = reflect.TypeOf((*http.ResponseWriter)(nil)).Elem()
)

// untouchableTypes are the raw body carriers a transport streams natively.
// They are excluded from negotiation in both directions regardless of media
// type. The set is shared by all providers and never mutated.
var untouchableTypes = map[reflect.Type]bool{
	typeBytes:           true,
	typeString:          true,
	typeRunes:           true,
	ifaceReader:         true,
	ifaceReadCloser:     true,
	ifaceWriter:         true,
	ifaceWriteCloser:    true,
	ifaceWriterTo:       true,
	ifaceResponseWriter: true,
	typeResponse:        true,
}

// unreadableIfaces are the capabilities that mark a type as already able to
// read itself off the wire. Satisfying any of them opts the type out of
// negotiated decoding.
var unreadableIfaces = []reflect.Type{
	ifaceReader,
}

// unwriteableIfaces are the capabilities that mark a type as already able to
// write itself to the wire.
var unwriteableIfaces = []reflect.Type{
	ifaceWriter,
	ifaceWriterTo,
	ifaceResponseWriter,
}

// unwriteableTypes are concrete types excluded from negotiated encoding
// beyond the capability interfaces.
var unwriteableTypes = map[reflect.Type]bool{
	typeResponse: true,
}

// isUntouchable returns true if the transport handles t natively.
func isUntouchable(t reflect.Type) bool {
	return untouchableTypes[t]
}

// isUnreadable returns true if t decodes itself from a stream.
func isUnreadable(t reflect.Type) bool {
	return satisfiesAny(t, unreadableIfaces)
}

// isUnwriteable returns true if t encodes itself to a stream.
func isUnwriteable(t reflect.Type) bool {
	return unwriteableTypes[t] || satisfiesAny(t, unwriteableIfaces)
}

// satisfiesAny returns true if t implements any of the given interfaces.
func satisfiesAny(t reflect.Type, ifaces []reflect.Type) bool {
	for _, iface := range ifaces {
		if t.Implements(iface) {
			return true
		}
	}
	return false
}
