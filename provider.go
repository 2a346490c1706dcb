package entree

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"reflect"
	"strings"
	"syscall"
	"time"
)

// Provider negotiates typed values onto and off of message bodies for one
// body format. Per exchange it decides whether a type is eligible, resolves
// the body charset, and delegates the byte work to its Mapper.
//
// Providers are immutable after construction and safe for concurrent use.
type Provider struct {
	mapper     Mapper
	format     string
	mediaTypes []string
	ignored    map[reflect.Type]bool
}

// New returns a Provider around the given mapper. The negotiation format is
// derived from the mapper's content type: the structured-syntax suffix when
// present, the subtype otherwise. New fails when the content type does not
// parse.
func New(m Mapper, opts ...ProviderOption) (*Provider, error) {
	mt, err := ParseMediaType(m.ContentType())
	if err != nil {
		return nil, err
	}
	if mt.IsZero() {
		return nil, newMediaTypeError(m.ContentType(), nil)
	}

	format := formatToken(mt)
	if format == "" {
		return nil, newMediaTypeError(m.ContentType(), nil)
	}

	cfg := providerConfig{ignored: make(map[reflect.Type]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}

	mediaTypes := cfg.mediaTypes
	if len(mediaTypes) == 0 {
		mediaTypes = defaultMediaTypes(m.ContentType(), format)
	}

	p := &Provider{
		mapper:     m,
		format:     format,
		mediaTypes: mediaTypes,
		ignored:    cfg.ignored,
	}

	emitProviderCreated(context.Background(), m.ContentType(), len(cfg.ignored))
	return p, nil
}

// defaultMediaTypes lists the media types a provider declares itself under
// when the caller does not override them. JSON historically serves both the
// application and text trees.
func defaultMediaTypes(contentType, format string) []string {
	if format == "json" {
		return []string{"application/json", "text/json"}
	}
	return []string{contentType}
}

// Format returns the negotiation format, such as "json".
func (p *Provider) Format() string {
	return p.format
}

// ContentType returns the mapper's canonical MIME type.
func (p *Provider) ContentType() string {
	return p.mapper.ContentType()
}

// MediaTypes returns the media types the provider declares itself under.
func (p *Provider) MediaTypes() []string {
	return append([]string(nil), p.mediaTypes...)
}

// Readable reports whether values of type t can be decoded from a body of
// media type mt. Raw body carriers, types that read themselves, and ignored
// types are never readable; neither is any type under an incompatible media
// type.
func (p *Provider) Readable(t reflect.Type, mt MediaType) bool {
	if t == nil {
		return false
	}
	return mt.Compatible(p.format) &&
		!isUntouchable(t) &&
		!isUnreadable(t) &&
		!p.ignored[t]
}

// Writeable reports whether values of type t can be encoded to a body of
// media type mt. Raw body carriers, types that write themselves, and ignored
// types are never writeable; neither is any type under an incompatible media
// type.
func (p *Provider) Writeable(t reflect.Type, mt MediaType) bool {
	if t == nil {
		return false
	}
	return mt.Compatible(p.format) &&
		!isUntouchable(t) &&
		!isUnwriteable(t) &&
		!p.ignored[t]
}

// Read decodes a body of media type mt from r into a freshly allocated value
// of type t. Pointer types come back as the pointer; everything else comes
// back by value. Decode failures propagate unchanged.
func (p *Provider) Read(ctx context.Context, t reflect.Type, mt MediaType, r io.Reader) (any, error) {
	cs, err := ResolveCharset(mt)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	emitReadStart(ctx, mt.String(), typeName(t), cs.Name())

	elem := t
	wantPtr := t.Kind() == reflect.Pointer
	if wantPtr {
		elem = t.Elem()
	}
	pv := reflect.New(elem)

	err = p.mapper.Decode(r, cs, pv.Interface())
	emitReadComplete(ctx, mt.String(), typeName(t), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if wantPtr {
		return pv.Interface(), nil
	}
	return pv.Elem().Interface(), nil
}

// Write encodes v as a body of media type mt onto w. When header is non-nil
// and carries no Content-Type, the negotiated type is filled in before the
// body is written.
//
// A write cut short because the peer closed its end of the connection is not
// an application failure: the response is unsalvageable either way and the
// transport observes the disconnect itself, so Write reports success and the
// outcome surfaces on SignalWriteComplete. Every other failure propagates
// unchanged.
func (p *Provider) Write(ctx context.Context, v any, t reflect.Type, mt MediaType, header http.Header, w io.Writer) error {
	cs, err := ResolveCharset(mt)
	if err != nil {
		return err
	}

	start := time.Now()
	emitWriteStart(ctx, mt.String(), typeName(t), cs.Name())

	if header != nil && header.Get("Content-Type") == "" {
		ct := mt.String()
		if ct == "" {
			ct = p.mediaTypes[0]
		}
		header.Set("Content-Type", ct)
	}

	err = p.mapper.Encode(w, cs, v)
	outcome := classifyWrite(err)
	emitWriteComplete(ctx, mt.String(), typeName(t), outcome, time.Since(start), err)

	if outcome == writePeerClosed {
		return nil
	}
	return err
}

// Size reports the body length for v, if known. Encoded length is never
// known ahead of time, so the transport always gets -1 and decides the
// transfer encoding itself.
func (p *Provider) Size(v any, t reflect.Type, mt MediaType) int64 {
	return -1
}

// typeName renders t for event payloads.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// writeOutcome classifies how a body write finished.
type writeOutcome int

const (
	writeOK writeOutcome = iota
	writePeerClosed
	writeFailed
)

func (o writeOutcome) String() string {
	switch o {
	case writeOK:
		return "ok"
	case writePeerClosed:
		return "peer_closed"
	default:
		return "failed"
	}
}

// peerClosedKinds are the error kinds a write produces when the peer hangs
// up mid-response.
var peerClosedKinds = []error{
	io.EOF,
	io.ErrUnexpectedEOF,
	io.ErrClosedPipe,
	net.ErrClosed,
	syscall.EPIPE,
	syscall.ECONNRESET,
}

// classifyWrite sorts a write error into ok, peer closed, or failed. Kind
// checks cover errors that keep their chain intact; the message check
// catches wrapped platform errors that lose it.
func classifyWrite(err error) writeOutcome {
	if err == nil {
		return writeOK
	}
	for _, kind := range peerClosedKinds {
		if errors.Is(err, kind) {
			return writePeerClosed
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "broken pipe") {
		return writePeerClosed
	}
	return writeFailed
}
