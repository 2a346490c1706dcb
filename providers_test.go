package entree

import (
	"testing"
)

func newFormatProvider(t *testing.T, contentType string) *Provider {
	t.Helper()
	p, err := New(NewMapper(&stubCodec{contentType: contentType}))
	if err != nil {
		t.Fatalf("New(%q) error: %v", contentType, err)
	}
	return p
}

func TestProvidersReaderFor(t *testing.T) {
	jsonP := newFormatProvider(t, "application/json")
	msgpackP := newFormatProvider(t, "application/msgpack")
	set := NewProviders(jsonP, msgpackP)

	orderType := TypeOf[order]()

	tests := []struct {
		name      string
		mediaType string
		want      *Provider
		found     bool
	}{
		{"json", "application/json", jsonP, true},
		{"json suffix", "application/hal+json", jsonP, true},
		{"msgpack", "application/msgpack", msgpackP, true},
		{"absent picks first", "", jsonP, true},
		{"html unserved", "text/html", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := set.ReaderFor(orderType, mustParse(t, tt.mediaType))
			if ok != tt.found {
				t.Fatalf("ReaderFor(%q) found = %v, want %v", tt.mediaType, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("ReaderFor(%q) = %v, want %v", tt.mediaType, got, tt.want)
			}
		})
	}
}

func TestProvidersWriterFor(t *testing.T) {
	jsonP := newFormatProvider(t, "application/json")
	yamlP := newFormatProvider(t, "application/yaml")
	set := NewProviders(jsonP, yamlP)

	p, ok := set.WriterFor(TypeOf[order](), mustParse(t, "application/yaml"))
	if !ok || p != yamlP {
		t.Errorf("WriterFor(yaml) = %v, %v, want the yaml provider", p, ok)
	}

	// Untouchable types never negotiate, whatever the media type.
	if _, ok := set.WriterFor(TypeOf[[]byte](), mustParse(t, "application/json")); ok {
		t.Error("WriterFor should not match an untouchable type")
	}
}

func TestProvidersEmpty(t *testing.T) {
	set := NewProviders()
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
	if _, ok := set.ReaderFor(TypeOf[order](), MediaType{}); ok {
		t.Error("empty set should find nothing")
	}
}

func TestProvidersLen(t *testing.T) {
	set := NewProviders(
		newFormatProvider(t, "application/json"),
		newFormatProvider(t, "application/yaml"),
		newFormatProvider(t, "application/msgpack"),
	)
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}
}
