package entree

import (
	"mime"
	"strings"
)

// MediaType is a parsed media type such as "application/json; charset=utf-8".
// The zero value represents an absent media type, which negotiates
// permissively: an exchange that declares no media type is assumed to want
// the provider's format.
type MediaType struct {
	Type    string            // Primary type ("application")
	Subtype string            // Subtype ("json", "vnd.api+json")
	Params  map[string]string // Parameters with lowercased names
}

// ParseMediaType parses a Content-Type or Accept header value.
// An empty string yields the zero MediaType without error.
func ParseMediaType(s string) (MediaType, error) {
	if s == "" {
		return MediaType{}, nil
	}
	mt, params, err := mime.ParseMediaType(s)
	if err != nil {
		return MediaType{}, newMediaTypeError(s, err)
	}
	typ, sub, _ := strings.Cut(mt, "/")
	return MediaType{Type: typ, Subtype: sub, Params: params}, nil
}

// IsZero reports whether the media type is absent.
func (m MediaType) IsZero() bool {
	return m.Type == "" && m.Subtype == ""
}

// Suffix returns the structured-syntax suffix of the subtype,
// such as "json" for "application/vnd.api+json". Empty when none.
func (m MediaType) Suffix() string {
	if i := strings.LastIndexByte(m.Subtype, '+'); i >= 0 {
		return m.Subtype[i+1:]
	}
	return ""
}

// Param returns the named parameter value, or "" when absent.
// Parameter names are case-insensitive.
func (m MediaType) Param(name string) string {
	return m.Params[strings.ToLower(name)]
}

// Compatible reports whether the media type negotiates to the given format.
// A media type is compatible when its subtype equals the format, when its
// structured-syntax suffix equals the format, or when the media type is
// absent entirely. Matching is case-insensitive.
func (m MediaType) Compatible(format string) bool {
	if m.IsZero() {
		return true
	}
	if strings.EqualFold(m.Subtype, format) {
		return true
	}
	return strings.EqualFold(m.Suffix(), format)
}

// String formats the media type with its parameters.
func (m MediaType) String() string {
	if m.IsZero() {
		return ""
	}
	return mime.FormatMediaType(m.Type+"/"+m.Subtype, m.Params)
}

// formatToken derives the negotiation format from a media type: the
// structured-syntax suffix when present, the subtype otherwise.
func formatToken(m MediaType) string {
	if s := m.Suffix(); s != "" {
		return strings.ToLower(s)
	}
	return strings.ToLower(m.Subtype)
}
