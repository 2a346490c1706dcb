package entree

import "reflect"

// Providers is an ordered set of providers consulted in registration order.
// The first provider eligible for a given type and media type wins; callers
// fall back to their own handling when none is.
//
// The set is immutable after construction and safe for concurrent use.
type Providers struct {
	list []*Provider
}

// NewProviders builds a provider set. Order is significant: an exchange that
// declares no media type negotiates to the first provider that accepts the
// type.
func NewProviders(ps ...*Provider) *Providers {
	return &Providers{list: append([]*Provider(nil), ps...)}
}

// ReaderFor returns the first provider that can decode type t from media
// type mt.
func (s *Providers) ReaderFor(t reflect.Type, mt MediaType) (*Provider, bool) {
	for _, p := range s.list {
		if p.Readable(t, mt) {
			return p, true
		}
	}
	return nil, false
}

// WriterFor returns the first provider that can encode type t to media
// type mt.
func (s *Providers) WriterFor(t reflect.Type, mt MediaType) (*Provider, bool) {
	for _, p := range s.list {
		if p.Writeable(t, mt) {
			return p, true
		}
	}
	return nil, false
}

// Len returns the number of providers in the set.
func (s *Providers) Len() int {
	return len(s.list)
}
