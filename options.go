package entree

import "reflect"

// ProviderOption configures a Provider at construction. The resulting
// provider is immutable; there is no way to change its configuration once
// New returns.
type ProviderOption func(*providerConfig)

// providerConfig collects construction-time settings.
type providerConfig struct {
	ignored    map[reflect.Type]bool
	mediaTypes []string
}

// WithIgnored excludes the exact types of the given prototype values from
// negotiation in both directions. A pointer prototype excludes the pointer
// type, not its element.
func WithIgnored(prototypes ...any) ProviderOption {
	return func(cfg *providerConfig) {
		for _, proto := range prototypes {
			if t := reflect.TypeOf(proto); t != nil {
				cfg.ignored[t] = true
			}
		}
	}
}

// WithIgnoredTypes excludes the given types from negotiation in both
// directions.
func WithIgnoredTypes(types ...reflect.Type) ProviderOption {
	return func(cfg *providerConfig) {
		for _, t := range types {
			if t != nil {
				cfg.ignored[t] = true
			}
		}
	}
}

// WithMediaTypes overrides the media types the provider declares itself
// under. It does not change the negotiation rule, only what MediaTypes
// reports to registration code.
func WithMediaTypes(mediaTypes ...string) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.mediaTypes = append([]string(nil), mediaTypes...)
	}
}
