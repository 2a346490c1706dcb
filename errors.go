package entree

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedCharset indicates a charset parameter named an encoding
	// that is unknown to the IANA registry or has no implementation.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrMediaType indicates a media type string could not be parsed.
	ErrMediaType = errors.New("invalid media type")
)

// Decode and write failures are not wrapped: errors from the mapper and the
// underlying stream propagate to the caller unchanged so transports can
// classify them with their own errors.Is/errors.As checks.

// CharsetError reports an unresolvable charset name.
// It wraps ErrUnsupportedCharset with the name that failed.
type CharsetError struct {
	Err   error  // Underlying sentinel error (ErrUnsupportedCharset)
	Name  string // Charset name that failed to resolve
	Cause error  // Original error from the IANA index, if any
}

func (e *CharsetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v", e.Err.Error(), e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Name)
}

func (e *CharsetError) Unwrap() error {
	return e.Err
}

// MediaTypeError reports an unparseable media type value.
// It wraps ErrMediaType with the value that failed.
type MediaTypeError struct {
	Err   error  // Underlying sentinel error (ErrMediaType)
	Value string // Media type string that failed to parse
	Cause error  // Original error from the mime parser, if any
}

func (e *MediaTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v", e.Err.Error(), e.Value, e.Cause)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
}

func (e *MediaTypeError) Unwrap() error {
	return e.Err
}

// newCharsetError creates a CharsetError for charset resolution failures.
func newCharsetError(name string, cause error) error {
	return &CharsetError{
		Err:   ErrUnsupportedCharset,
		Name:  name,
		Cause: cause,
	}
}

// newMediaTypeError creates a MediaTypeError for media type parse failures.
func newMediaTypeError(value string, cause error) error {
	return &MediaTypeError{
		Err:   ErrMediaType,
		Value: value,
		Cause: cause,
	}
}
