package content

import (
	"errors"
	"fmt"
)

// Header field names used in error reporting.
const (
	FieldContentType        = "Content-type"
	FieldContentDisposition = "Content-disposition"
)

// Error kinds. Every error returned by the parsers in this package is a
// *ParseError whose Kind is one of these. Match them with errors.Is.
var (
	// ErrMissingHeader means the header value was empty.
	ErrMissingHeader = errors.New("missing header")

	// ErrInvalidFormat means the primary value did not match its grammar, a
	// type/subtype media type or an accepted disposition type.
	ErrInvalidFormat = errors.New("invalid header format")

	// ErrMissingParameters means the parameters required by the header were
	// not present at all.
	ErrMissingParameters = errors.New("missing header parameters")

	// ErrInvalidParametersFormat means a parameter failed to parse. The
	// underlying param error is available via errors.Unwrap.
	ErrInvalidParametersFormat = errors.New("invalid header parameters")

	// ErrMissingNameParameter means a Content-disposition header had no name
	// parameter.
	ErrMissingNameParameter = errors.New("missing name parameter")

	// ErrMissingBoundary means a multipart Content-type had no usable boundary
	// parameter.
	ErrMissingBoundary = errors.New("multipart missing boundary")

	// ErrInvalidTypeHeader is matched by every error returned while parsing a
	// Content-type header. It is also the only kind other than
	// ErrMissingBoundary reported in GenericTypeErrors mode.
	ErrInvalidTypeHeader = errors.New("invalid content-type header")
)

var messages = map[string]map[error]string{
	FieldContentType: {
		ErrMissingHeader:           "Missing content-type header",
		ErrInvalidFormat:           "Invalid content-type header format",
		ErrInvalidParametersFormat: "Invalid content-type header format includes invalid parameters",
		ErrMissingBoundary:         "Invalid content-type header: multipart missing boundary",
		ErrInvalidTypeHeader:       "Invalid content-type header",
	},
	FieldContentDisposition: {
		ErrMissingHeader:           "Missing content-disposition header",
		ErrInvalidFormat:           "Invalid content-disposition header format",
		ErrMissingParameters:       "Invalid content-disposition header missing parameters",
		ErrInvalidParametersFormat: "Invalid content-disposition header format includes invalid parameters",
		ErrMissingNameParameter:    "Invalid content-disposition header missing name parameter",
	},
}

// ParseError is returned when a header value cannot be parsed. The message
// returned by Error() is fixed for each Field and Kind pair and is safe to
// match on.
type ParseError struct {
	Field string // FieldContentType or FieldContentDisposition
	Kind  error  // one of the Err* kinds of this package
	Err   error  // the underlying cause, if any
}

func newParseError(field string, kind, cause error) *ParseError {
	return &ParseError{Field: field, Kind: kind, Err: cause}
}

// Error returns the error message.
func (err *ParseError) Error() string {
	if msg, ok := messages[err.Field][err.Kind]; ok {
		return msg
	}
	return fmt.Sprintf("invalid %s header: %v", err.Field, err.Kind)
}

// Is matches the Kind of the error. Content-type errors also match
// ErrInvalidTypeHeader.
func (err *ParseError) Is(target error) bool {
	if target == err.Kind {
		return true
	}
	return err.Field == FieldContentType && target == ErrInvalidTypeHeader
}

// Unwrap returns the underlying cause.
func (err *ParseError) Unwrap() error {
	return err.Err
}
