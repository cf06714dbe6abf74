package content

import (
	"strings"

	"github.com/zostay/go-content/param"
)

// TypeErrorMode selects how Content-type failures are reported.
type TypeErrorMode int

const (
	// DetailedTypeErrors reports each Content-type failure with its own kind
	// and message, just like Content-disposition failures. This is the
	// default.
	DetailedTypeErrors TypeErrorMode = iota

	// GenericTypeErrors reports every Content-type failure as
	// ErrInvalidTypeHeader with the message "Invalid content-type header",
	// except for a multipart type missing its boundary, which is still
	// reported as ErrMissingBoundary.
	GenericTypeErrors
)

// FormData is the disposition type used for multipart/form-data parts and the
// only disposition type accepted by default.
const FormData = "form-data"

// Parser parses Content-type and Content-disposition header values. A Parser
// is immutable once created and may be used from many goroutines at once.
type Parser struct {
	typeErrors       TypeErrorMode
	dispositionTypes map[string]struct{}
	paramOpts        []param.ParseOption
}

var defaultParser = New()

// Option modifies the Parser built by New.
type Option func(p *Parser)

// WithTypeErrors is an Option that sets the TypeErrorMode. The default is
// DetailedTypeErrors.
func WithTypeErrors(mode TypeErrorMode) Option {
	return func(p *Parser) { p.typeErrors = mode }
}

// WithDispositionTypes is an Option that sets the disposition types accepted
// by Disposition. The comparison is case-insensitive. The default accepts only
// FormData.
func WithDispositionTypes(types ...string) Option {
	return func(p *Parser) {
		p.dispositionTypes = make(map[string]struct{}, len(types))
		for _, t := range types {
			p.dispositionTypes[strings.ToLower(t)] = struct{}{}
		}
	}
}

// WithParamOptions is an Option that passes the given options through to
// param.Parse, such as param.WithCharsetDecoder.
func WithParamOptions(opts ...param.ParseOption) Option {
	return func(p *Parser) {
		p.paramOpts = append(p.paramOpts, opts...)
	}
}

// New returns a Parser configured with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		typeErrors:       DetailedTypeErrors,
		dispositionTypes: map[string]struct{}{FormData: {}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseType parses a Content-type header value with the default Parser.
func ParseType(header string) (*ContentType, error) {
	return defaultParser.Type(header)
}

// ParseDisposition parses a Content-disposition header value with the default
// Parser.
func ParseDisposition(header string) (*ContentDisposition, error) {
	return defaultParser.Disposition(header)
}
