package param

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-content/internal/scanner"
)

// Errors returned by Parse. These are always wrapped in a SyntaxError.
var (
	// ErrMalformedQuotedString is returned when a quoted parameter value is
	// not terminated.
	ErrMalformedQuotedString = scanner.ErrMalformedQuotedString

	// ErrMissingParameters is returned when a parameter name is not followed
	// by an equal sign and value.
	ErrMissingParameters = errors.New("parameter is missing its value")

	// ErrMalformedParameter is returned when a parameter segment is empty,
	// has no name, has an empty value, or is followed by unexpected text.
	ErrMalformedParameter = errors.New("malformed parameter")

	// ErrInvalidExtendedParameter is returned when the value of an extended
	// parameter (a parameter whose name ends in "*") is not a valid RFC 8187
	// ext-value.
	ErrInvalidExtendedParameter = errors.New("invalid extended parameter value")
)

// SyntaxError reports where in the header value parameter parsing failed.
type SyntaxError struct {
	Offset int   // byte offset into the header value
	Err    error // one of the Err* sentinels of this package
}

// Error returns the error message.
func (err *SyntaxError) Error() string {
	return fmt.Sprintf("parameter syntax error at offset %d: %v", err.Offset, err.Err)
}

// Unwrap returns the underlying sentinel error.
func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// RawParameter is a single name=value pair as it appeared in the header. The
// Name is lowercase with any trailing "*" removed. Extended is set when the
// name had the "*", in which case Value holds the decoded ext-value.
type RawParameter struct {
	Name     string
	Value    string
	Extended bool
}

type parser struct {
	decode CharsetDecoder
}

var defaultParser = &parser{
	decode: DefaultCharsetDecoder,
}

// ParseOption refers to options that may be passed to the Parse function to
// modify how the parser works.
type ParseOption func(pr *parser)

// WithCharsetDecoder is a ParseOption that replaces the decoder used to turn
// the percent-decoded bytes of an extended parameter into a string. The
// default is DefaultCharsetDecoder, which treats every ext-value as UTF-8.
func WithCharsetDecoder(dec CharsetDecoder) ParseOption {
	return func(pr *parser) { pr.decode = dec }
}

// Parse splits a header value into the primary value (the text before the
// first semicolon, with surrounding whitespace removed) and the parameters
// that follow it, in order of appearance.
//
// Parsing stops at the first error, which will be a *SyntaxError. No partial
// result is returned.
func Parse(v string, opts ...ParseOption) (string, []RawParameter, error) {
	pr := defaultParser
	if len(opts) > 0 {
		c := *defaultParser
		pr = &c
		for _, opt := range opts {
			opt(pr)
		}
	}

	return pr.parse(v)
}

func (pr *parser) parse(v string) (string, []RawParameter, error) {
	sc := scanner.New(v)
	sc.SkipSpace()
	primary := strings.TrimRight(sc.Until(';'), " \t")

	var ps []RawParameter
	for {
		sc.SkipSpace()
		if sc.AtEnd() {
			return primary, ps, nil
		}

		if !sc.Accept(';') {
			return "", nil, &SyntaxError{sc.Pos(), ErrMalformedParameter}
		}

		p, err := pr.parseParameter(sc)
		if err != nil {
			return "", nil, err
		}

		ps = append(ps, p)
	}
}

// parseParameter reads a single name=value pair. The leading semicolon has
// already been consumed.
func (pr *parser) parseParameter(sc *scanner.Scanner) (RawParameter, error) {
	sc.SkipSpace()
	start := sc.Pos()
	name := sc.Token()
	if name == "" {
		return RawParameter{}, &SyntaxError{start, ErrMalformedParameter}
	}

	sc.SkipSpace()
	if !sc.Accept('=') {
		return RawParameter{}, &SyntaxError{sc.Pos(), ErrMissingParameters}
	}
	sc.SkipSpace()

	var (
		value  string
		err    error
		offset = sc.Pos()
	)
	if sc.Peek() == '"' {
		value, err = sc.QuotedString()
		if err != nil {
			return RawParameter{}, &SyntaxError{offset, err}
		}
	} else {
		value = sc.Token()
		if value == "" && !strings.HasSuffix(name, "*") {
			return RawParameter{}, &SyntaxError{offset, ErrMalformedParameter}
		}
	}

	p := RawParameter{
		Name:  strings.ToLower(name),
		Value: value,
	}

	if strings.HasSuffix(p.Name, "*") {
		p.Name = p.Name[:len(p.Name)-1]
		p.Extended = true
		p.Value, err = decodeExtValue(value, pr.decode)
		if err != nil {
			return RawParameter{}, &SyntaxError{offset, err}
		}
	}

	if p.Name == "" {
		return RawParameter{}, &SyntaxError{start, ErrMalformedParameter}
	}

	return p, nil
}
