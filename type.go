package content

import (
	"strings"

	"github.com/zostay/go-content/internal/scanner"
	"github.com/zostay/go-content/param"
)

// ContentType is a parsed Content-type header value. It is read-only.
type ContentType struct {
	mediaType   string
	typeSplit   int
	charset     string
	hasCharset  bool
	boundary    string
	hasBoundary bool
}

// MediaType returns the lowercase type/subtype, e.g., "text/html".
func (ct *ContentType) MediaType() string { return ct.mediaType }

// Type returns the part of the media type before the slash.
func (ct *ContentType) Type() string { return ct.mediaType[:ct.typeSplit] }

// Subtype returns the part of the media type after the slash.
func (ct *ContentType) Subtype() string { return ct.mediaType[ct.typeSplit+1:] }

// Charset returns the lowercase value of the charset parameter and whether it
// was present.
func (ct *ContentType) Charset() (string, bool) {
	return ct.charset, ct.hasCharset
}

// Boundary returns the boundary parameter, exactly as given, and whether it is
// set. It is only ever set for multipart media types.
func (ct *ContentType) Boundary() (string, bool) {
	return ct.boundary, ct.hasBoundary
}

// IsMultipart returns true if the top-level type is multipart.
func (ct *ContentType) IsMultipart() bool {
	return ct.Type() == "multipart"
}

// Value returns the content type as a param.Value holding the media type and
// the charset and boundary parameters, if set.
func (ct *ContentType) Value() *param.Value {
	var mods []param.Modifier
	if ct.hasCharset {
		mods = append(mods, param.Set(param.Charset, ct.charset))
	}
	if ct.hasBoundary {
		mods = append(mods, param.Set(param.Boundary, ct.boundary))
	}
	return param.Modify(param.New(ct.mediaType), mods...)
}

// String formats the content type as a header value.
func (ct *ContentType) String() string {
	return ct.Value().String()
}

// Type parses a Content-type header value. The media type and charset are
// lowercased. The boundary parameter is only kept for multipart types and is
// required for them.
func (p *Parser) Type(header string) (*ContentType, error) {
	if isBlank(header) {
		return nil, p.typeError(ErrMissingHeader, nil)
	}

	primary, _ := primaryValue(header)
	split := strings.IndexByte(primary, '/')
	if split < 0 || !scanner.IsTokenString(primary[:split]) || !scanner.IsTokenString(primary[split+1:]) {
		return nil, p.typeError(ErrInvalidFormat, nil)
	}

	_, ps, err := param.Parse(header, p.paramOpts...)
	if err != nil {
		return nil, p.typeError(ErrInvalidParametersFormat, err)
	}

	t, err := param.NewTable(ps)
	if err != nil {
		return nil, p.typeError(ErrInvalidParametersFormat, err)
	}

	ct := &ContentType{
		mediaType: strings.ToLower(primary),
		typeSplit: split,
	}

	if cs, ok := t.Get(param.Charset); ok {
		ct.charset, ct.hasCharset = strings.ToLower(cs), true
	}

	if ct.IsMultipart() {
		b, ok := t.Get(param.Boundary)
		if !ok || b == "" {
			return nil, p.typeError(ErrMissingBoundary, nil)
		}
		ct.boundary, ct.hasBoundary = b, true
	}

	return ct, nil
}

func (p *Parser) typeError(kind, cause error) *ParseError {
	if p.typeErrors == GenericTypeErrors && kind != ErrMissingBoundary {
		kind = ErrInvalidTypeHeader
	}
	return newParseError(FieldContentType, kind, cause)
}

// primaryValue returns the text before the first semicolon with surrounding
// whitespace removed and the text after the semicolon.
func primaryValue(header string) (primary, rest string) {
	sc := scanner.New(header)
	sc.SkipSpace()
	primary = strings.TrimRight(sc.Until(';'), " \t")
	sc.Accept(';')
	return primary, header[sc.Pos():]
}

func isBlank(s string) bool {
	return strings.Trim(s, " \t") == ""
}
