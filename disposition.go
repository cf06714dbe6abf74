package content

import (
	"strings"

	"github.com/zostay/go-content/internal/scanner"
	"github.com/zostay/go-content/param"
)

// ContentDisposition is a parsed Content-disposition header value. It is
// read-only.
type ContentDisposition struct {
	dispositionType string
	name            string
	filename        string
	hasFilename     bool
}

// Type returns the lowercase disposition type, e.g., "form-data".
func (cd *ContentDisposition) Type() string { return cd.dispositionType }

// Name returns the value of the name parameter.
func (cd *ContentDisposition) Name() string { return cd.name }

// Filename returns the file name and whether one was given. A filename*
// parameter takes precedence over filename. An empty filename is returned as
// present.
func (cd *ContentDisposition) Filename() (string, bool) {
	return cd.filename, cd.hasFilename
}

// Value returns the disposition as a param.Value holding the disposition type
// and the name and filename parameters.
func (cd *ContentDisposition) Value() *param.Value {
	mods := []param.Modifier{param.Set(param.Name, cd.name)}
	if cd.hasFilename {
		mods = append(mods, param.Set(param.Filename, cd.filename))
	}
	return param.Modify(param.New(cd.dispositionType), mods...)
}

// String formats the disposition as a header value.
func (cd *ContentDisposition) String() string {
	return cd.Value().String()
}

// Disposition parses a Content-disposition header value. The disposition type
// must be one of those accepted by the Parser and the name parameter is
// required.
func (p *Parser) Disposition(header string) (*ContentDisposition, error) {
	if isBlank(header) {
		return nil, dispositionError(ErrMissingHeader, nil)
	}

	primary, rest := primaryValue(header)
	primary = strings.ToLower(primary)
	if _, ok := p.dispositionTypes[primary]; !ok || !scanner.IsTokenString(primary) {
		return nil, dispositionError(ErrInvalidFormat, nil)
	}

	if isBlank(rest) {
		return nil, dispositionError(ErrMissingParameters, nil)
	}

	_, ps, err := param.Parse(header, p.paramOpts...)
	if err != nil {
		return nil, dispositionError(ErrInvalidParametersFormat, err)
	}

	t, err := param.NewTable(ps)
	if err != nil {
		return nil, dispositionError(ErrInvalidParametersFormat, err)
	}

	name, ok := t.Get(param.Name)
	if !ok {
		return nil, dispositionError(ErrMissingNameParameter, nil)
	}

	cd := &ContentDisposition{
		dispositionType: primary,
		name:            name,
	}
	cd.filename, cd.hasFilename = t.Get(param.Filename)

	return cd, nil
}

func dispositionError(kind, cause error) *ParseError {
	return newParseError(FieldContentDisposition, kind, cause)
}
