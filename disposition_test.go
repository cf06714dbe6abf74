package content_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-content"
	"github.com/zostay/go-content/param"
	"github.com/zostay/go-content/param/encoding"
)

func TestParseDisposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		name        string
		filename    string
		hasFilename bool
	}{
		{`form-data; name="file"; filename=file.jpg`, "file", "file.jpg", true},
		{`form-data; name="file"; filename=""`, "file", "", true},
		{`form-data; name="file"; filename="fi'l'e.jpg"`, "file", "fi'l'e.jpg", true},
		{`form-data; name="file"; filename*=utf-8'en'with%20space`, "file", "with space", true},
		{`form-data; name="file"; filename*=utf-8''%e2%82%ac.txt; filename="plain.txt"`, "file", "€.txt", true},
		{`form-data; name="file"; filename="plain.txt"; filename*=UTF-8''ext.txt`, "file", "ext.txt", true},
		{`Form-Data ; NAME=field`, "field", "", false},
		{`form-data; name="a \"quoted\" name"`, `a "quoted" name`, "", false},
	}

	for _, tc := range tests {
		cd, err := content.ParseDisposition(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, "form-data", cd.Type(), tc.in)
		assert.Equal(t, tc.name, cd.Name(), tc.in)
		fn, ok := cd.Filename()
		assert.Equal(t, tc.hasFilename, ok, tc.in)
		assert.Equal(t, tc.filename, fn, tc.in)
	}
}

func TestParseDisposition_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		kind error
		msg  string
	}{
		{``, content.ErrMissingHeader, "Missing content-disposition header"},
		{`  `, content.ErrMissingHeader, "Missing content-disposition header"},
		{`steve`, content.ErrInvalidFormat, "Invalid content-disposition header format"},
		{`attachment; name="file"`, content.ErrInvalidFormat, "Invalid content-disposition header format"},
		{`; name="file"`, content.ErrInvalidFormat, "Invalid content-disposition header format"},
		{`form-data`, content.ErrMissingParameters, "Invalid content-disposition header missing parameters"},
		{`form-data;`, content.ErrMissingParameters, "Invalid content-disposition header missing parameters"},
		{`form-data ; `, content.ErrMissingParameters, "Invalid content-disposition header missing parameters"},
		{`form-data; filename=x`, content.ErrMissingNameParameter, "Invalid content-disposition header missing name parameter"},
		{`form-data; name="file"; filename*=steve`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name="file"; filename*=`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name="file"; filename*=utf-8'en'with%vxspace`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name="file`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name="file"; filename=file.jpg; __proto__=x`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
		{`form-data; name="__proto__"; filename=file.jpg`, content.ErrInvalidParametersFormat, "Invalid content-disposition header format includes invalid parameters"},
	}

	for _, tc := range tests {
		cd, err := content.ParseDisposition(tc.in)
		assert.Nil(t, cd, tc.in)
		assert.ErrorIs(t, err, tc.kind, tc.in)
		assert.NotErrorIs(t, err, content.ErrInvalidTypeHeader, tc.in)
		assert.EqualError(t, err, tc.msg, tc.in)
	}
}

func TestParseDisposition_Cause(t *testing.T) {
	t.Parallel()

	_, err := content.ParseDisposition(`form-data; name="__proto__"`)
	assert.ErrorIs(t, err, param.ErrReservedParameterName)

	_, err = content.ParseDisposition(`form-data; name="file`)
	assert.ErrorIs(t, err, param.ErrMalformedQuotedString)
}

func TestParseDisposition_Linear(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := content.ParseDisposition("form-data; x; " + strings.Repeat(" ", 80_000) + ";")
	assert.ErrorIs(t, err, content.ErrInvalidParametersFormat)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	start = time.Now()
	_, err = content.ParseDisposition("form-data" + strings.Repeat(" ", 80_000))
	assert.ErrorIs(t, err, content.ErrMissingParameters)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	start = time.Now()
	cd, err := content.ParseDisposition("form-data" + strings.Repeat(`; name="x"`, 50_000))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.Equal(t, "x", cd.Name())
}

func TestParser_DispositionTypes(t *testing.T) {
	t.Parallel()

	p := content.New(content.WithDispositionTypes("attachment", "Inline"))

	cd, err := p.Disposition(`INLINE; name=x`)
	require.NoError(t, err)
	assert.Equal(t, "inline", cd.Type())

	_, err = p.Disposition(`form-data; name=x`)
	assert.ErrorIs(t, err, content.ErrInvalidFormat)
}

func TestParser_ParamOptions(t *testing.T) {
	t.Parallel()

	header := `form-data; name=upload; filename*=iso-8859-1'fr'caf%E9.txt`

	_, err := content.ParseDisposition(header)
	assert.ErrorIs(t, err, content.ErrInvalidParametersFormat)

	p := content.New(content.WithParamOptions(encoding.WithCharsets()))
	cd, err := p.Disposition(header)
	require.NoError(t, err)
	fn, _ := cd.Filename()
	assert.Equal(t, "café.txt", fn)
}

func TestContentDisposition_String(t *testing.T) {
	t.Parallel()

	cd, err := content.ParseDisposition(`form-data; name="my file"; filename*=utf-8''%E2%82%AC.txt`)
	require.NoError(t, err)
	assert.Equal(t, `form-data; filename*=utf-8''%E2%82%AC.txt; name="my file"`, cd.String())

	rt, err := content.ParseDisposition(cd.String())
	require.NoError(t, err)
	assert.Equal(t, cd, rt)
}
