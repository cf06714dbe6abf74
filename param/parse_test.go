package param_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-content/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	pv, ps, err := param.Parse("application/json")
	assert.NoError(t, err)
	assert.Equal(t, "application/json", pv)
	assert.Empty(t, ps)

	pv, ps, err = param.Parse("  text/html ;\tCharset = UTF-8 ;foo=\"b;a\\\"r\"  ")
	assert.NoError(t, err)
	assert.Equal(t, "text/html", pv)
	assert.Equal(t, []param.RawParameter{
		{Name: "charset", Value: "UTF-8"},
		{Name: "foo", Value: `b;a"r`},
	}, ps)

	pv, ps, err = param.Parse(`form-data; name="file"; filename*=utf-8'en'with%20space; filename=x`)
	assert.NoError(t, err)
	assert.Equal(t, "form-data", pv)
	assert.Equal(t, []param.RawParameter{
		{Name: "name", Value: "file"},
		{Name: "filename", Value: "with space", Extended: true},
		{Name: "filename", Value: "x"},
	}, ps)

	pv, ps, err = param.Parse(`form-data; filename=""`)
	assert.NoError(t, err)
	assert.Equal(t, "form-data", pv)
	assert.Equal(t, []param.RawParameter{{Name: "filename", Value: ""}}, ps)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		err    error
		offset int
	}{
		{`application/json; some`, param.ErrMissingParameters, 22},
		{`a; x; ;`, param.ErrMissingParameters, 4},
		{`a;`, param.ErrMalformedParameter, 2},
		{`a; =b`, param.ErrMalformedParameter, 3},
		{`a; b=`, param.ErrMalformedParameter, 5},
		{`a; b=c d=e`, param.ErrMalformedParameter, 7},
		{`a; *=x'y'z`, param.ErrMalformedParameter, 3},
		{`a; b="c`, param.ErrMalformedQuotedString, 5},
		{`a; b*=steve`, param.ErrInvalidExtendedParameter, 6},
		{`a; b*=`, param.ErrInvalidExtendedParameter, 6},
		{`a; b*=utf-8'en'`, param.ErrInvalidExtendedParameter, 6},
		{`a; b*=utf-8'en'with%vxspace`, param.ErrInvalidExtendedParameter, 6},
		{`a; b*=utf-8'en'trunc%2`, param.ErrInvalidExtendedParameter, 6},
		{`a; b*=utf-8'en'%ff`, param.ErrInvalidExtendedParameter, 6},
	}

	for _, tc := range tests {
		pv, ps, err := param.Parse(tc.in)
		assert.ErrorIs(t, err, tc.err, tc.in)
		assert.Equal(t, "", pv, tc.in)
		assert.Nil(t, ps, tc.in)

		var synErr *param.SyntaxError
		if assert.ErrorAs(t, err, &synErr, tc.in) {
			assert.Equal(t, tc.offset, synErr.Offset, tc.in)
		}
	}
}

func TestParse_Linear(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"l/h ; " + strings.Repeat(" ", 80_000) + `"`,
		"form-data; x; " + strings.Repeat(" ", 80_000) + ";",
		"multipart/form-data" + strings.Repeat(";boundary=#", 50_000),
		"text/plain" + strings.Repeat("; charset=utf-8", 50_000),
		"a/b; c=\"" + strings.Repeat(`\"`, 80_000),
	}

	for _, in := range inputs {
		start := time.Now()
		_, _, _ = param.Parse(in)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	}
}

func TestDecodeExtValue(t *testing.T) {
	t.Parallel()

	s, err := param.DecodeExtValue("utf-8'en'with%20space")
	assert.NoError(t, err)
	assert.Equal(t, "with space", s)

	s, err = param.DecodeExtValue("UTF-8''%e2%82%ac%20rates")
	assert.NoError(t, err)
	assert.Equal(t, "€ rates", s)

	// the language tag may contain anything but another apostrophe
	s, err = param.DecodeExtValue("utf-8'en-US'a'b")
	assert.NoError(t, err)
	assert.Equal(t, "a'b", s)

	_, err = param.DecodeExtValue("utf-8'en")
	assert.ErrorIs(t, err, param.ErrInvalidExtendedParameter)

	_, err = param.DecodeExtValue("''")
	assert.ErrorIs(t, err, param.ErrInvalidExtendedParameter)
}

func TestEncodeExtValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "utf-8''%E2%82%AC%20rates", param.EncodeExtValue("€ rates"))

	s, err := param.DecodeExtValue(param.EncodeExtValue("naïve résumé.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "naïve résumé.pdf", s)
}

func TestParse_WithCharsetDecoder(t *testing.T) {
	t.Parallel()

	var got string
	dec := func(charset string, b []byte) (string, error) {
		got = charset
		return strings.ToUpper(string(b)), nil
	}

	_, ps, err := param.Parse("a; b*=ISO-8859-1''abc", param.WithCharsetDecoder(dec))
	require.NoError(t, err)
	assert.Equal(t, "iso-8859-1", got)
	assert.Equal(t, []param.RawParameter{{Name: "b", Value: "ABC", Extended: true}}, ps)
}
