package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-content/param"
	"github.com/zostay/go-content/param/encoding"
)

func TestCharsetDecoder(t *testing.T) {
	t.Parallel()

	s, err := encoding.CharsetDecoder("iso-8859-1", []byte{'c', 0xe9, 'd'})
	assert.NoError(t, err)
	assert.Equal(t, "céd", s)

	s, err = encoding.CharsetDecoder("utf-8", []byte("€ rates"))
	assert.NoError(t, err)
	assert.Equal(t, "€ rates", s)

	_, err = encoding.CharsetDecoder("utf-8", []byte{0xff})
	assert.ErrorIs(t, err, param.ErrInvalidExtendedParameter)

	_, err = encoding.CharsetDecoder("x-no-such-charset", []byte("abc"))
	assert.Error(t, err)
}

func TestWithCharsets(t *testing.T) {
	t.Parallel()

	_, ps, err := param.Parse(`attachment; filename*=iso-8859-1'en'%A3%20rates.txt`, encoding.WithCharsets())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "£ rates.txt", ps[0].Value)

	// the default decoder refuses latin1 bytes that are not valid utf-8
	_, _, err = param.Parse(`attachment; filename*=iso-8859-1'en'%A3%20rates.txt`)
	assert.ErrorIs(t, err, param.ErrInvalidExtendedParameter)
}
