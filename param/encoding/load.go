// Package encoding provides a param.CharsetDecoder that honors the charset
// named in RFC 8187 extended parameter values, using all the encodings
// provided with:
//
// * golang.org/x/text/encoding/ianaindex
//
// The default decoder in the param package treats every extended value as
// UTF-8. Pass WithCharsets() to param.Parse (or content.WithParamOptions) when
// you need to accept ISO-8859-1 and the other charsets senders put in
// filename* parameters. This will make the size of your compiled binaries
// considerably larger.
package encoding

import (
	"fmt"
	"unicode/utf8"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-content/param"
)

// CharsetDecoder decodes b from the named charset into UTF-8. An empty
// charset is treated as UTF-8.
func CharsetDecoder(charset string, b []byte) (string, error) {
	if charset == "" || charset == "utf-8" {
		return param.DefaultCharsetDecoder(charset, b)
	}

	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(eb) {
		return "", fmt.Errorf("charset %q produced invalid utf-8", charset)
	}

	return string(eb), nil
}

// WithCharsets is a param.ParseOption that installs CharsetDecoder.
func WithCharsets() param.ParseOption {
	return param.WithCharsetDecoder(CharsetDecoder)
}
