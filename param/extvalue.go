package param

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CharsetDecoder turns the percent-decoded bytes of an RFC 8187 ext-value into
// a string using the charset named in the ext-value. If the charset is not
// supported, it should return an error.
type CharsetDecoder func(charset string, b []byte) (string, error)

// DefaultCharsetDecoder decodes every ext-value as UTF-8, whatever charset it
// names. Byte sequences that are not valid UTF-8 are an error.
func DefaultCharsetDecoder(_ string, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: value is not valid utf-8", ErrInvalidExtendedParameter)
	}
	return string(b), nil
}

// DecodeExtValue decodes an RFC 8187 ext-value of the form
//
//	charset'language'percent-encoded-value
//
// using DefaultCharsetDecoder. The language tag is ignored.
func DecodeExtValue(v string) (string, error) {
	return decodeExtValue(v, DefaultCharsetDecoder)
}

func decodeExtValue(v string, decode CharsetDecoder) (string, error) {
	charset, rest, found := strings.Cut(v, "'")
	if !found {
		return "", fmt.Errorf("%w: missing charset delimiter", ErrInvalidExtendedParameter)
	}

	_, encoded, found := strings.Cut(rest, "'")
	if !found {
		return "", fmt.Errorf("%w: missing language delimiter", ErrInvalidExtendedParameter)
	}

	b, err := percentDecode(encoded)
	if err != nil {
		return "", err
	}

	s, err := decode(strings.ToLower(charset), b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExtendedParameter, err)
	}

	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidExtendedParameter)
	}

	return s, nil
}

func percentDecode(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b = append(b, s[i])
			continue
		}

		if i+2 >= len(s) {
			return nil, fmt.Errorf("%w: truncated percent escape", ErrInvalidExtendedParameter)
		}

		hi, lo := unhex(s[i+1]), unhex(s[i+2])
		if hi < 0 || lo < 0 {
			return nil, fmt.Errorf("%w: bad percent escape %q", ErrInvalidExtendedParameter, s[i:i+3])
		}

		b = append(b, byte(hi<<4|lo))
		i += 2
	}
	return b, nil
}

func unhex(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return -1
}

// isAttrChar reports whether c may appear unescaped in an ext-value
// (RFC 8187 Section 3.2.1).
func isAttrChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", c) >= 0
}

// EncodeExtValue formats s as an RFC 8187 ext-value with the UTF-8 charset and
// no language tag.
func EncodeExtValue(s string) string {
	const hexDigits = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) + len("utf-8''"))
	b.WriteString("utf-8''")
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}
