// Package scanner provides the forward-only cursor used to tokenize
// parameterized header values. Every method consumes input from the current
// position and never moves backwards, so any parse built from these methods
// runs in time linear to the length of the input.
package scanner

import (
	"errors"

	"golang.org/x/net/http/httpguts"
)

// ErrMalformedQuotedString is returned by QuotedString when the input ends
// before the closing quote is found.
var ErrMalformedQuotedString = errors.New("quoted-string is missing its closing quote")

type octetType byte

const (
	octetToken octetType = 1 << iota
	octetSpace
)

var octetTypes [256]octetType

func init() {
	// token = 1*tchar (RFC 7230 Section 3.2.6)
	// OWS   = *( SP / HTAB )
	for c := 0; c < 256; c++ {
		var t octetType
		if c < 0x80 && httpguts.IsTokenRune(rune(c)) {
			t |= octetToken
		}
		if c == ' ' || c == '\t' {
			t |= octetSpace
		}
		octetTypes[c] = t
	}
}

// IsToken returns true if b may appear in an RFC 7230 token.
func IsToken(b byte) bool {
	return octetTypes[b]&octetToken != 0
}

// IsSpace returns true if b is optional whitespace.
func IsSpace(b byte) bool {
	return octetTypes[b]&octetSpace != 0
}

// IsTokenString returns true if s is a non-empty token.
func IsTokenString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsToken(s[i]) {
			return false
		}
	}
	return true
}

// Scanner is a cursor over a header value.
type Scanner struct {
	s   string
	pos int
}

// New returns a Scanner positioned at the start of s.
func New(s string) *Scanner {
	return &Scanner{s: s}
}

// Pos returns the byte offset of the cursor.
func (sc *Scanner) Pos() int { return sc.pos }

// AtEnd returns true once all input has been consumed.
func (sc *Scanner) AtEnd() bool { return sc.pos >= len(sc.s) }

// Peek returns the byte under the cursor without consuming it. It returns 0
// at the end of input.
func (sc *Scanner) Peek() byte {
	if sc.AtEnd() {
		return 0
	}
	return sc.s[sc.pos]
}

// Accept consumes the byte under the cursor if it is c and reports whether it
// did.
func (sc *Scanner) Accept(c byte) bool {
	if sc.AtEnd() || sc.s[sc.pos] != c {
		return false
	}
	sc.pos++
	return true
}

// SkipSpace consumes optional whitespace.
func (sc *Scanner) SkipSpace() {
	for sc.pos < len(sc.s) && IsSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// Token consumes and returns the longest run of token characters under the
// cursor. The result is empty when the cursor is not on a token character.
func (sc *Scanner) Token() string {
	start := sc.pos
	for sc.pos < len(sc.s) && IsToken(sc.s[sc.pos]) {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// Until consumes and returns everything up to, but not including, the next
// delim or the end of input.
func (sc *Scanner) Until(delim byte) string {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] != delim {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// QuotedString consumes a quoted-string and returns its unescaped content. The
// cursor must be on the opening quote. A backslash escapes the byte that
// follows it.
//
// If no closing quote is found, the cursor is left at the end of input and
// ErrMalformedQuotedString is returned.
func (sc *Scanner) QuotedString() (string, error) {
	if !sc.Accept('"') {
		return "", ErrMalformedQuotedString
	}

	// In the common case there are no quoted pairs and the content can be
	// sliced directly from the input.
	start := sc.pos
	for ; sc.pos < len(sc.s); sc.pos++ {
		switch sc.s[sc.pos] {
		case '"':
			v := sc.s[start:sc.pos]
			sc.pos++
			return v, nil
		case '\\':
			return sc.quotedPairs(start)
		}
	}

	return "", ErrMalformedQuotedString
}

// quotedPairs finishes a quoted-string once the first backslash is seen,
// unescaping into a buffer from there on.
func (sc *Scanner) quotedPairs(start int) (string, error) {
	buf := make([]byte, sc.pos-start, len(sc.s)-start)
	copy(buf, sc.s[start:sc.pos])

	escaped := false
	for ; sc.pos < len(sc.s); sc.pos++ {
		c := sc.s[sc.pos]
		switch {
		case escaped:
			buf = append(buf, c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			sc.pos++
			return string(buf), nil
		default:
			buf = append(buf, c)
		}
	}

	return "", ErrMalformedQuotedString
}
