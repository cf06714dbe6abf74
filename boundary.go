package content

import (
	"strings"

	"github.com/google/uuid"
)

// NewBoundary returns a random boundary suitable for a multipart body. It is
// made only of characters that need no quoting in a Content-type header.
func NewBoundary() string {
	return "----" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewMultipartType returns a multipart ContentType with the given subtype,
// e.g., "form-data" or "mixed", and a fresh boundary from NewBoundary.
func NewMultipartType(subtype string) (*ContentType, error) {
	return ParseType("multipart/" + subtype + "; boundary=" + NewBoundary())
}
