package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zostay/go-content"
)

var typeCmd = &cobra.Command{
	Use:   "type <value>",
	Short: "Parse a Content-type header value",
	Args:  cobra.ExactArgs(1),
	RunE:  RunType,
}

// RunType parses the Content-type value given as the only argument and prints
// the media type, charset, and boundary.
func RunType(cmd *cobra.Command, args []string) error {
	v := args[0]
	if err := checkHeaderValue(content.FieldContentType, v); err != nil {
		return err
	}

	start := time.Now()
	ct, err := parser.Type(v)
	logParse(content.FieldContentType, v, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s %q: %w", content.FieldContentType, v, err)
	}

	printField(cmd, "mime", ct.MediaType(), true)
	cs, ok := ct.Charset()
	printField(cmd, "charset", cs, ok)
	b, ok := ct.Boundary()
	printField(cmd, "boundary", b, ok)

	return nil
}
