package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zostay/go-content"
)

var dispositionCmd = &cobra.Command{
	Use:   "disposition <value>",
	Short: "Parse a Content-disposition header value",
	Args:  cobra.ExactArgs(1),
	RunE:  RunDisposition,
}

// RunDisposition parses the Content-disposition value given as the only
// argument and prints the disposition type, name, and filename.
func RunDisposition(cmd *cobra.Command, args []string) error {
	v := args[0]
	if err := checkHeaderValue(content.FieldContentDisposition, v); err != nil {
		return err
	}

	start := time.Now()
	cd, err := parser.Disposition(v)
	logParse(content.FieldContentDisposition, v, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s %q: %w", content.FieldContentDisposition, v, err)
	}

	printField(cmd, "type", cd.Type(), true)
	printField(cmd, "name", cd.Name(), true)
	fn, ok := cd.Filename()
	printField(cmd, "filename", fmt.Sprintf("%q", fn), ok)

	return nil
}
