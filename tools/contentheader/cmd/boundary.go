package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-content"
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary [subtype]",
	Short: "Print a multipart Content-type value with a fresh boundary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  RunBoundary,
}

// RunBoundary prints a multipart Content-type with a newly generated boundary.
// The subtype defaults to form-data.
func RunBoundary(cmd *cobra.Command, args []string) error {
	subtype := content.FormData
	if len(args) > 0 {
		subtype = args[0]
	}

	ct, err := content.NewMultipartType(subtype)
	if err != nil {
		return fmt.Errorf("multipart subtype %q: %w", subtype, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ct.String())
	return nil
}
