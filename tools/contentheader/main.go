package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-content/tools/contentheader/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
