package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervalc",
	Short: "Parse, format and compute SQL INTERVAL values",
	Long: `intervalc works with SQL INTERVAL literals such as
INTERVAL '-11 23:59:59.999999' DAY TO SECOND.

Values are exact: arithmetic goes through a single signed magnitude in the
family's finest unit, and precision overflow is reported instead of
wrapping.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
