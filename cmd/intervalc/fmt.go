package main

import (
	"fmt"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/spf13/cobra"
)

var fmtScale int

var fmtCmd = &cobra.Command{
	Use:   "fmt <literal>",
	Short: "Reprint an interval literal in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().IntVar(&fmtScale, "scale", -1, "Round fractional seconds to this many digits")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	v, err := interval.ParseLiteral(args[0])
	if err != nil {
		return err
	}
	if fmtScale >= 0 {
		if v, err = v.ConvertScale(fmtScale); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
