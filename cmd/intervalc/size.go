package main

import (
	"fmt"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/spf13/cobra"
)

var (
	sizePrecision int
	sizeScale     int
)

var sizeCmd = &cobra.Command{
	Use:   "size <qualifier>",
	Short: "Report the display size for a qualifier",
	Long: `Report the exact character width a client should reserve for an
interval column, e.g. "size 'DAY TO SECOND' --precision 2 --scale 6".`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().IntVar(&sizePrecision, "precision", interval.DefaultPrecision, "Leading field precision")
	sizeCmd.Flags().IntVar(&sizeScale, "scale", interval.DefaultScale, "Fractional seconds precision")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	q, err := interval.QualifierFromString(args[0])
	if err != nil {
		return err
	}
	n, err := interval.DisplaySize(q, sizePrecision, sizeScale)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s precision=%d scale=%d: %d\n", q, sizePrecision, sizeScale, n)
	return nil
}
