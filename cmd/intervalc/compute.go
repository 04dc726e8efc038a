package main

import (
	"fmt"

	interval "github.com/connerohnesorge/interval-go"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <literal> <literal>",
	Short: "Add two intervals of the same family",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinary(cmd, args, (*interval.Interval).Add)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <literal> <literal>",
	Short: "Subtract one interval from another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinary(cmd, args, (*interval.Interval).Subtract)
	},
}

var negateCmd = &cobra.Command{
	Use:   "negate <literal>",
	Short: "Flip the sign of an interval",
	Args:  cobra.ExactArgs(1),
	RunE:  runNegate,
}

func init() {
	rootCmd.AddCommand(addCmd, subCmd, negateCmd)
}

func runBinary(cmd *cobra.Command, args []string, op func(*interval.Interval, *interval.Interval) (*interval.Interval, error)) error {
	a, err := interval.ParseLiteral(args[0])
	if err != nil {
		return err
	}
	b, err := interval.ParseLiteral(args[1])
	if err != nil {
		return err
	}
	result, err := op(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func runNegate(cmd *cobra.Command, args []string) error {
	v, err := interval.ParseLiteral(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Negate())
	return nil
}
