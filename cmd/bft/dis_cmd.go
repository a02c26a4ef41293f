package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/bft/op"
	"github.com/cloudcmds/bft/program"
)

var disComments bool

var disCmd = &cobra.Command{
	Use:           "dis <program>",
	Short:         "Print the instruction listing for a program",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		prog := program.Parse(string(data), program.WithFilename(args[0]))
		for i, ins := range prog.Instructions() {
			if ins.Op == op.Comment && !disComments {
				continue
			}
			pos := fmt.Sprintf("%d:%d", ins.Position.LineNumber(), ins.Position.ColumnNumber())
			fmt.Printf("%6d  %-8s %-12s %s\n", i, pos, ins.Op, strconv.QuoteRune(ins.Char))
		}
		return nil
	},
}

func init() {
	disCmd.Flags().BoolVar(&disComments, "comments", false, "Include comment characters in the listing")
}
