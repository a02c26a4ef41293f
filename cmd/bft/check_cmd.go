package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudcmds/bft/program"
)

// Unlike a plain run, check reports every unmatched bracket in the program
// rather than stopping at the first.
var checkCmd = &cobra.Command{
	Use:           "check <program>",
	Short:         "Check a program for unmatched brackets",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		prog := program.Parse(string(data), program.WithFilename(args[0]))
		if err := prog.Lint(); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}
