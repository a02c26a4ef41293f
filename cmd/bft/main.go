package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cloudcmds/bft"
)

var version = "dev"

var red = color.New(color.FgRed).SprintfFunc()

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red("%s", s))
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Determine what code is to be executed. There are three possibilities:
//  1. --code <code>
//  2. --stdin (read code from stdin)
//  3. path as args[0]
func getSource(args []string) (source, filename string, err error) {
	if code := viper.GetString("code"); code != "" {
		return code, "", nil
	}
	if viper.GetBool("stdin") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "", nil
	}
	if len(args) == 0 {
		return "", "", errors.New("requires a program file, --code, or --stdin")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}

var rootCmd = &cobra.Command{
	Use:           "bft [flags] [program]",
	Short:         "A brainfuck interpreter",
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, filename, err := getSource(args)
		if err != nil {
			return err
		}
		opts := []bft.Option{
			bft.WithTapeSize(viper.GetInt("cells")),
		}
		if filename != "" {
			opts = append(opts, bft.WithFilename(filename))
		}
		if viper.GetBool("extensible") {
			opts = append(opts, bft.WithExtensibleTape())
		}
		if viper.GetBool("trace") {
			opts = append(opts, bft.WithObserver(newTraceObserver(os.Stderr)))
		}
		return bft.Run(source, opts...)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.IntP("cells", "c", 0, "Number of tape cells (0 means the default of 30000)")
	flags.BoolP("extensible", "e", false, "Allow the tape to grow rightward on demand")
	flags.String("code", "", "Code to execute")
	flags.Bool("stdin", false, "Read code from stdin")
	flags.Bool("trace", false, "Log every executed instruction to stderr")
	flags.Bool("no-color", false, "Disable colored output")

	viper.SetEnvPrefix("bft")
	viper.AutomaticEnv()
	for _, name := range []string{"cells", "extensible", "code", "stdin", "trace", "no-color"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(disCmd)
}

func main() {
	cobra.OnInitialize(func() {
		if viper.GetBool("no-color") || !isTerminal(os.Stderr) {
			color.NoColor = true
		}
	})
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
