// Command bitvec inspects and combines bit-vector values from the shell.
//
// Values are given in any form bitvec.Parse accepts: binary digits,
// "0x"-prefixed hex, and the "~" complement form for indefinite sets.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagBase    int
	flagVerbose bool

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitvec",
	Short: "Inspect and combine bit-vector values",
	Long: `bitvec works on sets of non-negative integers written as bit vectors.

Set arguments accept binary digits ("1010"), 0x-prefixed hex ("0xa2") and
the ~ complement form for indefinite sets ("~1010"). Results print in the
base chosen with --base.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagBase, "base", 2, "output base, 2 or 16")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
