package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modwrap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "modwrap",
	Short: "Wrap compiled JavaScript bundles in module loader boilerplate",
	Long: `modwrap emits the prologue and epilogue that make a compiled bundle load
as an AMD module, a CommonJS module, an IIFE, a UMD module, an eval-able
function or plain ESM.`,
	Version:       version.Version,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupColor(cmd)
	},
}

func init() {
	rootCmd.AddCommand(introCmd)
	rootCmd.AddCommand(outroCmd)
	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress warnings and progress output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr, *.ndjson for JSON)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|warn|info|debug)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
