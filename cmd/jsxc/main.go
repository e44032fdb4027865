package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsxc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsxc",
	Short: "JSX to element-factory-call transformer",
	Long:  `jsxc rewrites JSX syntax into element-factory calls and leaves every other byte of the source untouched`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Command failures exit with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream's
// terminal-ness.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
