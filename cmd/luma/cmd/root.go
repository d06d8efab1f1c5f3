package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "luma [filename]",
	Short: "luma is a tree-walking interpreter for a Lua-family subset",
	Long: `luma interprets a dynamically typed scripting language in the Lua
family: tables, closures with lexical capture, multiple return values,
and a single built-in print.

Invoked with a filename it lexes, parses, and executes the file; the
run, lex, and parse subcommands expose the individual phases.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprintf(os.Stderr, "Usage: %s [filename]\n", progName())
			os.Exit(1)
		}
		return runFile(args[0], false, false)
	},
}

// Execute runs the root command and is the sole entry point called by
// main.go.
func Execute() error {
	return rootCmd.Execute()
}

func progName() string {
	return filepath.Base(os.Args[0])
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
