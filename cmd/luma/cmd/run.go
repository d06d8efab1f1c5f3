package cmd

import (
	"fmt"
	"os"

	interperr "github.com/lumascript/luma/internal/errors"
	"github.com/lumascript/luma/internal/interp"
	"github.com/lumascript/luma/internal/lexer"
	"github.com/lumascript/luma/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a luma script file or inline expression",
	Long: `Execute a luma program from a file or inline snippet.

Examples:
  # Run a script file
  luma run script.luma

  # Evaluate an inline snippet
  luma run -e "print('hi')"

  # Dump the parsed AST before executing
  luma run --dump-ast script.luma`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if evalExpr != "" {
			return execute(trace, dumpAST, "<eval>", evalExpr)
		}
		if len(args) != 1 {
			return fmt.Errorf("either provide a file path or use -e for an inline snippet")
		}
		return runFile(args[0], dumpAST, trace)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline snippet instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print a trace-mode banner to stderr before executing")
}

// runFile reads filename and executes it, exiting the process with the
// status required by the CLI contract: 0 on a clean run, 1 if the file
// cannot be read, the source fails to parse, or the program raises a
// runtime error.
func runFile(filename string, dumpAST, trace bool) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", progName(), filename, err)
		os.Exit(1)
	}
	return execute(trace, dumpAST, filename, string(content))
}

func execute(trace, dumpAST bool, filename, source string) error {
	l := lexer.New(source)
	p := parser.New(l)
	block := p.ParseProgram()

	if errs := append(l.Errors(), p.Errors()...); len(errs) > 0 {
		reportDiagnostics(interperr.FromMessages(errs, filename, source))
		os.Exit(1)
	}

	if dumpAST {
		fmt.Println(block.String())
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace mode enabled - executing %s]\n", filename)
	}

	in := interp.New(os.Stdout)
	if sig := in.Run(block); sig != nil {
		reportDiagnostics([]*interperr.SourceError{
			interperr.NewSourceError(filename, sig.Line, sig.Message, source),
		})
		os.Exit(1)
	}
	return nil
}

func reportDiagnostics(errs []*interperr.SourceError) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.FormatForProgram(progName()))
	}
}
