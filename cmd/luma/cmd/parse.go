package cmd

import (
	"fmt"
	"os"

	"github.com/lumascript/luma/internal/lexer"
	"github.com/lumascript/luma/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a luma file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var input, filename string
		switch {
		case parseEvalExpr != "":
			input, filename = parseEvalExpr, "<eval>"
		case len(args) == 1:
			filename = args[0]
			content, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", filename, err)
			}
			input = string(content)
		default:
			return fmt.Errorf("either provide a file path or use -e for an inline snippet")
		}

		l := lexer.New(input)
		p := parser.New(l)
		block := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e)
			}
			return fmt.Errorf("parsing failed with %d error(s)", len(errs))
		}

		fmt.Println(block.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse an inline snippet instead of reading a file")
}
