package cmd

import (
	"fmt"
	"os"

	"github.com/lumascript/luma/internal/lexer"
	"github.com/spf13/cobra"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a luma file or expression",
	Long: `Tokenize (lex) a luma program and print the resulting tokens.

Examples:
  # Tokenize a script file
  luma lex script.luma

  # Tokenize an inline snippet
  luma lex -e "local x = 42"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		var input, filename string
		switch {
		case lexEvalExpr != "":
			input, filename = lexEvalExpr, "<eval>"
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
		for {
			tok := l.NextToken()
			fmt.Printf("[%-8s] %q @%d\n", tok.Type, tok.Literal, tok.Line)
			if tok.Type == lexer.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize an inline snippet instead of reading a file")
}
