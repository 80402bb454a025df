package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-xpr/internal/lexer"
	"github.com/cwbudde/go-xpr/internal/operator"
)

var lexCmd = &cobra.Command{
	Use:   "lex <expr>",
	Short: "Tokenize an expression and print the operator stream",
	Long: `Tokenize an expression and print the flat operator stream the tree
builder consumes, one operator per line.

Example:
  xpr lex "a.b[0] + 2 * (3 - 1)"`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	ops, err := lexer.Lex(args[0])
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	for i, op := range ops {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i, formatOperator(op))
	}
	return nil
}

func formatOperator(op operator.Operator) string {
	switch op.Kind {
	case operator.KindIdentifier:
		return fmt.Sprintf("Identifier(%q)", op.Name)
	case operator.KindFunction:
		return fmt.Sprintf("Function(%q)", op.Name)
	case operator.KindValue:
		raw, err := json.Marshal(op.Literal)
		if err != nil {
			return "Value(<error>)"
		}
		return fmt.Sprintf("Value(%s)", raw)
	default:
		return op.Kind.String()
	}
}
