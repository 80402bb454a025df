package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-xpr/internal/lexer"
	"github.com/cwbudde/go-xpr/internal/operator"
	"github.com/cwbudde/go-xpr/internal/parser"
)

var parseDump bool

var parseCmd = &cobra.Command{
	Use:   "parse <expr>",
	Short: "Parse an expression and print its operator tree",
	Long: `Parse an expression and print the resulting operator tree.

Use --dump for a full Go-value structural dump (via kr/pretty), useful
when debugging the tree builder's rob/wrap decisions.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "print a full structural dump instead of the indented tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	ops, err := lexer.Lex(args[0])
	if err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	root, err := parser.Build(ops)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if parseDump {
		pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", root)
		return nil
	}

	printNode(cmd.OutOrStdout(), root, 0)
	return nil
}

func printNode(w io.Writer, n *operator.Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), formatOperator(n.Operator))
	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}
