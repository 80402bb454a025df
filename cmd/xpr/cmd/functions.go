package cmd

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"github.com/tidwall/match"

	"github.com/cwbudde/go-xpr/internal/eval"
)

var (
	functionsFilter      string
	functionsNaturalSort bool
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the built-in function table",
	Long: `List the names and arity of the built-in functions (min, max, len,
is_empty, array).

--filter takes a glob pattern (github.com/tidwall/match syntax) matched
against function names. --natural-sort orders names the way a human
would (natural number ordering) instead of plain lexical order.`,
	RunE: runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
	functionsCmd.Flags().StringVar(&functionsFilter, "filter", "", "glob pattern to filter function names")
	functionsCmd.Flags().BoolVar(&functionsNaturalSort, "natural-sort", false, "sort names in natural order instead of lexical order")
}

func runFunctions(cmd *cobra.Command, args []string) error {
	builtins := eval.Builtins()
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		if functionsFilter != "" && !match.Match(name, functionsFilter) {
			continue
		}
		names = append(names, name)
	}

	if functionsNaturalSort {
		sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	} else {
		sort.Strings(names)
	}

	w := cmd.OutOrStdout()
	for _, name := range names {
		fn := builtins[name]
		fmt.Fprintf(w, "%-10s min_args=%s max_args=%s\n", name, arityString(fn.MinArgs), arityString(fn.MaxArgs))
	}
	return nil
}

func arityString(n *int) string {
	if n == nil {
		return "∞"
	}
	return fmt.Sprintf("%d", *n)
}
