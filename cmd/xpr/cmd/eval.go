package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-xpr/pkg/xpr"
)

var (
	evalContextFile string
	evalSet         []string
	evalPretty      bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Compile and evaluate an expression",
	Long: `Compile and evaluate an expression, optionally against a variable
context loaded from a JSON or YAML file.

--set k=v patches the loaded context (applied after --context, before
evaluation) using sjson dotted-path syntax, so "--set user.age=41" can
override or add a single field without rewriting the whole file.

--pretty formats the JSON result for readability.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalContextFile, "context", "", "path to a JSON or YAML variable context")
	evalCmd.Flags().StringArrayVar(&evalSet, "set", nil, "k=v patch applied to the context (sjson path syntax)")
	evalCmd.Flags().BoolVar(&evalPretty, "pretty", false, "pretty-print the JSON result")
}

func runEval(cmd *cobra.Command, args []string) error {
	contextJSON := "{}"

	if evalContextFile != "" {
		raw, err := os.ReadFile(evalContextFile)
		if err != nil {
			return fmt.Errorf("reading context: %w", err)
		}
		if isYAMLFile(evalContextFile) {
			var decoded map[string]any
			if err := yaml.Unmarshal(raw, &decoded); err != nil {
				return fmt.Errorf("parsing yaml context: %w", err)
			}
			encoded, err := json.Marshal(decoded)
			if err != nil {
				return fmt.Errorf("converting yaml context: %w", err)
			}
			contextJSON = string(encoded)
		} else {
			contextJSON = string(raw)
		}
	}

	for _, patch := range evalSet {
		path, value, ok := strings.Cut(patch, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected k=v", patch)
		}
		patched, err := sjson.Set(contextJSON, path, value)
		if err != nil {
			return fmt.Errorf("applying --set %q: %w", patch, err)
		}
		contextJSON = patched
	}

	ctx, err := xpr.ContextFromJSON(contextJSON)
	if err != nil {
		return fmt.Errorf("loading context: %w", err)
	}

	compiled, err := xpr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	result, err := compiled.Eval([]xpr.Context{ctx}, nil)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	if evalPretty {
		raw = pretty.Pretty(raw)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(raw), "\n"))
	return nil
}

func isYAMLFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
