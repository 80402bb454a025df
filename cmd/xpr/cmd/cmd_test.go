package cmd

import (
	"bytes"
	"strings"
	"testing"
)

// execCmd runs rootCmd with args, capturing stdout. This drives the CLI
// in-process through cobra's own command tree rather than exec'ing a
// built binary, since the build process is off-limits for this module.
func execCmd(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("xpr %v: %v", args, err)
	}
	return buf.String()
}

func TestLexCommandPrintsOperatorStream(t *testing.T) {
	out := execCmd(t, "lex", "1 + 2")
	if !strings.Contains(out, "Identifier(\"1\")") || !strings.Contains(out, "+") {
		t.Errorf("got %q", out)
	}
}

func TestParseCommandPrintsIndentedTree(t *testing.T) {
	parseDump = false
	out := execCmd(t, "parse", "1 + 2")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected root + 2 children, got %q", out)
	}
}

func TestParseCommandDumpFlag(t *testing.T) {
	out := execCmd(t, "parse", "--dump", "1 + 2")
	if !strings.Contains(out, "operator.Node") {
		t.Errorf("expected a structural dump mentioning operator.Node, got %q", out)
	}
}

func TestEvalCommandBasicArithmetic(t *testing.T) {
	evalContextFile, evalSet, evalPretty = "", nil, false
	out := execCmd(t, "eval", "1 + 2 * 3")
	if strings.TrimSpace(out) != "7" {
		t.Errorf("got %q, want 7", out)
	}
}

func TestEvalCommandWithSetPatch(t *testing.T) {
	evalContextFile, evalSet, evalPretty = "", nil, false
	out := execCmd(t, "eval", "--set", "name=world", "name")
	if strings.TrimSpace(out) != `"world"` {
		t.Errorf("got %q, want \"world\"", out)
	}
}

func TestFunctionsCommandFilter(t *testing.T) {
	functionsFilter = ""
	functionsNaturalSort = false
	out := execCmd(t, "functions", "--filter", "m*")
	if !strings.Contains(out, "min") || !strings.Contains(out, "max") || strings.Contains(out, "len") {
		t.Errorf("got %q, want only min/max listed", out)
	}
}
