package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/analyzer"
	"github.com/vyPal/BasicFront/lib/config"
	"github.com/vyPal/BasicFront/lib/lexer"
	"github.com/vyPal/BasicFront/util"
)

func runApp(t *testing.T, args ...string) (exitCode int, err error) {
	t.Helper()
	exitCode = -1
	oldExiter := cli.OsExiter
	cli.OsExiter = func(code int) { exitCode = code }
	defer func() { cli.OsExiter = oldExiter }()

	err = newApp().Run(append([]string{"basicfront"}, args...))
	return exitCode, err
}

func TestLexCommand(t *testing.T) {
	if code, err := runApp(t, "lex", "-s", "DIM x AS INTEGER"); err != nil || code != -1 {
		t.Errorf("clean source: code %d, err %v", code, err)
	}
	if code, _ := runApp(t, "lex", "-s", "x = 5."); code != 1 {
		t.Errorf("invalid number: exit code %d, want 1", code)
	}
	if code, _ := runApp(t, "lex"); code != 1 {
		t.Errorf("missing file: exit code %d, want 1", code)
	}
}

func TestCheckCommand(t *testing.T) {
	src := filepath.Join(t.TempDir(), "prog.bas")
	prog := "dim i as integer\nfor i = 1 to 3\nprint i\nnext i\n"
	if err := os.WriteFile(src, []byte(prog), 0644); err != nil {
		t.Fatal(err)
	}
	if code, err := runApp(t, "check", "--upper", src); err != nil || code != -1 {
		t.Errorf("upper-cased program: code %d, err %v", code, err)
	}
	// Without upper-casing the keywords are identifiers.
	if code, _ := runApp(t, "check", src); code != 1 {
		t.Errorf("lower-case program: exit code %d, want 1", code)
	}
	if code, _ := runApp(t, "--json", "check", "-s", "PRINT y"); code != 1 {
		t.Errorf("undeclared identifier: exit code %d, want 1", code)
	}
}

func TestGrammarCommand(t *testing.T) {
	if code, err := runApp(t, "grammar"); err != nil || code != -1 {
		t.Errorf("default grammar: code %d, err %v", code, err)
	}
	if code, err := runApp(t, "grammar", "-s", "PRINT 1"); err != nil || code != -1 {
		t.Errorf("match: code %d, err %v", code, err)
	}

	// The participle adapter stops at the first invalid token.
	if code, _ := runApp(t, "grammar", "-s", "PRINT 5."); code != 1 {
		t.Errorf("invalid source: exit code %d, want 1", code)
	}
	src := filepath.Join(t.TempDir(), "prog.bas")
	if err := os.WriteFile(src, []byte("DIM x AS INTEGER\nPRINT x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code, err := runApp(t, "--json", "grammar", "--match", src); err != nil || code != -1 {
		t.Errorf("match file: code %d, err %v", code, err)
	}

	bad := filepath.Join(t.TempDir(), "bad.bnf")
	if err := os.WriteFile(bad, []byte("<A> ::= <B> ;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if code, _ := runApp(t, "grammar", "--bnf", bad); code != 1 {
		t.Errorf("undefined nonterminal: exit code %d, want 1", code)
	}
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"s.yaml", "s.json", "s.toml"} {
		path := filepath.Join(dir, name)
		if code, err := runApp(t, "settings", path); err != nil || code != -1 {
			t.Fatalf("%s: code %d, err %v", name, code, err)
		}
		if code, err := runApp(t, "settings", "--force", path); err != nil || code != -1 {
			t.Fatalf("%s overwrite: code %d, err %v", name, code, err)
		}
		s, err := config.Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if s.Semantic.Declaration != "DIM" {
			t.Errorf("%s: declaration keyword %q", name, s.Semantic.Declaration)
		}
		if code, err := runApp(t, "-c", path, "check", "-s", "DIM a AS STRING\nPRINT a"); err != nil || code != -1 {
			t.Errorf("check with %s: code %d, err %v", name, code, err)
		}
	}
	if code, _ := runApp(t, "settings", "-f", "ini", filepath.Join(dir, "s.ini")); code != 1 {
		t.Errorf("bad format: exit code %d, want 1", code)
	}
}

func TestSettingsPromptsForFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asked.toml")
	oldInput := util.Input
	util.Input = strings.NewReader(path + "\n")
	defer func() { util.Input = oldInput }()

	if code, err := runApp(t, "settings"); err != nil || code != -1 {
		t.Fatalf("code %d, err %v", code, err)
	}
	if _, err := config.Load(path); err != nil {
		t.Errorf("prompted file not written: %v", err)
	}
}

func TestExpressionTable(t *testing.T) {
	lx := lexer.NewAnalyzer(lexer.MustConfig(lexer.DefaultOptions()))
	lx.Analyze("DIM s AS STRING\nPRINT s + 1; s + \"x\"")
	sem := analyzer.NewAnalyzer(analyzer.DefaultKeywords())
	sem.Analyze(lx.Tokens())

	out := expressionTable(sem.Expressions())
	for _, want := range []string{"s + 1", "ill-typed", `s + "x"`, "STRING"} {
		if !strings.Contains(out, want) {
			t.Errorf("expression table missing %q:\n%s", want, out)
		}
	}
}

func TestBlockTree(t *testing.T) {
	lx := lexer.NewAnalyzer(lexer.MustConfig(lexer.DefaultOptions()))
	lx.Analyze("DIM i AS INTEGER\nFOR i = 1 TO 2\nIF i = 1 THEN\nPRINT i\nEND IF\n")
	sem := analyzer.NewAnalyzer(analyzer.DefaultKeywords())
	sem.Analyze(lx.Tokens())

	out := blockTree(sem)
	for _, want := range []string{"MAIN 0-4", "FOR 1-4", "IF 2-4"} {
		if !strings.Contains(out, want) {
			t.Errorf("block tree missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "unclosed") {
		t.Errorf("FOR block should be marked unclosed:\n%s", out)
	}
}

func TestTokenTable(t *testing.T) {
	lx := lexer.NewAnalyzer(lexer.MustConfig(lexer.DefaultOptions()))
	lx.Analyze("PRINT \"hi\"\nx")
	out := tokenTable(lx.TokensWithoutSpaces())
	for _, want := range []string{"PRINT", `"\"hi\""`, `\n`, "Identifier", "STRING"} {
		if !strings.Contains(out, want) {
			t.Errorf("token table missing %q:\n%s", want, out)
		}
	}
}
