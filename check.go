package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/analyzer"
	"github.com/vyPal/BasicFront/lib/lexer"
	"github.com/vyPal/BasicFront/lib/token"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "check",
		Usage:     "Run the lexical and semantic analyzers on a source file",
		Category:  "analysis",
		ArgsUsage: "<file>",
		Flags:     sourceFlags(),
		Action:    checkSource,
	})
}

type blockReport struct {
	analyzer.Block
	Children []blockReport `json:"children,omitempty"`
}

type checkReport struct {
	Blocks         blockReport             `json:"blocks"`
	Declarations   []token.IdentifierEntry `json:"declarations"`
	Expressions    []analyzer.Expression   `json:"expressions"`
	LexicalErrors  []lexer.Diagnostic      `json:"lexicalErrors"`
	SemanticErrors []analyzer.Diagnostic   `json:"semanticErrors"`
}

func reportBlock(a *analyzer.Analyzer, id analyzer.BlockID) blockReport {
	r := blockReport{Block: a.Block(id)}
	for _, child := range a.Children(id) {
		r.Children = append(r.Children, reportBlock(a, child))
	}
	return r
}

func checkSource(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading settings: %s", err), 1)
	}
	lx, err := runLexer(c, s, c.Args().First())
	if err != nil {
		return err
	}

	sem := analyzer.NewAnalyzer(s.Keywords())
	sem.Analyze(lx.Tokens())
	log.Printf("%d blocks, %d declarations, %d semantic errors",
		countBlocks(sem, sem.Root()), len(sem.Declarations()), len(sem.Diagnostics()))
	if sem.Overlaps() {
		log.Printf("sibling blocks overlap, block lookup by line is ambiguous")
	}

	if c.Bool("json") {
		report := checkReport{
			Blocks:         reportBlock(sem, sem.Root()),
			Declarations:   sem.Declarations(),
			Expressions:    sem.Expressions(),
			LexicalErrors:  lx.Diagnostics(),
			SemanticErrors: sem.Diagnostics(),
		}
		if err := writeJSON(report); err != nil {
			return cli.Exit(color.RedString("Error encoding report: %s", err), 1)
		}
	} else {
		heading("Blocks")
		fmt.Println(blockTree(sem))
		heading("Declarations")
		fmt.Println(declarationTable(sem.Declarations()))
		heading("Expressions")
		fmt.Println(expressionTable(sem.Expressions()))
		printErrors("Lexical analysis", lx.ErrorText())
		printErrors("Semantic analysis", sem.ErrorText())
	}

	if len(lx.Diagnostics())+len(sem.Diagnostics()) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func countBlocks(a *analyzer.Analyzer, id analyzer.BlockID) int {
	n := 1
	for _, child := range a.Children(id) {
		n += countBlocks(a, child)
	}
	return n
}
