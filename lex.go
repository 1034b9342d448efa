package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/config"
	"github.com/vyPal/BasicFront/lib/lexer"
	"github.com/vyPal/BasicFront/lib/token"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "lex",
		Usage:     "Split a source file into tokens and build the identifier table",
		Category:  "analysis",
		ArgsUsage: "<file>",
		Flags: append(sourceFlags(), &cli.BoolFlag{
			Name:  "spaces",
			Usage: "Include whitespace tokens in the output",
		}),
		Action: lexSource,
	})
}

type lexReport struct {
	Tokens      []token.Token      `json:"tokens"`
	Identifiers []token.IdentifierEntry `json:"identifiers"`
	Errors      []lexer.Diagnostic `json:"errors"`
}

func runLexer(c *cli.Context, s *config.Settings, path string) (*lexer.Analyzer, error) {
	cfg, err := s.LexerConfig()
	if err != nil {
		return nil, cli.Exit(color.RedString("Error in lexer settings: %s", err), 1)
	}
	src, name, err := readSource(c, path)
	if err != nil {
		return nil, err
	}

	lx := lexer.NewAnalyzer(cfg)
	lx.Analyze(src)
	log.Printf("%s: %d tokens, %d identifiers, %d lexical errors",
		name, len(lx.Tokens()), len(lx.Identifiers()), len(lx.Diagnostics()))
	return lx, nil
}

func lexSource(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading settings: %s", err), 1)
	}
	lx, err := runLexer(c, s, c.Args().First())
	if err != nil {
		return err
	}

	tokens := lx.TokensWithoutSpaces()
	if c.Bool("spaces") {
		tokens = lx.Tokens()
	}

	if c.Bool("json") {
		report := lexReport{Tokens: tokens, Identifiers: lx.Identifiers(), Errors: lx.Diagnostics()}
		if err := writeJSON(report); err != nil {
			return cli.Exit(color.RedString("Error encoding tokens: %s", err), 1)
		}
	} else {
		heading("Tokens")
		fmt.Println(tokenTable(tokens))
		heading("Identifiers")
		fmt.Println(identifierTable(lx.Identifiers()))
		printErrors("Lexical analysis", lx.ErrorText())
	}

	if len(lx.Diagnostics()) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}
