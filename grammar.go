package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vyPal/BasicFront/lib/config"
	"github.com/vyPal/BasicFront/lib/grammar"
	"github.com/vyPal/BasicFront/lib/lexer"
	"github.com/vyPal/BasicFront/lib/token"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:     "grammar",
		Usage:    "Validate and print the grammar used by the syntax analyzer",
		Category: "grammar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bnf",
				Usage: "Read the grammar from a BNF file instead of the settings",
			},
			&cli.BoolFlag{
				Name:  "notation",
				Usage: "Print the grammar in BNF notation",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "Lex a file and show the terminals each token matches",
			},
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Match a string instead of a file",
			},
			&cli.BoolFlag{
				Name:    "upper",
				Aliases: []string{"u"},
				Usage:   "Upper-case the matched source",
			},
		},
		Action: showGrammar,
	})
}

func loadGrammar(c *cli.Context, s *config.Settings) (*grammar.Grammar, error) {
	path := c.String("bnf")
	if path == "" {
		return s.BuildGrammar()
	}
	log.Printf("loading grammar from %s", path)
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return grammar.ParseNotation(path, string(src))
}

func showGrammar(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return cli.Exit(color.RedString("Error loading settings: %s", err), 1)
	}
	g, err := loadGrammar(c, s)
	if err != nil {
		return cli.Exit(color.RedString("Error in grammar: %s", err), 1)
	}
	log.Printf("grammar: %d symbols, %d productions, start %s",
		len(g.Symbols()), len(g.Productions()), g.Start())

	if c.IsSet("match") || c.IsSet("input-str") {
		return matchSource(c, s, g)
	}

	switch {
	case c.Bool("json"):
		if err := writeJSON(g); err != nil {
			return cli.Exit(color.RedString("Error encoding grammar: %s", err), 1)
		}
	case c.Bool("notation"):
		fmt.Print(g.Notation())
	default:
		heading("Symbols")
		fmt.Println(symbolTable(g))
		heading("Productions")
		for _, p := range g.Productions() {
			fmt.Println(p)
		}
	}
	return nil
}

// matchSource reads the source through the participle lexer adapter, the
// token stream a participle-based syntax analyzer would see.
func matchSource(c *cli.Context, s *config.Settings, g *grammar.Grammar) error {
	cfg, err := s.LexerConfig()
	if err != nil {
		return cli.Exit(color.RedString("Error in lexer settings: %s", err), 1)
	}
	src, name, err := readSource(c, c.String("match"))
	if err != nil {
		return err
	}
	lx, err := lexer.NewDefinition(cfg).Lex(name, strings.NewReader(src))
	if err != nil {
		return cli.Exit(color.RedString("Error reading %s: %s", name, err), 1)
	}

	var tokens []token.Token
	for {
		t, err := lx.Next()
		if err != nil {
			return cli.Exit(color.RedString("Error in source: %s", err), 1)
		}
		if t.EOF() {
			break
		}
		tokens = append(tokens, lexer.FromParticiple(t))
	}
	log.Printf("%s: %d tokens", name, len(tokens))

	if c.Bool("json") {
		type match struct {
			Lexeme    string           `json:"lexeme"`
			Position  string           `json:"position"`
			Terminals []grammar.Symbol `json:"terminals"`
		}
		matches := make([]match, len(tokens))
		for i, tok := range tokens {
			matches[i] = match{tok.Lexeme, tok.Pos.String(), g.Match(tok)}
		}
		if err := writeJSON(matches); err != nil {
			return cli.Exit(color.RedString("Error encoding matches: %s", err), 1)
		}
		return nil
	}
	heading("Matches")
	fmt.Println(matchTable(g, tokens))
	return nil
}
