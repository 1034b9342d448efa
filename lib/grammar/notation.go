package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/vyPal/BasicFront/lib/token"
)

// Grammar files use a small BNF notation:
//
//	<Program>   ::= <Statement> LineFeed <Program> | %empty ;
//	<Statement> ::= "DIM" Identifier "AS" <Type> ;
//
// The head of the first rule is the start symbol. Quoted items are terminals
// matched by lexeme, bare names are terminals matched by token category.

type notationFile struct {
	Rules []*notationRule `parser:"@@*"`
}

type notationRule struct {
	Pos          lexer.Position
	Head         string                 `parser:"'<' @Ident '>' ':' ':' '='"`
	Alternatives []*notationAlternative `parser:"@@ ( '|' @@ )* ';'"`
}

type notationAlternative struct {
	Items []*notationItem `parser:"@@+"`
}

type notationItem struct {
	Pos         lexer.Position
	Empty       bool    `parser:"  @( '%' 'empty' )"`
	Nonterminal string  `parser:"| '<' @Ident '>'"`
	Literal     *string `parser:"| @String"`
	Category    string  `parser:"| @Ident"`
}

var notationParser = participle.MustBuild[notationFile](
	participle.Unquote("String"),
	participle.Elide("Comment"),
)

// ParseNotation parses a grammar written in BNF notation. Productions are
// numbered from 1 in order of appearance.
func ParseNotation(filename, src string) (*Grammar, error) {
	file, err := notationParser.ParseString(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse grammar")
	}
	if len(file.Rules) == 0 {
		return nil, errors.Errorf("%s: grammar has no rules", filename)
	}

	c := &notationCompiler{
		start:   file.Rules[0].Head,
		heads:   make(map[string]bool),
		symbols: NewSymbolSet(),
	}
	for _, rule := range file.Rules {
		c.heads[rule.Head] = true
	}
	for _, rule := range file.Rules {
		if err := c.rule(rule); err != nil {
			return nil, err
		}
	}
	return New(c.symbols.Symbols(), c.productions)
}

type notationCompiler struct {
	start       string
	heads       map[string]bool
	symbols     *SymbolSet
	productions []Production
}

func (c *notationCompiler) nonterminal(name string) Symbol {
	if name == c.start {
		return NewStart(name)
	}
	return NewNonterminal(name)
}

func (c *notationCompiler) rule(rule *notationRule) error {
	head := c.nonterminal(rule.Head)
	c.symbols.Add(head)
	for _, alt := range rule.Alternatives {
		symbols := []Symbol{head}
		for _, item := range alt.Items {
			if item.Empty {
				if len(alt.Items) > 1 {
					return participle.Errorf(item.Pos, "%%empty must be the only item of an alternative")
				}
				continue
			}
			sym, err := c.item(item)
			if err != nil {
				return err
			}
			c.symbols.Add(sym)
			symbols = append(symbols, sym)
		}
		c.productions = append(c.productions, Production{Number: len(c.productions) + 1, Symbols: symbols})
	}
	return nil
}

func (c *notationCompiler) item(item *notationItem) (Symbol, error) {
	switch {
	case item.Nonterminal != "":
		if !c.heads[item.Nonterminal] {
			return Symbol{}, participle.Errorf(item.Pos, "undefined nonterminal <%s>", item.Nonterminal)
		}
		return c.nonterminal(item.Nonterminal), nil
	case item.Literal != nil:
		if *item.Literal == "" {
			return Symbol{}, participle.Errorf(item.Pos, "empty terminal")
		}
		return NewTerminal(*item.Literal), nil
	default:
		category, ok := token.ParseCategory(item.Category)
		if !ok || !isClass(category) {
			return Symbol{}, errors.Wrap(ErrUnknownCategory, participle.Errorf(item.Pos, "%q", item.Category).Error())
		}
		return NewClassTerminal(item.Category, category), nil
	}
}

// Notation renders g in the notation read by ParseNotation.
func (g *Grammar) Notation() string {
	var sb strings.Builder
	var order []Symbol
	seen := NewSymbolSet()
	if len(g.ProductionsFor(g.start)) > 0 {
		seen.Add(g.start)
		order = append(order, g.start)
	}
	for _, p := range g.productions {
		if seen.Add(p.Head()) {
			order = append(order, p.Head())
		}
	}
	for _, head := range order {
		sb.WriteString(head.String())
		sb.WriteString(" ::=")
		for i, p := range g.ProductionsFor(head) {
			if i > 0 {
				sb.WriteString("\n    |")
			}
			if len(p.Body()) == 0 {
				sb.WriteString(" %empty")
			}
			for _, s := range p.Body() {
				sb.WriteByte(' ')
				sb.WriteString(s.String())
			}
		}
		sb.WriteString(" ;\n")
	}
	return sb.String()
}
