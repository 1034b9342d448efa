package grammar

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vyPal/BasicFront/lib/token"
)

var (
	ErrUnknownKind     = errors.New("unknown symbol kind")
	ErrUnknownCategory = errors.New("unknown symbol category")
)

// Kind is the role of a symbol in the grammar.
type Kind int

const (
	Terminal Kind = iota
	Nonterminal
	Start
)

var kindNames = map[string]Kind{
	"terminalSymbol":    Terminal,
	"nonterminalSymbol": Nonterminal,
	"startSymbol":       Start,
}

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminalSymbol"
	case Nonterminal:
		return "nonterminalSymbol"
	case Start:
		return "startSymbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind maps the settings vocabulary to a Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindNames[s]; ok {
		return k, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Symbol is one element of the grammar alphabet. Category is meaningful only
// for terminals identified by token class rather than by lexeme.
type Symbol struct {
	Name     string         `json:"name"`
	Kind     Kind           `json:"kind"`
	Category token.Category `json:"category,omitempty"`
}

// NewSymbol builds a symbol from its settings strings. An empty category
// leaves the symbol lexeme-based.
func NewSymbol(name, kind, category string) (Symbol, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Symbol{}, errors.Wrapf(err, "symbol %q", name)
	}
	c := token.None
	if category != "" {
		var ok bool
		if c, ok = token.ParseCategory(category); !ok {
			return Symbol{}, errors.Wrapf(ErrUnknownCategory, "symbol %q: %q", name, category)
		}
	}
	return Symbol{Name: name, Kind: k, Category: c}, nil
}

func NewTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// NewClassTerminal returns a terminal matched by token category.
func NewClassTerminal(name string, category token.Category) Symbol {
	return Symbol{Name: name, Kind: Terminal, Category: category}
}

func NewNonterminal(name string) Symbol {
	return Symbol{Name: name, Kind: Nonterminal}
}

func NewStart(name string) Symbol {
	return Symbol{Name: name, Kind: Start}
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// Equal reports whether s and o denote the same symbol: same name and kind,
// or both the start symbol whatever their names.
func (s Symbol) Equal(o Symbol) bool {
	if s.Kind == Start && o.Kind == Start {
		return true
	}
	return s.Name == o.Name && s.Kind == o.Kind
}

// Key returns a map key consistent with Equal.
func (s Symbol) Key() string {
	if s.Kind == Start {
		return "start"
	}
	return s.Kind.String() + ":" + s.Name
}

// Matches reports whether tok matches s. See Matches.
func (s Symbol) Matches(tok token.Token) bool {
	return Matches(tok, s)
}

func (s Symbol) String() string {
	switch {
	case s.Kind != Terminal:
		return "<" + s.Name + ">"
	case isClass(s.Category):
		return s.Category.String()
	default:
		return fmt.Sprintf("%q", s.Name)
	}
}

// isClass reports whether tokens of category c are matched by class.
func isClass(c token.Category) bool {
	switch c {
	case token.NumberLiteral, token.StringLiteral, token.Identifier, token.LineFeed:
		return true
	}
	return false
}

// Matches reports whether tok matches the grammar symbol sym. Literal,
// identifier and line feed tokens match the terminal of their category;
// every other token matches the terminal named by its lexeme. Nonterminals
// never match.
func Matches(tok token.Token, sym Symbol) bool {
	if sym.Kind != Terminal {
		return false
	}
	if isClass(tok.Category) {
		return sym.Category == tok.Category
	}
	return sym.Name == tok.Lexeme
}
