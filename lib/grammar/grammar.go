package grammar

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/vyPal/BasicFront/lib/token"
)

// SymbolSpec is the settings form of a symbol: kind and category are given
// in the settings vocabulary ("terminalSymbol", "categoryIdentifier", ...).
type SymbolSpec struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Type     string `json:"type" yaml:"type" toml:"type"`
	Category string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
}

// ProductionSpec is the settings form of a production. Symbols are symbol
// names, the first one being the left-hand side.
type ProductionSpec struct {
	Number  int      `json:"number" yaml:"number" toml:"number"`
	Symbols []string `json:"symbols" yaml:"symbols" toml:"symbols"`
}

// Grammar is a validated set of symbols and productions. It is read-only
// once built.
type Grammar struct {
	symbols     *SymbolSet
	byName      map[string]Symbol
	productions []Production
	byNumber    map[int]int
	start       Symbol
}

// Build materializes a grammar from its settings form.
func Build(symbols []SymbolSpec, productions []ProductionSpec) (*Grammar, error) {
	syms := make([]Symbol, 0, len(symbols))
	byName := make(map[string]Symbol, len(symbols))
	for _, spec := range symbols {
		sym, err := NewSymbol(spec.Name, spec.Type, spec.Category)
		if err != nil {
			return nil, err
		}
		if _, ok := byName[sym.Name]; ok {
			return nil, errors.Errorf("symbol %q declared twice", sym.Name)
		}
		byName[sym.Name] = sym
		syms = append(syms, sym)
	}

	prods := make([]Production, 0, len(productions))
	for _, spec := range productions {
		rule := make([]Symbol, 0, len(spec.Symbols))
		for _, name := range spec.Symbols {
			sym, ok := byName[name]
			if !ok {
				return nil, errors.Errorf("production %d: undefined symbol %q", spec.Number, name)
			}
			rule = append(rule, sym)
		}
		p, err := NewProduction(spec.Number, rule)
		if err != nil {
			return nil, err
		}
		prods = append(prods, p)
	}
	return New(syms, prods)
}

// New validates symbols and productions and returns the grammar. There must
// be exactly one start symbol, every production must use declared symbols,
// have a nonterminal head and a unique number.
func New(symbols []Symbol, productions []Production) (*Grammar, error) {
	g := &Grammar{
		symbols:  NewSymbolSet(),
		byName:   make(map[string]Symbol),
		byNumber: make(map[int]int),
	}

	hasStart := false
	for _, sym := range symbols {
		if sym.Kind == Start {
			if hasStart && sym.Name != g.start.Name {
				return nil, errors.Errorf("multiple start symbols: <%s> and <%s>", g.start.Name, sym.Name)
			}
			hasStart = true
			g.start = sym
		}
		if g.symbols.Add(sym) {
			g.byName[sym.Name] = sym
		}
	}
	if !hasStart {
		return nil, errors.New("grammar has no start symbol")
	}

	for _, p := range productions {
		if len(p.Symbols) == 0 {
			return nil, errors.Errorf("production %d has no symbols", p.Number)
		}
		if _, ok := g.byNumber[p.Number]; ok {
			return nil, errors.Errorf("production number %d used twice", p.Number)
		}
		if p.Head().IsTerminal() {
			return nil, errors.Errorf("production %d: terminal %s as left-hand side", p.Number, p.Head())
		}
		for _, sym := range p.Symbols {
			if !g.symbols.Contains(sym) {
				return nil, errors.Errorf("production %d: undeclared symbol %s", p.Number, sym)
			}
		}
		g.byNumber[p.Number] = len(g.productions)
		g.productions = append(g.productions, p)
	}
	return g, nil
}

func (g *Grammar) Start() Symbol {
	return g.start
}

func (g *Grammar) Symbols() []Symbol {
	return g.symbols.Symbols()
}

func (g *Grammar) Terminals() []Symbol {
	return g.filter(func(s Symbol) bool { return s.Kind == Terminal })
}

// Nonterminals returns the nonterminal symbols, the start symbol included.
func (g *Grammar) Nonterminals() []Symbol {
	return g.filter(func(s Symbol) bool { return s.Kind != Terminal })
}

func (g *Grammar) filter(keep func(Symbol) bool) []Symbol {
	var out []Symbol
	for _, s := range g.symbols.Symbols() {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (g *Grammar) Lookup(name string) (Symbol, bool) {
	s, ok := g.byName[name]
	return s, ok
}

func (g *Grammar) Productions() []Production {
	return g.productions
}

func (g *Grammar) Production(number int) (Production, bool) {
	i, ok := g.byNumber[number]
	if !ok {
		return Production{}, false
	}
	return g.productions[i], true
}

// ProductionsFor returns the rules whose left-hand side equals head.
func (g *Grammar) ProductionsFor(head Symbol) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.Head().Equal(head) {
			out = append(out, p)
		}
	}
	return out
}

// Match returns the terminals tok matches.
func (g *Grammar) Match(tok token.Token) []Symbol {
	var out []Symbol
	for _, s := range g.symbols.Symbols() {
		if Matches(tok, s) {
			out = append(out, s)
		}
	}
	return out
}

func (g *Grammar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start       Symbol       `json:"start"`
		Symbols     []Symbol     `json:"symbols"`
		Productions []Production `json:"productions"`
	}{g.start, g.Symbols(), g.productions})
}
