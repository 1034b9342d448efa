package grammar

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/vyPal/BasicFront/lib/token"
)

const testNotation = `
// BASIC declarations
<Program>   ::= <Statement> LineFeed <Program>
              | %empty ;
<Statement> ::= "DIM" Identifier "AS" <Type>
              | "PRINT" <Value> ;
<Type>      ::= "INTEGER" | "STRING" ;
<Value>     ::= NumberLiteral | StringLiteral | Identifier ;
`

func TestParseNotation(t *testing.T) {
	g, err := ParseNotation("basic.bnf", testNotation)
	if err != nil {
		t.Fatalf("ParseNotation: %v", err)
	}
	if g.Start().Name != "Program" || g.Start().Kind != Start {
		t.Errorf("start = %+v", g.Start())
	}
	if n := len(g.Productions()); n != 9 {
		t.Fatalf("got %d productions, want 9", n)
	}

	p, _ := g.Production(1)
	want := []Symbol{
		NewStart("Program"),
		NewNonterminal("Statement"),
		NewClassTerminal("LineFeed", token.LineFeed),
		NewStart("Program"),
	}
	if len(p.Symbols) != len(want) {
		t.Fatalf("production 1 = %v", p)
	}
	for i := range want {
		if !p.Symbols[i].Equal(want[i]) || p.Symbols[i].Category != want[i].Category {
			t.Errorf("production 1 symbol %d = %+v, want %+v", i, p.Symbols[i], want[i])
		}
	}
	if p, _ := g.Production(2); len(p.Body()) != 0 {
		t.Errorf("production 2 = %v, want epsilon rule", p)
	}
	if p, _ := g.Production(3); p.Body()[0].Name != "DIM" || p.Body()[0].Category != token.None {
		t.Errorf("production 3 = %v", p)
	}

	if m := g.Match(token.New("42", token.NumberLiteral)); len(m) != 1 || m[0].Category != token.NumberLiteral {
		t.Errorf("number matches %v", m)
	}
	if m := g.Match(token.New("PRINT", token.Keyword)); len(m) != 1 || m[0].Name != "PRINT" {
		t.Errorf("PRINT matches %v", m)
	}
}

func TestNotationRoundTrip(t *testing.T) {
	g, err := ParseNotation("basic.bnf", testNotation)
	if err != nil {
		t.Fatalf("ParseNotation: %v", err)
	}
	again, err := ParseNotation("again.bnf", g.Notation())
	if err != nil {
		t.Fatalf("ParseNotation(Notation()): %v\n%s", err, g.Notation())
	}
	if again.Notation() != g.Notation() {
		t.Errorf("round trip differs:\n%s\nvs\n%s", again.Notation(), g.Notation())
	}
	if len(again.Productions()) != len(g.Productions()) {
		t.Errorf("got %d productions, want %d", len(again.Productions()), len(g.Productions()))
	}
}

func TestParseNotationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "no rules"},
		{"syntax", `<A> ::= "a"`, "parse grammar"},
		{"undefined", `<A> ::= <B> ;`, "undefined nonterminal <B>"},
		{"empty_with_items", `<A> ::= "a" %empty ;`, "only item"},
		{"bad_category", `<A> ::= Keyword ;`, "unknown symbol category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotation("test.bnf", tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}

	_, err := ParseNotation("test.bnf", `<A> ::= Bogus ;`)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}
