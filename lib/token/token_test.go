package token

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Identifier", Identifier, true},
		{"categoryIdentifier", Identifier, true},
		{"categoryNumberLiteral", NumberLiteral, true},
		{"linefeed", LineFeed, true},
		{"categoryNumber", None, false},
		{"", None, false},
	}
	for _, test := range tests {
		got, ok := ParseCategory(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("ParseCategory(%q) = %s, %v, want %s, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"INTEGER", TypeInteger},
		{"integer", TypeInteger},
		{"DOUBLE", TypeDouble},
		{"STRING", TypeString},
		{"BOOLEAN", TypeBoolean},
		{"WIDGET", TypeNone},
	}
	for _, test := range tests {
		if got := ParseType(test.in); got != test.want {
			t.Errorf("ParseType(%q) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New("x", Identifier), `<Identifier "x">`},
		{New("\n", LineFeed), `<LineFeed "\\n">`},
		{Invalid("5.", "bad"), `<None "5." !bad>`},
		{New("?", None), `<None "?" !incorrect token>`},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("String() = %s, want %s", got, test.want)
		}
	}
}

func TestDeclarationScope(t *testing.T) {
	id := NewDeclaration("i", TypeInteger, Position{Line: 3, Column: 4}, 3, 1)
	if id.ScopeBegin != 3 || id.ScopeEnd != 3 {
		t.Errorf("scope = [%d, %d], want [3, 3]", id.ScopeBegin, id.ScopeEnd)
	}
	id = NewDeclaration("i", TypeInteger, Position{Line: 3, Column: 4}, 3, 7)
	for line, want := range map[int]bool{2: false, 3: true, 7: true, 8: false} {
		if got := id.InScope(line); got != want {
			t.Errorf("InScope(%d) = %v, want %v", line, got, want)
		}
	}
}

func TestReconstruct(t *testing.T) {
	tokens := []Token{New("PRINT", Keyword), New(" ", Space), New("x", Identifier), New("\n", LineFeed)}
	if got := Reconstruct(tokens); got != "PRINT x\n" {
		t.Errorf("Reconstruct = %q", got)
	}
}
