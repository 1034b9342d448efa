package lexer

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/vyPal/BasicFront/lib/token"
)

type testDeclaration struct {
	Pos  plexer.Position
	Name string `parser:"'DIM' @Ident"`
	Type string `parser:"'AS' @Keyword"`
}

type testProgram struct {
	Declarations []*testDeclaration `parser:"( @@ LineFeed* )*"`
}

func newTestParser(t *testing.T) *participle.Parser[testProgram] {
	t.Helper()
	def := NewDefinition(MustConfig(DefaultOptions()))
	parser, err := participle.Build[testProgram](participle.Lexer(def))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return parser
}

func TestParticipleDefinition(t *testing.T) {
	parser := newTestParser(t)
	prog, err := parser.ParseString("test.bas", "DIM x AS INTEGER\nDIM  y AS STRING\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(prog.Declarations) != 2 {
		t.Fatalf("got %d declarations, want 2", len(prog.Declarations))
	}
	if d := prog.Declarations[0]; d.Name != "x" || d.Type != "INTEGER" {
		t.Errorf("first declaration = %+v", d)
	}
	if d := prog.Declarations[1]; d.Name != "y" || d.Type != "STRING" {
		t.Errorf("second declaration = %+v", d)
	}
	if pos := prog.Declarations[1].Pos; pos.Line != 2 || pos.Column != 1 || pos.Offset != 17 {
		t.Errorf("second declaration position = %+v, want 2:1 offset 17", pos)
	}
}

func TestParticipleInvalidToken(t *testing.T) {
	parser := newTestParser(t)
	_, err := parser.ParseString("test.bas", "DIM 5. AS INTEGER")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "digit required after '.'") {
		t.Errorf("error = %v, want the number literal diagnostic", err)
	}
}

func TestStreamLexerEOF(t *testing.T) {
	l := LexString(MustConfig(DefaultOptions()), "", "A B\nC")
	var values []string
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.EOF() {
			if tok.Pos.Line != 2 || tok.Pos.Column != 2 || tok.Pos.Offset != 5 {
				t.Errorf("EOF position = %+v", tok.Pos)
			}
			break
		}
		values = append(values, tok.Value)
	}
	if got := strings.Join(values, "|"); got != "A|B|\n|C" {
		t.Errorf("values = %q", got)
	}
}

func TestFromParticiple(t *testing.T) {
	def := NewDefinition(MustConfig(DefaultOptions()))
	l, err := def.Lex("", strings.NewReader("PRINT x\n  1.5"))
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Token{
		token.New("PRINT", token.Keyword).At(token.Position{Line: 0, Column: 0}),
		token.New("x", token.Identifier).At(token.Position{Line: 0, Column: 6}),
		token.New("\n", token.LineFeed).At(token.Position{Line: 0, Column: 7}),
		token.New("1.5", token.NumberLiteral).At(token.Position{Line: 1, Column: 2}),
	}
	for i := 0; ; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.EOF() {
			if i != len(want) {
				t.Errorf("got %d tokens, want %d", i, len(want))
			}
			break
		}
		if i >= len(want) {
			t.Fatalf("unexpected token %v", tok)
		}
		if got := FromParticiple(tok); got != want[i] {
			t.Errorf("token %d = %v at %s, want %v at %s", i, got, got.Pos, want[i], want[i].Pos)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	for c := token.CharToken; c <= token.StringLiteral; c++ {
		if got := CategoryOf(TokenType(c)); got != c {
			t.Errorf("CategoryOf(TokenType(%s)) = %s", c, got)
		}
	}
	if got := CategoryOf(plexer.EOF); got != token.None {
		t.Errorf("CategoryOf(EOF) = %s", got)
	}
}
