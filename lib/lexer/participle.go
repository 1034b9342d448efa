package lexer

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/vyPal/BasicFront/lib/token"
)

// Definition exposes the Analyzer as a participle lexer so that a participle
// grammar can be run over the token stream. Space tokens are elided and an
// invalid token stops the parse with its diagnostic.
type Definition struct {
	cfg *Config
}

var _ plexer.Definition = (*Definition)(nil)

// NewDefinition constructs a participle lexer Definition over cfg.
func NewDefinition(cfg *Config) *Definition {
	return &Definition{cfg: cfg}
}

// TokenType returns the participle token type used for category c.
func TokenType(c token.Category) plexer.TokenType {
	return plexer.TokenType(-(int(c) + 2))
}

// CategoryOf maps a token type produced by a Definition back to its
// category. Other types, EOF included, map to None.
func CategoryOf(tt plexer.TokenType) token.Category {
	c := token.Category(-int(tt) - 2)
	if c <= token.None || c > token.StringLiteral {
		return token.None
	}
	return c
}

// FromParticiple converts a token read from a Definition's lexer back into
// a token at its zero-based position.
func FromParticiple(t plexer.Token) token.Token {
	pos := token.Position{Line: t.Pos.Line - 1, Column: t.Pos.Column - 1}
	return token.New(t.Value, CategoryOf(t.Type)).At(pos)
}

func (d *Definition) Symbols() map[string]plexer.TokenType {
	return map[string]plexer.TokenType{
		"EOF":      plexer.EOF,
		"Char":     TokenType(token.CharToken),
		"Ident":    TokenType(token.Identifier),
		"Keyword":  TokenType(token.Keyword),
		"LineFeed": TokenType(token.LineFeed),
		"Number":   TokenType(token.NumberLiteral),
		"String":   TokenType(token.StringLiteral),
	}
}

func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}
	return LexString(d.cfg, filename, string(src)), nil
}

// LexString analyzes src and returns a participle lexer over the result.
func LexString(cfg *Config, filename, src string) plexer.Lexer {
	a := NewAnalyzer(cfg)
	a.Analyze(src)
	return newStreamLexer(filename, a.Tokens(), src)
}

// streamLexer replays an analyzed token stream.
type streamLexer struct {
	filename string
	tokens   []token.Token
	offsets  []int
	next     int
	eof      plexer.Position
}

func newStreamLexer(filename string, tokens []token.Token, src string) *streamLexer {
	l := &streamLexer{filename: filename}
	offset := 0
	for _, t := range tokens {
		if t.Category != token.Space {
			l.tokens = append(l.tokens, t)
			l.offsets = append(l.offsets, offset)
		}
		offset += len(t.Lexeme)
	}

	lastLine := strings.LastIndexByte(src, '\n')
	l.eof = plexer.Position{
		Filename: filename,
		Offset:   len(src),
		Line:     strings.Count(src, "\n") + 1,
		Column:   len([]rune(src[lastLine+1:])) + 1,
	}
	return l
}

func (l *streamLexer) Next() (plexer.Token, error) {
	if l.next >= len(l.tokens) {
		return plexer.Token{Type: plexer.EOF, Pos: l.eof}, nil
	}
	t := l.tokens[l.next]
	pos := plexer.Position{
		Filename: l.filename,
		Offset:   l.offsets[l.next],
		Line:     t.Pos.Line + 1,
		Column:   t.Pos.Column + 1,
	}
	l.next++

	if !t.IsValid() {
		return plexer.Token{}, participle.Errorf(pos, "%s", t.Err)
	}
	return plexer.Token{Type: TokenType(t.Category), Value: t.Lexeme, Pos: pos}, nil
}
