package lexer

import (
	"fmt"
	"strings"

	"github.com/vyPal/BasicFront/lib/token"
)

// Diagnostic is a lexical error attached to an invalid token.
type Diagnostic struct {
	Pos     token.Position `json:"position"`
	Lexeme  string         `json:"lexeme"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("(%d:%d)\t%s", d.Pos.Line, d.Pos.Column, d.Message)
}

// Analyzer turns source text into a token stream and an identifier table.
// Every call to Analyze replaces the previous results. An Analyzer must not
// be used from several goroutines at once.
type Analyzer struct {
	cfg *Config

	tokens      []token.Token
	identifiers []token.IdentifierEntry
	index       map[string]int
	diagnostics []Diagnostic
	errText     strings.Builder
}

func NewAnalyzer(cfg *Config) *Analyzer {
	return &Analyzer{cfg: cfg, index: make(map[string]int)}
}

func (a *Analyzer) Config() *Config {
	return a.cfg
}

func (a *Analyzer) reset() {
	a.tokens = nil
	a.identifiers = nil
	a.index = make(map[string]int)
	a.diagnostics = nil
	a.errText.Reset()
}

// Analyze tokenizes src. Lines are separated by "\n"; a LineFeed token is
// placed between consecutive lines.
func (a *Analyzer) Analyze(src string) {
	a.reset()
	prevLen := 0
	for lineNumber, line := range strings.Split(src, "\n") {
		if lineNumber > 0 {
			lf := token.New("\n", token.LineFeed)
			a.tokens = append(a.tokens, lf.At(token.Position{Line: lineNumber - 1, Column: prevLen}))
		}
		runes := []rune(line)
		a.analyzeLine(runes, lineNumber)
		prevLen = len(runes)
	}
}

func (a *Analyzer) analyzeLine(line []rune, lineNumber int) {
	column := 0
	for column < len(line) {
		tok := a.nextToken(line[column:])
		tok = tok.At(token.Position{Line: lineNumber, Column: column})

		if tok.Category == token.Identifier {
			tok.Ident = a.addIdentifier(tok.Lexeme, tok.Pos)
		}
		if !tok.IsValid() {
			a.addError(tok)
		}
		a.tokens = append(a.tokens, tok)

		width := len([]rune(tok.Lexeme))
		if width == 0 {
			width = 1
		}
		column += width
	}
}

func (a *Analyzer) addIdentifier(name string, pos token.Position) int {
	if i, ok := a.index[name]; ok {
		a.identifiers[i].AddPosition(pos)
		return i
	}
	a.identifiers = append(a.identifiers, token.NewIdentifier(name, pos))
	a.index[name] = len(a.identifiers) - 1
	return len(a.identifiers) - 1
}

func (a *Analyzer) addError(tok token.Token) {
	d := Diagnostic{Pos: tok.Pos, Lexeme: tok.Lexeme, Message: tok.Err}
	a.diagnostics = append(a.diagnostics, d)
	a.errText.WriteString(d.String())
	a.errText.WriteByte('\n')
}

// nextToken extracts the token at the start of src, which is never empty.
func (a *Analyzer) nextToken(src []rune) token.Token {
	first := src[0]
	switch {
	case a.cfg.isSpace(first):
		return a.spaceToken(src)
	case isDigit(first) || first == '.':
		return a.numberToken(src)
	case isLetter(first) || first == '_':
		return a.wordToken(src)
	case hasPrefix(src, a.cfg.delimiter):
		return a.stringToken(src)
	}

	if op, ok := a.cfg.operators.longestMatch(src); ok {
		return token.New(op, token.CharToken)
	}

	end := a.cfg.nextTerminator(src, 1)
	return token.Invalid(string(src[:end]), "unknown string")
}

func (a *Analyzer) spaceToken(src []rune) token.Token {
	end := 1
	for end < len(src) && a.cfg.isSpace(src[end]) {
		end++
	}
	return token.New(string(src[:end]), token.Space)
}

// wordToken scans a run of word characters and classifies it as a keyword
// or an identifier. Keywords win over identifiers.
func (a *Analyzer) wordToken(src []rune) token.Token {
	end := 1
	for end < len(src) && isWordChar(src[end]) {
		end++
	}
	lexeme := string(src[:end])

	if a.cfg.IsKeyword(lexeme) {
		return keywordToken(lexeme)
	}
	if !a.cfg.identifier.MatchString(lexeme) {
		return token.Invalid(lexeme, "invalid identifier")
	}
	if exceeds(end, a.cfg.maxIdentifier) {
		return token.Invalid(lexeme, fmt.Sprintf("identifier length exceeds maximum of %d characters", a.cfg.maxIdentifier))
	}
	return token.New(lexeme, token.Identifier)
}

func keywordToken(lexeme string) token.Token {
	tok := token.New(lexeme, token.Keyword)
	if lexeme == "TRUE" || lexeme == "FALSE" {
		tok = tok.WithType(token.TypeBoolean)
	}
	return tok
}

// stringToken scans from the opening delimiter to the next delimiter on the
// same line.
func (a *Analyzer) stringToken(src []rune) token.Token {
	delim := a.cfg.delimiter
	closing := indexRunes(src, delim, len(delim))
	if closing < 0 {
		return token.Invalid(string(src), fmt.Sprintf("missing closing delimiter %s", string(delim)))
	}

	end := closing + len(delim)
	lexeme := string(src[:end])
	if a.cfg.maxString > 0 && end > a.cfg.maxString+2*len(delim) {
		return token.Invalid(lexeme, fmt.Sprintf("string literal too long: length exceeds maximum of %d characters", a.cfg.maxString))
	}
	return token.New(lexeme, token.StringLiteral).WithType(token.TypeString)
}

// Tokens returns the full token stream, spaces and line feeds included.
func (a *Analyzer) Tokens() []token.Token {
	return a.tokens
}

// TokensWithoutSpaces returns the stream with Space tokens removed, the
// form consumed by a syntax analyzer.
func (a *Analyzer) TokensWithoutSpaces() []token.Token {
	out := make([]token.Token, 0, len(a.tokens))
	for _, t := range a.tokens {
		if t.Category != token.Space {
			out = append(out, t)
		}
	}
	return out
}

func (a *Analyzer) Identifiers() []token.IdentifierEntry {
	return a.identifiers
}

// IdentifierIndex returns the identifier-table row of name, or -1.
func (a *Analyzer) IdentifierIndex(name string) int {
	if i, ok := a.index[name]; ok {
		return i
	}
	return -1
}

func (a *Analyzer) Diagnostics() []Diagnostic {
	return a.diagnostics
}

// ErrorText returns one "(line:column)\t<message>" line per invalid token.
func (a *Analyzer) ErrorText() string {
	return a.errText.String()
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWordChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func hasPrefix(src, prefix []rune) bool {
	if len(prefix) == 0 || len(src) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if src[i] != r {
			return false
		}
	}
	return true
}

func indexRunes(src, sub []rune, from int) int {
	for i := from; i+len(sub) <= len(src); i++ {
		if hasPrefix(src[i:], sub) {
			return i
		}
	}
	return -1
}
