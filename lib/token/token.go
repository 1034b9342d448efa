package token

import (
	"fmt"
	"strings"
)

// Category classifies a lexeme.
type Category int

const (
	None Category = iota
	CharToken
	Identifier
	Keyword
	LineFeed
	NumberLiteral
	Space
	StringLiteral
)

var categoryNames = [...]string{
	None:          "None",
	CharToken:     "CharToken",
	Identifier:    "Identifier",
	Keyword:       "Keyword",
	LineFeed:      "LineFeed",
	NumberLiteral: "NumberLiteral",
	Space:         "Space",
	StringLiteral: "StringLiteral",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory maps a category name to its Category. Both the short form
// ("Identifier") and the settings-file form ("categoryIdentifier") are
// accepted.
func ParseCategory(s string) (Category, bool) {
	name := strings.TrimPrefix(s, "category")
	for c, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(c), true
		}
	}
	return None, false
}

// Position is a zero-based line index and a rune offset within that line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NoIdentifier marks a token that is not linked to an identifier-table row.
const NoIdentifier = -1

type Token struct {
	Lexeme   string   `json:"lexeme"`
	Category Category `json:"category"`
	Err      string   `json:"error,omitempty"`
	Pos      Position `json:"position"`
	// Ident is the identifier-table row of an Identifier token.
	Ident int  `json:"-"`
	Type  Type `json:"type,omitempty"`
}

// New returns a valid token. Category must not be None.
func New(lexeme string, category Category) Token {
	if category == None {
		return Invalid(lexeme, "incorrect token")
	}
	return Token{Lexeme: lexeme, Category: category, Ident: NoIdentifier}
}

// Invalid returns a token of category None carrying msg.
func Invalid(lexeme, msg string) Token {
	if msg == "" {
		msg = "incorrect token"
	}
	return Token{Lexeme: lexeme, Category: None, Err: msg, Ident: NoIdentifier}
}

// IsValid reports whether the token was recognized.
func (t Token) IsValid() bool {
	return t.Category != None
}

// At returns a copy of t positioned at pos.
func (t Token) At(pos Position) Token {
	t.Pos = pos
	return t
}

// WithType returns a copy of t carrying the expression type typ.
func (t Token) WithType(typ Type) Token {
	t.Type = typ
	return t
}

func (t Token) String() string {
	lexeme := t.Lexeme
	if t.Category == LineFeed {
		lexeme = `\n`
	}
	if !t.IsValid() {
		return fmt.Sprintf("<%s %q !%s>", t.Category, lexeme, t.Err)
	}
	return fmt.Sprintf("<%s %q>", t.Category, lexeme)
}

// Reconstruct concatenates the lexemes of tokens. For the output of a
// lexical analysis this yields the analyzed source text.
func Reconstruct(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Lexeme)
	}
	return sb.String()
}
