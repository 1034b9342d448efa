package analyzer

import (
	"fmt"
	"strings"

	"github.com/vyPal/BasicFront/lib/token"
)

// Keywords names the lexemes that drive block construction and declaration
// discovery.
type Keywords struct {
	Loop        string   `json:"loop" yaml:"loop" toml:"loop"`
	Conditional string   `json:"conditional" yaml:"conditional" toml:"conditional"`
	Closers     []string `json:"closers" yaml:"closers" toml:"closers"`
	Declaration string   `json:"declaration" yaml:"declaration" toml:"declaration"`
	// Expression keywords are followed by an expression, e.g. PRINT x + 1.
	Expression  []string `json:"expression" yaml:"expression" toml:"expression"`
}

func DefaultKeywords() Keywords {
	return Keywords{
		Loop:        "FOR",
		Conditional: "IF",
		Closers:     []string{"END", "NEXT"},
		Declaration: "DIM",
		Expression:  []string{"PRINT", "IF", "TO", "STEP"},
	}
}

func (k Keywords) isCloser(lexeme string) bool {
	return contains(k.Closers, lexeme)
}

func (k Keywords) startsExpression(lexeme string) bool {
	return contains(k.Expression, lexeme)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Token offsets of a declaration statement,
// DIM <space> name <space> AS <space> TYPE.
const (
	declNameOffset = 2
	declTypeOffset = 6
)

// Diagnostic is a semantic error. Index is its 1-based sequence number.
type Diagnostic struct {
	Index   int            `json:"index"`
	Pos     token.Position `json:"position"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:\t(%d:%d)\t%s", d.Index, d.Pos.Line, d.Pos.Column, d.Message)
}

// Analyzer rebuilds the block structure of a token stream, collects the
// declarations and checks that every identifier is used inside the scope of
// a declaration. Every call to Analyze replaces the previous results.
type Analyzer struct {
	keywords Keywords

	tree         *blockTree
	declarations []token.IdentifierEntry
	typed        []token.Token
	expressions  []Expression
	byName       map[string][]int
	diagnostics  []Diagnostic
	errText      strings.Builder
}

func NewAnalyzer(keywords Keywords) *Analyzer {
	a := &Analyzer{keywords: keywords}
	a.reset(0)
	return a
}

func (a *Analyzer) reset(lastLine int) {
	a.tree = newBlockTree(lastLine)
	a.declarations = nil
	a.typed = nil
	a.expressions = nil
	a.byName = make(map[string][]int)
	a.diagnostics = nil
	a.errText.Reset()
}

// Analyze runs block construction, declaration discovery and scope checking
// over tokens, the full stream produced by the lexer.
func (a *Analyzer) Analyze(tokens []token.Token) {
	lastLine := 0
	if len(tokens) > 0 {
		lastLine = tokens[len(tokens)-1].Pos.Line
	}
	a.reset(lastLine)

	a.makeBlocks(tokens, lastLine)
	a.findDeclarations(tokens)
	a.checkScope(tokens)
	a.collectExpressions()
}

func (a *Analyzer) makeBlocks(tokens []token.Token, lastLine int) {
	current := RootBlock
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Category != token.Keyword {
			continue
		}
		switch {
		case tok.Lexeme == a.keywords.Loop:
			current = a.tree.open(current, For, tok.Pos.Line, lastLine)
		case tok.Lexeme == a.keywords.Conditional:
			current = a.tree.open(current, If, tok.Pos.Line, lastLine)
		case a.keywords.isCloser(tok.Lexeme):
			if current == RootBlock {
				a.addError(tok.Pos, fmt.Sprintf("unexpected %s without open block", tok.Lexeme))
			} else {
				current = a.tree.close(current, tok.Pos.Line)
			}
			// END IF, NEXT i: the tag after the closer is not a new construct.
			i = skipTag(tokens, i)
		}
	}
}

// skipTag returns the index of the first non-space token after i on the
// same line, or i when there is none.
func skipTag(tokens []token.Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		switch tokens[j].Category {
		case token.Space:
			continue
		case token.LineFeed:
			return i
		}
		return j
	}
	return i
}

func (a *Analyzer) findDeclarations(tokens []token.Token) {
	for i, tok := range tokens {
		if tok.Category != token.Keyword || tok.Lexeme != a.keywords.Declaration {
			continue
		}
		line := tok.Pos.Line
		nameAt := i + declNameOffset
		if nameAt >= len(tokens) || tokens[nameAt].Category != token.Identifier || tokens[nameAt].Pos.Line != line {
			a.addError(tok.Pos, fmt.Sprintf("%s without identifier", tok.Lexeme))
			continue
		}
		name := tokens[nameAt]

		typ := token.TypeNone
		if typeAt := i + declTypeOffset; typeAt < len(tokens) && tokens[typeAt].Pos.Line == line {
			typ = token.ParseType(tokens[typeAt].Lexeme)
		}

		block := a.tree.blocks[a.tree.at(line)]
		a.declarations = append(a.declarations, token.NewDeclaration(name.Lexeme, typ, name.Pos, line, block.End))
		a.byName[name.Lexeme] = append(a.byName[name.Lexeme], len(a.declarations)-1)
	}
}

// checkScope reports identifiers used outside every declaration of theirs
// and builds the typed token stream.
func (a *Analyzer) checkScope(tokens []token.Token) {
	a.typed = append([]token.Token(nil), tokens...)
	for i, tok := range tokens {
		if tok.Category != token.Identifier {
			continue
		}
		d, ok := a.Resolve(tok.Lexeme, tok.Pos.Line)
		if !ok {
			a.addError(tok.Pos, fmt.Sprintf("undeclared identifier %q", tok.Lexeme))
			continue
		}
		a.typed[i] = tok.WithType(a.declarations[d].Type)
	}
}

// Resolve returns the index of the first declaration of name whose scope
// contains line.
func (a *Analyzer) Resolve(name string, line int) (int, bool) {
	for _, i := range a.byName[name] {
		if a.declarations[i].InScope(line) {
			return i, true
		}
	}
	return -1, false
}

func (a *Analyzer) addError(pos token.Position, msg string) {
	d := Diagnostic{Index: len(a.diagnostics) + 1, Pos: pos, Message: msg}
	a.diagnostics = append(a.diagnostics, d)
	a.errText.WriteString(d.String())
	a.errText.WriteByte('\n')
}

func (a *Analyzer) Root() BlockID {
	return RootBlock
}

func (a *Analyzer) Block(id BlockID) Block {
	return a.tree.blocks[id]
}

func (a *Analyzer) Parent(id BlockID) BlockID {
	return a.tree.blocks[id].parent
}

func (a *Analyzer) Children(id BlockID) []BlockID {
	return a.tree.blocks[id].children
}

// BlockAt returns the deepest block enclosing line. The result is
// unspecified when sibling blocks overlap, see Overlaps.
func (a *Analyzer) BlockAt(line int) BlockID {
	return a.tree.at(line)
}

// Overlaps reports whether the tree contains sibling blocks with
// intersecting line ranges.
func (a *Analyzer) Overlaps() bool {
	return a.tree.overlaps()
}

func (a *Analyzer) Declarations() []token.IdentifierEntry {
	return a.declarations
}

// Typed returns the analyzed tokens with every resolved identifier carrying
// the type of its declaration.
func (a *Analyzer) Typed() []token.Token {
	return a.typed
}

func (a *Analyzer) Expressions() []Expression {
	return a.expressions
}

func (a *Analyzer) Diagnostics() []Diagnostic {
	return a.diagnostics
}

// ErrorText returns one "<index>:\t<message>" line per semantic error.
func (a *Analyzer) ErrorText() string {
	return a.errText.String()
}
