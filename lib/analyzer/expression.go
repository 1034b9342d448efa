package analyzer

import (
	"strings"

	"github.com/vyPal/BasicFront/lib/token"
)

// Expression is an expression found in a statement, with its inferred type.
type Expression struct {
	Pos  token.Position `json:"position"`
	Text string         `json:"text"`
	Type token.Type     `json:"type"`
}

// collectExpressions walks the typed stream and types every expression.
// An expression starts after an expression keyword, after the = of an
// assignment (x = ..., FOR i = ...) and after a , ; or : separator inside an
// expression. It ends at the end of the line, a separator or a keyword that
// is neither an operator nor a boolean literal.
func (a *Analyzer) collectExpressions() {
	var (
		current []token.Token
		inExpr  bool
		first   token.Token
		prev    token.Token
		seen    int
	)
	flush := func() {
		if len(current) > 0 {
			a.expressions = append(a.expressions, Expression{
				Pos:  current[0].Pos,
				Text: strings.TrimSpace(token.Reconstruct(current)),
				Type: ExpressionType(current),
			})
		}
		current = nil
	}

	for _, tok := range a.typed {
		switch tok.Category {
		case token.LineFeed:
			flush()
			inExpr, seen = false, 0
			continue
		case token.Space:
			if inExpr && len(current) > 0 {
				current = append(current, tok)
			}
			continue
		}

		switch {
		case inExpr && isSeparator(tok):
			flush()
		case inExpr && endsExpression(tok):
			flush()
			inExpr = a.keywords.startsExpression(tok.Lexeme)
		case inExpr:
			current = append(current, tok)
		case tok.Category == token.Keyword && a.keywords.startsExpression(tok.Lexeme):
			inExpr = true
		case a.isAssignment(tok, first, prev, seen):
			inExpr = true
		}

		if seen == 0 {
			first = tok
		}
		prev = tok
		seen++
	}
	flush()
}

// isAssignment reports whether tok is the = of "name = ..." or of
// "FOR name = ...". seen is the number of tokens before tok on its line.
func (a *Analyzer) isAssignment(tok, first, prev token.Token, seen int) bool {
	if tok.Category != token.CharToken || tok.Lexeme != "=" || prev.Category != token.Identifier {
		return false
	}
	return seen == 1 || seen == 2 && first.Category == token.Keyword && first.Lexeme == a.keywords.Loop
}

func isSeparator(tok token.Token) bool {
	return tok.Category == token.CharToken && (tok.Lexeme == "," || tok.Lexeme == ";" || tok.Lexeme == ":")
}

func endsExpression(tok token.Token) bool {
	return tok.Category == token.Keyword && !token.IsOperation(tok) && tok.Type != token.TypeBoolean
}

// ExpressionType infers the type of an infix expression from the types of
// its operands, honoring operator priority and parentheses. Spaces and line
// feeds are ignored; unary + and - keep the type of their operand. It
// returns TypeNone for a malformed or ill-typed expression.
func ExpressionType(expr []token.Token) token.Type {
	var (
		operands []token.Type
		ops      []token.Token
	)
	apply := func() bool {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if token.IsUnary(op) {
			if len(operands) < 1 {
				return false
			}
			top := len(operands) - 1
			operands[top] = token.ResultType(op, operands[top], token.TypeNone)
			return true
		}
		if len(operands) < 2 {
			return false
		}
		n := len(operands)
		result := token.ResultType(op, operands[n-2], operands[n-1])
		operands = append(operands[:n-2], result)
		return true
	}
	isOpen := func(t token.Token) bool {
		return t.Category == token.CharToken && t.Lexeme == "("
	}

	expectOperand := true
	for _, tok := range expr {
		switch {
		case tok.Category == token.Space || tok.Category == token.LineFeed:
			continue
		case isOpen(tok):
			if !expectOperand {
				return token.TypeNone
			}
			ops = append(ops, tok)
		case tok.Category == token.CharToken && tok.Lexeme == ")":
			if expectOperand {
				return token.TypeNone
			}
			for len(ops) > 0 && !isOpen(ops[len(ops)-1]) {
				if !apply() {
					return token.TypeNone
				}
			}
			if len(ops) == 0 {
				return token.TypeNone
			}
			ops = ops[:len(ops)-1]
		case token.IsOperation(tok):
			if expectOperand {
				if token.IsUnary(tok) {
					ops = append(ops, tok)
				} else if tok.Lexeme != "+" && tok.Lexeme != "-" {
					return token.TypeNone
				}
				continue
			}
			for len(ops) > 0 && !isOpen(ops[len(ops)-1]) {
				top := ops[len(ops)-1]
				if token.Priority(top) < token.Priority(tok) ||
					token.Priority(top) == token.Priority(tok) && token.IsRightAssociative(tok) {
					break
				}
				if !apply() {
					return token.TypeNone
				}
			}
			ops = append(ops, tok)
			expectOperand = true
		default:
			if !expectOperand || (tok.Category == token.Keyword && tok.Type == token.TypeNone) {
				return token.TypeNone
			}
			operands = append(operands, tok.Type)
			expectOperand = false
		}
	}
	if expectOperand {
		return token.TypeNone
	}
	for len(ops) > 0 {
		if isOpen(ops[len(ops)-1]) || !apply() {
			return token.TypeNone
		}
	}
	if len(operands) != 1 {
		return token.TypeNone
	}
	return operands[0]
}
