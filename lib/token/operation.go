package token

// Operator priorities, loosest binding first.
var operationPriority = map[string]int{
	"OR":  1,
	"AND": 2,
	"NOT": 3,
	"=":   4, "<>": 4, "<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6,
	"^": 7,
}

// Line returns the zero-based line of t.
func (t Token) Line() int {
	return t.Pos.Line
}

// Priority returns the binding strength of the operation t, or 0 when t is
// not an operation.
func Priority(t Token) int {
	if t.Category != CharToken && t.Category != Keyword {
		return 0
	}
	return operationPriority[t.Lexeme]
}

// IsOperation reports whether t is an arithmetic, comparison or logical
// operator.
func IsOperation(t Token) bool {
	return Priority(t) > 0
}

// IsLogicalOperation reports whether t is AND, OR or NOT.
func IsLogicalOperation(t Token) bool {
	return t.Category == Keyword && (t.Lexeme == "AND" || t.Lexeme == "OR" || t.Lexeme == "NOT")
}

// IsComparison reports whether t compares its operands.
func IsComparison(t Token) bool {
	return Priority(t) == operationPriority["="]
}

// IsUnary reports whether t takes a single operand.
func IsUnary(t Token) bool {
	return t.Category == Keyword && t.Lexeme == "NOT"
}

// IsRightAssociative reports whether t groups right to left.
func IsRightAssociative(t Token) bool {
	return t.Category == CharToken && t.Lexeme == "^"
}

func (t Type) numeric() bool {
	return t == TypeInteger || t == TypeDouble
}

// ResultType returns the type of applying op to operands of type first and
// second, or TypeNone when the operation is not defined for them. The second
// operand of a unary operation is ignored.
func ResultType(op Token, first, second Type) Type {
	switch {
	case IsUnary(op):
		if first == TypeBoolean {
			return TypeBoolean
		}
	case IsLogicalOperation(op):
		if first == TypeBoolean && second == TypeBoolean {
			return TypeBoolean
		}
	case IsComparison(op):
		switch {
		case first.numeric() && second.numeric(),
			first == TypeString && second == TypeString:
			return TypeBoolean
		case first == TypeBoolean && second == TypeBoolean && (op.Lexeme == "=" || op.Lexeme == "<>"):
			return TypeBoolean
		}
	case !IsOperation(op):
	case op.Lexeme == "+" && first == TypeString && second == TypeString:
		return TypeString
	case first.numeric() && second.numeric():
		if op.Lexeme == "/" || op.Lexeme == "^" || first == TypeDouble || second == TypeDouble {
			return TypeDouble
		}
		return TypeInteger
	}
	return TypeNone
}
