package token

import "strings"

// Type is the declared type of an identifier or the type of an expression.
type Type int

const (
	TypeNone Type = iota
	TypeInteger
	TypeDouble
	TypeString
	TypeBoolean
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeDouble:
		return "DOUBLE"
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	default:
		return "NONE"
	}
}

// ParseType maps a type keyword to its Type. Unknown names map to TypeNone.
func ParseType(s string) Type {
	switch strings.ToUpper(s) {
	case "INTEGER", "INT", "LONG":
		return TypeInteger
	case "DOUBLE", "SINGLE", "REAL":
		return TypeDouble
	case "STRING":
		return TypeString
	case "BOOLEAN", "BOOL":
		return TypeBoolean
	default:
		return TypeNone
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
