package grammar

import (
	"strings"

	"github.com/pkg/errors"
)

// Production is a grammar rule. Symbols[0] is the left-hand side, the
// remaining symbols its right-hand side.
type Production struct {
	Number  int      `json:"number"`
	Symbols []Symbol `json:"symbols"`
}

func NewProduction(number int, symbols []Symbol) (Production, error) {
	if len(symbols) == 0 {
		return Production{}, errors.Errorf("production %d has no symbols", number)
	}
	return Production{Number: number, Symbols: append([]Symbol(nil), symbols...)}, nil
}

// Head returns the left-hand side of the rule.
func (p Production) Head() Symbol {
	return p.Symbols[0]
}

// Body returns the right-hand side of the rule. It is empty for an epsilon
// rule.
func (p Production) Body() []Symbol {
	return p.Symbols[1:]
}

func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.Head().String())
	sb.WriteString(" ::=")
	if len(p.Body()) == 0 {
		sb.WriteString(" %empty")
	}
	for _, s := range p.Body() {
		sb.WriteByte(' ')
		sb.WriteString(s.String())
	}
	return sb.String()
}
