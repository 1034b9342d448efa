package token

// IdentifierEntry is a row of the identifier table built by the lexer, or an
// entry of the declaration table built by the semantic analyzer.
type IdentifierEntry struct {
	Name       string     `json:"name"`
	Type       Type       `json:"type"`
	First      Position   `json:"first"`
	Positions  []Position `json:"positions"`
	ScopeBegin int        `json:"scopeBegin"`
	ScopeEnd   int        `json:"scopeEnd"`
}

// NewIdentifier returns an identifier first seen at pos. Its scope covers
// only the line of pos until a declaration widens it.
func NewIdentifier(name string, pos Position) IdentifierEntry {
	return IdentifierEntry{
		Name:       name,
		First:      pos,
		Positions:  []Position{pos},
		ScopeBegin: pos.Line,
		ScopeEnd:   pos.Line,
	}
}

// NewDeclaration returns an identifier declared at pos whose scope is the
// inclusive line range [begin, end].
func NewDeclaration(name string, typ Type, pos Position, begin, end int) IdentifierEntry {
	if end < begin {
		end = begin
	}
	return IdentifierEntry{
		Name:       name,
		Type:       typ,
		First:      pos,
		Positions:  []Position{pos},
		ScopeBegin: begin,
		ScopeEnd:   end,
	}
}

func (id *IdentifierEntry) AddPosition(pos Position) {
	id.Positions = append(id.Positions, pos)
}

// InScope reports whether line lies in [ScopeBegin, ScopeEnd].
func (id IdentifierEntry) InScope(line int) bool {
	return id.ScopeBegin <= line && line <= id.ScopeEnd
}
