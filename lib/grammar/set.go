package grammar

// SymbolSet is an insertion-ordered set of symbols under Equal.
type SymbolSet struct {
	index   map[string]int
	symbols []Symbol
}

func NewSymbolSet(symbols ...Symbol) *SymbolSet {
	s := &SymbolSet{index: make(map[string]int)}
	for _, sym := range symbols {
		s.Add(sym)
	}
	return s
}

// Add inserts sym and reports whether it was not yet present.
func (s *SymbolSet) Add(sym Symbol) bool {
	if _, ok := s.index[sym.Key()]; ok {
		return false
	}
	s.index[sym.Key()] = len(s.symbols)
	s.symbols = append(s.symbols, sym)
	return true
}

func (s *SymbolSet) Contains(sym Symbol) bool {
	_, ok := s.index[sym.Key()]
	return ok
}

func (s *SymbolSet) Len() int {
	return len(s.symbols)
}

// Symbols returns the members in insertion order.
func (s *SymbolSet) Symbols() []Symbol {
	return s.symbols
}
