package lexer

// operatorSet is the set of registered operator and punctuation tokens.
// Besides membership it tracks the longest registered operator and the
// characters that end a lexeme: space, tab and the first character of every
// operator.
type operatorSet struct {
	ops         map[string]struct{}
	maxLen      int
	terminators map[rune]struct{}
}

func newOperatorSet() *operatorSet {
	return &operatorSet{
		ops:         make(map[string]struct{}),
		terminators: map[rune]struct{}{' ': {}, '\t': {}},
	}
}

func (s *operatorSet) add(op string) {
	runes := []rune(op)
	if len(runes) == 0 {
		return
	}
	s.ops[op] = struct{}{}
	s.terminators[runes[0]] = struct{}{}
	if len(runes) > s.maxLen {
		s.maxLen = len(runes)
	}
}

func (s *operatorSet) contains(op string) bool {
	_, ok := s.ops[op]
	return ok
}

func (s *operatorSet) isTerminator(r rune) bool {
	_, ok := s.terminators[r]
	return ok
}

// longestMatch returns the longest registered operator that prefixes src.
func (s *operatorSet) longestMatch(src []rune) (string, bool) {
	n := s.maxLen
	if n > len(src) {
		n = len(src)
	}
	for ; n > 0; n-- {
		if candidate := string(src[:n]); s.contains(candidate) {
			return candidate, true
		}
	}
	return "", false
}
