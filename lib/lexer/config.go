package lexer

import (
	"regexp"

	"github.com/pkg/errors"
)

// Options is the structured form of the lexical settings. Zero lengths
// disable the corresponding limit.
type Options struct {
	IdentifierPattern   string
	SpacePattern        string
	StringDelimiter     string
	MaxIdentifierLength int
	MaxStringLength     int
	MaxNumberLength     int
	Keywords            []string
	Operators           []string
}

// DefaultOptions returns the settings of the BASIC dialect the analyzer was
// written for.
func DefaultOptions() Options {
	return Options{
		IdentifierPattern:   `[A-Za-z_][A-Za-z0-9_]*`,
		SpacePattern:        `[ \t\r]`,
		StringDelimiter:     `"`,
		MaxIdentifierLength: 32,
		MaxStringLength:     255,
		MaxNumberLength:     24,
		Keywords: []string{
			"AND", "AS", "BOOLEAN", "DIM", "DOUBLE", "ELSE", "END", "FALSE",
			"FOR", "IF", "INPUT", "INTEGER", "NEXT", "NOT", "OR", "PRINT",
			"STEP", "STRING", "THEN", "TO", "TRUE",
		},
		Operators: []string{
			"+", "-", "*", "/", "^", "=", "<", ">", "<=", ">=", "<>",
			"(", ")", ",", ";", ":",
		},
	}
}

// Config holds the compiled lexical settings.
type Config struct {
	identifier *regexp.Regexp
	space      *regexp.Regexp
	delimiter  []rune

	maxIdentifier int
	maxString     int
	maxNumber     int

	keywords  map[string]struct{}
	operators *operatorSet
}

// NewConfig compiles opts. Empty patterns fall back to DefaultOptions.
func NewConfig(opts Options) (*Config, error) {
	def := DefaultOptions()
	if opts.IdentifierPattern == "" {
		opts.IdentifierPattern = def.IdentifierPattern
	}
	if opts.SpacePattern == "" {
		opts.SpacePattern = def.SpacePattern
	}
	if opts.StringDelimiter == "" {
		opts.StringDelimiter = def.StringDelimiter
	}

	identifier, err := regexp.Compile(`^(?:` + opts.IdentifierPattern + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid identifier pattern %q", opts.IdentifierPattern)
	}
	space, err := regexp.Compile(opts.SpacePattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid whitespace pattern %q", opts.SpacePattern)
	}

	c := &Config{
		identifier:    identifier,
		space:         space,
		delimiter:     []rune(opts.StringDelimiter),
		maxIdentifier: opts.MaxIdentifierLength,
		maxString:     opts.MaxStringLength,
		maxNumber:     opts.MaxNumberLength,
		keywords:      make(map[string]struct{}),
		operators:     newOperatorSet(),
	}
	for _, kw := range opts.Keywords {
		c.AddKeyword(kw)
	}
	for _, op := range opts.Operators {
		c.AddOperator(op)
	}
	return c, nil
}

// MustConfig is like NewConfig but panics on error.
func MustConfig(opts Options) *Config {
	c, err := NewConfig(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Config) AddKeyword(kw string) {
	if kw != "" {
		c.keywords[kw] = struct{}{}
	}
}

// AddOperator registers a multi-character operator or punctuation token.
// Its first character becomes a possible token terminator.
func (c *Config) AddOperator(op string) {
	c.operators.add(op)
}

func (c *Config) IsKeyword(s string) bool {
	_, ok := c.keywords[s]
	return ok
}

func (c *Config) isSpace(r rune) bool {
	return c.space.MatchString(string(r))
}

// isTerminator reports whether r ends a number or an unknown lexeme. Runes
// matching the whitespace pattern terminate as well.
func (c *Config) isTerminator(r rune) bool {
	return c.operators.isTerminator(r) || c.isSpace(r)
}

// nextTerminator returns the index of the first terminator in src at or
// after from, or len(src) if there is none.
func (c *Config) nextTerminator(src []rune, from int) int {
	for i := from; i < len(src); i++ {
		if c.isTerminator(src[i]) {
			return i
		}
	}
	return len(src)
}

func exceeds(length, max int) bool {
	return max > 0 && length > max
}
