package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vyPal/BasicFront/lib/analyzer"
	"github.com/vyPal/BasicFront/lib/grammar"
	"github.com/vyPal/BasicFront/lib/lexer"
)

//go:embed default.yaml
var defaultSettings []byte

var (
	ErrExists    = errors.New("settings file already exists")
	ErrNoGrammar = errors.New("settings define no grammar")
)

// Format is the encoding of a settings file.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, errors.Errorf("unsupported settings format %q", name)
}

// DetectFormat picks the format from the file extension, YAML by default.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

type Settings struct {
	Lexer    LexerSettings     `json:"lexer" yaml:"lexer" toml:"lexer"`
	Semantic analyzer.Keywords `json:"semantic" yaml:"semantic" toml:"semantic"`
	Grammar  GrammarSettings   `json:"grammar" yaml:"grammar" toml:"grammar"`

	dir string
}

type LexerSettings struct {
	IdentifierPattern   string   `json:"identifierPattern" yaml:"identifierPattern" toml:"identifierPattern"`
	SpacePattern        string   `json:"spacePattern" yaml:"spacePattern" toml:"spacePattern"`
	StringDelimiter     string   `json:"stringDelimiter" yaml:"stringDelimiter" toml:"stringDelimiter"`
	MaxIdentifierLength int      `json:"maxIdentifierLength" yaml:"maxIdentifierLength" toml:"maxIdentifierLength"`
	MaxStringLength     int      `json:"maxStringLength" yaml:"maxStringLength" toml:"maxStringLength"`
	MaxNumberLength     int      `json:"maxNumberLength" yaml:"maxNumberLength" toml:"maxNumberLength"`
	Keywords            []string `json:"keywords" yaml:"keywords" toml:"keywords"`
	Operators           []string `json:"operators" yaml:"operators" toml:"operators"`
}

// GrammarSettings describes the grammar either in BNF notation, inline or in
// a file relative to the settings file, or as symbol and production lists.
type GrammarSettings struct {
	Notation    string                   `json:"notation,omitempty" yaml:"notation,omitempty" toml:"notation,omitempty"`
	File        string                   `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
	Symbols     []grammar.SymbolSpec     `json:"symbols,omitempty" yaml:"symbols,omitempty" toml:"symbols,omitempty"`
	Productions []grammar.ProductionSpec `json:"productions,omitempty" yaml:"productions,omitempty" toml:"productions,omitempty"`
}

// Default returns the built-in settings.
func Default() *Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultSettings, &s); err != nil {
		panic(errors.Wrap(err, "embedded settings"))
	}
	return &s
}

// Load reads a settings file. Values missing from the file keep their
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read settings")
	}
	s, err := Decode(data, DetectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Decode parses settings in the given format on top of the defaults.
func Decode(data []byte, format Format) (*Settings, error) {
	s := Default()
	// A grammar given in the file replaces the default one as a whole.
	if len(bytes.TrimSpace(data)) > 0 {
		s.Grammar = GrammarSettings{}
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, s)
	case FormatTOML:
		err = toml.Unmarshal(data, s)
	default:
		err = yaml.Unmarshal(data, s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s parse error", format)
	}
	if s.Grammar.empty() {
		s.Grammar = Default().Grammar
	}
	return s, nil
}

func (g GrammarSettings) empty() bool {
	return g.Notation == "" && g.File == "" && len(g.Symbols) == 0
}

// Encode renders s in the given format.
func (s *Settings) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encode json")
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, errors.Wrap(err, "encode toml")
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, "encode yaml")
		}
		return data, nil
	}
}

// Save writes s to path. An existing file is only replaced when overwrite
// is set; otherwise ErrExists is returned.
func (s *Settings) Save(path string, format Format, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Wrapf(ErrExists, "%s", path)
	}
	data, err := s.Encode(format)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write settings")
}

func (s *Settings) LexerOptions() lexer.Options {
	return lexer.Options{
		IdentifierPattern:   s.Lexer.IdentifierPattern,
		SpacePattern:        s.Lexer.SpacePattern,
		StringDelimiter:     s.Lexer.StringDelimiter,
		MaxIdentifierLength: s.Lexer.MaxIdentifierLength,
		MaxStringLength:     s.Lexer.MaxStringLength,
		MaxNumberLength:     s.Lexer.MaxNumberLength,
		Keywords:            s.Lexer.Keywords,
		Operators:           s.Lexer.Operators,
	}
}

func (s *Settings) LexerConfig() (*lexer.Config, error) {
	return lexer.NewConfig(s.LexerOptions())
}

func (s *Settings) Keywords() analyzer.Keywords {
	return s.Semantic
}

// BuildGrammar materializes the configured grammar.
func (s *Settings) BuildGrammar() (*grammar.Grammar, error) {
	g := s.Grammar
	switch {
	case g.Notation != "":
		return grammar.ParseNotation("settings", g.Notation)
	case g.File != "":
		path := g.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read grammar")
		}
		return grammar.ParseNotation(path, string(src))
	case len(g.Symbols) > 0:
		return grammar.Build(g.Symbols, g.Productions)
	}
	return nil, ErrNoGrammar
}
