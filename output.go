package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"

	"github.com/vyPal/BasicFront/lib/analyzer"
	"github.com/vyPal/BasicFront/lib/grammar"
	"github.com/vyPal/BasicFront/lib/token"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = cellStyle.Foreground(lipgloss.Color("#EF4444"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func plainStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func lexeme(t token.Token) string {
	if t.Category == token.LineFeed {
		return `\n`
	}
	return strconv.Quote(t.Lexeme)
}

func typeName(t token.Type) string {
	if t == token.TypeNone {
		return ""
	}
	return t.String()
}

func tokenTable(tokens []token.Token) string {
	t := newTable("#", "Lexeme", "Category", "Position", "Type", "Error")
	for i, tok := range tokens {
		t.Row(strconv.Itoa(i), lexeme(tok), tok.Category.String(), tok.Pos.String(), typeName(tok.Type), tok.Err)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if !tokens[row].IsValid() {
			return errorStyle
		}
		return cellStyle
	})
	return t.String()
}

func positions(ps []token.Position) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = p.String()
	}
	return strings.Join(s, " ")
}

func identifierTable(ids []token.IdentifierEntry) string {
	t := newTable("#", "Name", "First", "Positions").StyleFunc(plainStyle)
	for i, id := range ids {
		t.Row(strconv.Itoa(i), id.Name, id.First.String(), positions(id.Positions))
	}
	return t.String()
}

func declarationTable(ids []token.IdentifierEntry) string {
	t := newTable("Name", "Type", "Declared", "Scope").StyleFunc(plainStyle)
	for _, id := range ids {
		t.Row(id.Name, typeName(id.Type), id.First.String(), fmt.Sprintf("%d-%d", id.ScopeBegin, id.ScopeEnd))
	}
	return t.String()
}

func expressionTable(exprs []analyzer.Expression) string {
	t := newTable("Position", "Expression", "Type")
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if exprs[row].Type == token.TypeNone {
			return errorStyle
		}
		return cellStyle
	})
	for _, e := range exprs {
		typ := typeName(e.Type)
		if typ == "" {
			typ = "ill-typed"
		}
		t.Row(e.Pos.String(), e.Text, typ)
	}
	return t.String()
}

func blockLabel(b analyzer.Block) string {
	label := fmt.Sprintf("%s %d-%d", b.Kind, b.Start, b.End)
	if b.Kind != analyzer.Main && !b.Closed {
		label += color.YellowString(" (unclosed)")
	}
	return label
}

func blockTree(a *analyzer.Analyzer) string {
	var build func(id analyzer.BlockID) *tree.Tree
	build = func(id analyzer.BlockID) *tree.Tree {
		t := tree.Root(blockLabel(a.Block(id)))
		for _, child := range a.Children(id) {
			t.Child(build(child))
		}
		return t
	}
	return build(a.Root()).String()
}

func symbolTable(g *grammar.Grammar) string {
	t := newTable("Symbol", "Kind", "Category").StyleFunc(plainStyle)
	for _, s := range g.Symbols() {
		category := ""
		if s.Category != token.None {
			category = s.Category.String()
		}
		t.Row(s.String(), s.Kind.String(), category)
	}
	return t.String()
}

func matchTable(g *grammar.Grammar, tokens []token.Token) string {
	t := newTable("Token", "Position", "Terminals").StyleFunc(plainStyle)
	for _, tok := range tokens {
		var names []string
		for _, s := range g.Match(tok) {
			names = append(names, s.String())
		}
		match := strings.Join(names, " ")
		if match == "" {
			match = color.RedString("none")
		}
		t.Row(lexeme(tok), tok.Pos.String(), match)
	}
	return t.String()
}

func heading(s string) {
	color.New(color.Bold, color.FgCyan).Println(s)
}

// printErrors prints the error text of an analysis and reports whether there
// was any.
func printErrors(title, text string) bool {
	if text == "" {
		color.Green("%s: no errors", title)
		return false
	}
	color.Red("%s:", title)
	fmt.Print(text)
	return true
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
