// Package doctree is the renderer-agnostic representation of a composed
// acta. The composer appends immutable sections through a Builder; the
// renderers only read the finished tree. Every semantic fact (names,
// numbers, dates, vote counts) lives in the tree text itself so that any
// two renderers agree character for character.
package doctree

import "strings"

// Kind discriminates section nodes.
type Kind string

const (
	KindHeading    Kind = "heading"
	KindParagraph  Kind = "paragraph"
	KindTable      Kind = "table"
	KindSignatures Kind = "signatures"
)

// Run is an inline span of paragraph or heading text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Muted  bool // visually de-emphasized, e.g. pending-drafting placeholders
}

// Cell is one table cell.
type Cell struct {
	Text string
	Bold bool
}

// Table carries a header row, data rows and an optional total row.
type Table struct {
	Header []Cell
	Rows   [][]Cell
	Total  []Cell
}

// Signatory is one entry of the closing signature block.
type Signatory struct {
	Name    string // already upper-cased by the composer
	Caption string
}

// Section is a discriminated node of the document.
type Section struct {
	Kind Kind

	// Heading fields. Level 1 is the centered document title, level 2 a
	// bold left-aligned section title.
	Level int

	// Runs hold heading and paragraph content.
	Runs []Run

	// Indent marks list-style paragraphs (agenda entries).
	Indent bool

	Table      *Table
	Signatures []Signatory
}

// Tree is the finished document. Title is used only for renderer chrome
// (running header, <title>); it repeats no semantic content of its own.
type Tree struct {
	Title    string
	Sections []Section
}

// Builder accumulates sections and is finalized once with Tree(). The zero
// value is ready to use.
type Builder struct {
	title    string
	sections []Section
}

func NewBuilder(title string) *Builder {
	return &Builder{title: title}
}

func (b *Builder) Heading(level int, text string) *Builder {
	b.sections = append(b.sections, Section{
		Kind:  KindHeading,
		Level: level,
		Runs:  []Run{{Text: text, Bold: true}},
	})
	return b
}

func (b *Builder) Paragraph(runs ...Run) *Builder {
	b.sections = append(b.sections, Section{Kind: KindParagraph, Runs: runs})
	return b
}

func (b *Builder) ListItem(text string) *Builder {
	b.sections = append(b.sections, Section{
		Kind:   KindParagraph,
		Indent: true,
		Runs:   []Run{{Text: text}},
	})
	return b
}

func (b *Builder) Table(t Table) *Builder {
	b.sections = append(b.sections, Section{Kind: KindTable, Table: &t})
	return b
}

func (b *Builder) Signatures(sigs ...Signatory) *Builder {
	b.sections = append(b.sections, Section{Kind: KindSignatures, Signatures: sigs})
	return b
}

// Tree finalizes the builder.
func (b *Builder) Tree() *Tree {
	return &Tree{Title: b.title, Sections: b.sections}
}

// Text is a plain run.
func Text(s string) Run { return Run{Text: s} }

// BoldText is an emphasized run.
func BoldText(s string) Run { return Run{Text: s, Bold: true} }

// MutedText is a de-emphasized italic run.
func MutedText(s string) Run { return Run{Text: s, Italic: true, Muted: true} }

// PlainText flattens the tree to its canonical semantic text: one line per
// section, table cells joined by single spaces. Both renderers must produce
// output whose stripped text equals this string.
func (t *Tree) PlainText() string {
	var sb strings.Builder
	line := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s)
	}

	for _, sec := range t.Sections {
		switch sec.Kind {
		case KindHeading, KindParagraph:
			var b strings.Builder
			for _, r := range sec.Runs {
				b.WriteString(r.Text)
			}
			line(b.String())
		case KindTable:
			line(cellsText(sec.Table.Header))
			for _, row := range sec.Table.Rows {
				line(cellsText(row))
			}
			line(cellsText(sec.Table.Total))
		case KindSignatures:
			for _, sig := range sec.Signatures {
				line(sig.Name)
				line(sig.Caption)
			}
		}
	}
	return sb.String()
}

func cellsText(cells []Cell) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, " ")
}
