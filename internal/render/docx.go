package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fumiama/go-docx"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/doctree"
)

// Page geometry in twips (letter width minus 1" margins).
const (
	tableWidthTwips = 9360
)

// DOCX renders the tree into a word-processing document package. All
// format specifics (fonts, sizes, colors, table geometry) live here and in
// Style; the semantic text comes from the tree untouched.
func DOCX(tree *doctree.Tree, style Style) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, sec := range tree.Sections {
		switch sec.Kind {
		case doctree.KindHeading:
			renderDocxHeading(w, sec, style)
		case doctree.KindParagraph:
			renderDocxParagraph(w, sec, style)
		case doctree.KindTable:
			renderDocxTable(w, sec.Table, style)
		case doctree.KindSignatures:
			renderDocxSignatures(w, sec.Signatures, style)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func renderDocxHeading(w *docx.Docx, sec doctree.Section, style Style) {
	p := w.AddParagraph()
	size := style.SizeNormal
	if sec.Level == 1 {
		p.Justification("center")
		size = style.SizeTitle
	}
	for _, r := range sec.Runs {
		run := p.AddText(r.Text).Size(strconv.Itoa(size)).Bold()
		run.Font(style.Font, "", style.Font, "default")
	}
}

func renderDocxParagraph(w *docx.Docx, sec doctree.Section, style Style) {
	p := w.AddParagraph()
	if !sec.Indent {
		p.Justification("both")
	}
	for _, r := range sec.Runs {
		run := p.AddText(r.Text).Size(strconv.Itoa(style.SizeNormal))
		run.Font(style.Font, "", style.Font, "default")
		if r.Bold {
			run.Bold()
		}
		if r.Italic {
			run.Italic()
		}
		if r.Muted {
			run.Color(style.MutedColor)
		}
	}
}

func renderDocxTable(w *docx.Docx, t *doctree.Table, style Style) {
	rows := 1 + len(t.Rows)
	if len(t.Total) > 0 {
		rows++
	}
	cols := len(t.Header)
	tbl := w.AddTable(rows, cols, tableWidthTwips, borderColors(style.BorderColor))

	fill := func(rowIdx int, cells []doctree.Cell, header bool) {
		row := tbl.TableRows[rowIdx]
		for i, cell := range cells {
			if i >= len(row.TableCells) {
				break
			}
			p := row.TableCells[i].AddParagraph()
			if i > 0 {
				p.Justification("center")
			}
			run := p.AddText(cell.Text).Size(strconv.Itoa(style.SizeSmall))
			run.Font(style.Font, "", style.Font, "default")
			if cell.Bold {
				run.Bold()
			}
			if header {
				run.Color("FFFFFF").Shade("clear", "auto", style.BrandColor)
			}
		}
	}

	fill(0, t.Header, true)
	for i, row := range t.Rows {
		fill(1+i, row, false)
	}
	if len(t.Total) > 0 {
		fill(rows-1, t.Total, false)
	}
}

func borderColors(hex string) *docx.APITableBorderColors {
	return &docx.APITableBorderColors{
		Top:     hex,
		Bottom:  hex,
		Left:    hex,
		Right:   hex,
		InsideH: hex,
		InsideV: hex,
	}
}

func renderDocxSignatures(w *docx.Docx, sigs []doctree.Signatory, style Style) {
	// Breathing room above the signature lines.
	w.AddParagraph()
	w.AddParagraph()

	tbl := w.AddTable(1, len(sigs), tableWidthTwips, borderColors("000000"))
	row := tbl.TableRows[0]
	for i, sig := range sigs {
		if i >= len(row.TableCells) {
			break
		}
		cell := row.TableCells[i]
		namePara := cell.AddParagraph()
		namePara.Justification("center")
		namePara.AddText(sig.Name).Size(strconv.Itoa(style.SizeSmall)).Bold().
			Font(style.Font, "", style.Font, "default")
		capPara := cell.AddParagraph()
		capPara.Justification("center")
		capPara.AddText(sig.Caption).Size(strconv.Itoa(style.SizeSmall)).
			Font(style.Font, "", style.Font, "default")
	}
}
