package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/doctree"
)

// HTML renders the tree as a self-contained, editable preview document.
// Inline styles only, so the file survives download and re-open as-is.
func HTML(tree *doctree.Tree, style Style) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\">")
	sb.WriteString("<title>" + html.EscapeString(tree.Title) + "</title>")
	sb.WriteString(fmt.Sprintf(
		"<style>body{font-family:'%s',serif;max-width:%dpx;margin:40px auto;padding:40px;color:#1a1a1a;line-height:1.6;}table{font-family:'%s',serif;}@media print{body{margin:0;padding:20px;}}</style>",
		style.Font, style.PageWidthPx, style.Font))
	sb.WriteString("</head><body>")

	for _, sec := range tree.Sections {
		switch sec.Kind {
		case doctree.KindHeading:
			writeHTMLHeading(&sb, sec)
		case doctree.KindParagraph:
			writeHTMLParagraph(&sb, sec, style)
		case doctree.KindTable:
			writeHTMLTable(&sb, sec.Table, style)
		case doctree.KindSignatures:
			writeHTMLSignatures(&sb, sec.Signatures)
		}
	}

	sb.WriteString("</body></html>")
	return sb.String()
}

func writeHTMLHeading(sb *strings.Builder, sec doctree.Section) {
	if sec.Level == 1 {
		sb.WriteString(`<p style="text-align:center;font-size:14px;font-weight:700;letter-spacing:1px;margin:8px 0;">`)
	} else {
		sb.WriteString(`<p style="font-size:14px;font-weight:700;margin-top:18px;">`)
	}
	for _, r := range sec.Runs {
		sb.WriteString(html.EscapeString(r.Text))
	}
	sb.WriteString("</p>")
}

func writeHTMLParagraph(sb *strings.Builder, sec doctree.Section, style Style) {
	if sec.Indent {
		sb.WriteString(`<p style="font-size:13px;margin:3px 0 3px 18px;">`)
	} else {
		sb.WriteString(`<p style="text-align:justify;font-size:13px;line-height:1.8;">`)
	}
	for _, r := range sec.Runs {
		text := html.EscapeString(r.Text)
		switch {
		case r.Muted:
			sb.WriteString(fmt.Sprintf(`<em style="color:#%s;">%s</em>`, style.MutedColor, text))
		case r.Bold:
			sb.WriteString("<strong>" + text + "</strong>")
		case r.Italic:
			sb.WriteString("<em>" + text + "</em>")
		default:
			sb.WriteString(text)
		}
	}
	sb.WriteString("</p>")
}

func writeHTMLTable(sb *strings.Builder, t *doctree.Table, style Style) {
	cellStyle := `padding:7px;border:1px solid #ccc;`

	sb.WriteString(`<table style="width:100%;border-collapse:collapse;margin:10px 0;font-size:12px;">`)

	sb.WriteString(fmt.Sprintf(`<tr style="background:#%s;color:#fff;">`, style.BrandColor))
	for _, c := range t.Header {
		sb.WriteString(fmt.Sprintf(`<th style="%s">%s</th>`, cellStyle, html.EscapeString(c.Text)))
	}
	sb.WriteString("</tr>")

	writeRow := func(cells []doctree.Cell, bold bool) {
		if bold {
			sb.WriteString(`<tr style="font-weight:700;">`)
		} else {
			sb.WriteString("<tr>")
		}
		for i, c := range cells {
			align := ""
			if i > 0 {
				align = "text-align:center;"
			}
			sb.WriteString(fmt.Sprintf(`<td style="%s%s">%s</td>`, cellStyle, align, html.EscapeString(c.Text)))
		}
		sb.WriteString("</tr>")
	}

	for _, row := range t.Rows {
		writeRow(row, false)
	}
	if len(t.Total) > 0 {
		writeRow(t.Total, true)
	}
	sb.WriteString("</table>")
}

func writeHTMLSignatures(sb *strings.Builder, sigs []doctree.Signatory) {
	sb.WriteString(`<div style="display:flex;justify-content:space-between;margin-top:44px;">`)
	for _, sig := range sigs {
		sb.WriteString(`<div style="text-align:center;">`)
		sb.WriteString(`<p style="border-top:1px solid #000;padding-top:6px;font-size:11px;min-width:180px;">`)
		sb.WriteString("<strong>" + html.EscapeString(sig.Name) + "</strong><br/>")
		sb.WriteString(html.EscapeString(sig.Caption))
		sb.WriteString("</p></div>")
	}
	sb.WriteString("</div>")
}
