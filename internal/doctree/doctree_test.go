package doctree

import "testing"

func TestBuilder_SectionOrder(t *testing.T) {
	tree := NewBuilder("t").
		Heading(1, "TITULO").
		Paragraph(Text("cuerpo")).
		ListItem("1. punto;").
		Signatures(Signatory{Name: "ANA", Caption: "Presidente"}).
		Tree()

	if len(tree.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(tree.Sections))
	}
	wantKinds := []Kind{KindHeading, KindParagraph, KindParagraph, KindSignatures}
	for i, k := range wantKinds {
		if tree.Sections[i].Kind != k {
			t.Errorf("section %d: expected %s, got %s", i, k, tree.Sections[i].Kind)
		}
	}
	if !tree.Sections[2].Indent {
		t.Error("list items must be indented paragraphs")
	}
	if !tree.Sections[0].Runs[0].Bold {
		t.Error("headings must be bold")
	}
}

func TestPlainText(t *testing.T) {
	tree := NewBuilder("t").
		Heading(1, "ACTA No. 1.").
		Paragraph(Text("Siendo las nueve, "), BoldText("LA SOCIEDAD"), Text(" sesionó.")).
		Table(Table{
			Header: []Cell{{Text: "ASISTENTE"}, {Text: "ACCIONES"}},
			Rows:   [][]Cell{{{Text: "ANA"}, {Text: "65"}}},
			Total:  []Cell{{Text: "TOTAL"}, {Text: "65"}},
		}).
		Signatures(Signatory{Name: "ANA", Caption: "Presidente"}).
		Tree()

	want := "ACTA No. 1.\n" +
		"Siendo las nueve, LA SOCIEDAD sesionó.\n" +
		"ASISTENTE ACCIONES\n" +
		"ANA 65\n" +
		"TOTAL 65\n" +
		"ANA\n" +
		"Presidente"
	if got := tree.PlainText(); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestPlainText_SkipsEmptySections(t *testing.T) {
	tree := NewBuilder("t").
		Paragraph().
		Paragraph(Text("único")).
		Tree()
	if got := tree.PlainText(); got != "único" {
		t.Errorf("expected %q, got %q", "único", got)
	}
}
