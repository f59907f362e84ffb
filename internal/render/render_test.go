package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/compose"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/doctree"
)

func sampleTree() *doctree.Tree {
	return compose.Compose(acta.Request{
		Company: acta.Company{
			Name:             "Inversiones El Roble S.A.S.",
			TaxID:            "901.234.567-1",
			Domicile:         "Bogotá D.C.",
			SubscribedShares: "65",
		},
		Meeting: acta.Meeting{
			Kind:        acta.KindOrdinary,
			Number:      "15",
			Date:        "2024-03-15",
			StartTime:   "09:00",
			ClosingTime: "11:30",
		},
		Shareholders: []acta.Shareholder{
			{Name: "Ana Torres", Shares: "65", Attends: true},
		},
		Officers: acta.Officers{
			President: acta.Person{Name: "Ana Torres", Document: "C.C. 52.123.456"},
			Secretary: acta.Person{Name: "Luis Gómez", Document: "C.C. 79.456.789"},
		},
		AgendaItems: []acta.AgendaItem{
			{Label: "Aprobación de estados financieros", Summary: "Se aprobaron los estados financieros de 2023."},
			{Label: "Reforma de estatutos"},
		},
	})
}

// collapse reduces any whitespace runs to single spaces so the comparison
// ignores layout while catching every semantic character.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestHTMLMatchesTreeText(t *testing.T) {
	tree := sampleTree()
	doc := HTML(tree, DefaultStyle())

	got, err := HTMLText(doc)
	require.NoError(t, err)

	assert.Equal(t, collapse(tree.PlainText()), collapse(got))
}

func TestHTML_EscapesMarkup(t *testing.T) {
	tree := doctree.NewBuilder("t").
		Paragraph(doctree.Text(`Cláusula <tercera> & "cuarta"`)).
		Tree()
	doc := HTML(tree, DefaultStyle())

	assert.NotContains(t, doc, "<tercera>")

	got, err := HTMLText(doc)
	require.NoError(t, err)
	assert.Equal(t, `Cláusula <tercera> & "cuarta"`, collapse(got))
}

func TestHTML_SelfContained(t *testing.T) {
	doc := HTML(sampleTree(), DefaultStyle())
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<meta charset="utf-8">`)
	assert.NotContains(t, doc, "<script")
}

func TestDOCXRoundTrip(t *testing.T) {
	tree := sampleTree()
	data, err := DOCX(tree, DefaultStyle())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var sb strings.Builder
	for _, item := range parsed.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			for _, child := range v.Children {
				run, ok := child.(*docx.Run)
				if !ok {
					continue
				}
				for _, rc := range run.Children {
					if txt, ok := rc.(*docx.Text); ok {
						sb.WriteString(txt.Text)
					}
				}
			}
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(v.String())
			sb.WriteString("\n")
		}
	}
	text := sb.String()

	for _, want := range []string{
		"REUNIÓN DE ASAMBLEA GENERAL ORDINARIA DE ACCIONISTAS DE LA SOCIEDAD INVERSIONES EL ROBLE S.A.S.",
		"ACTA No. 15.",
		"sesenta y cinco (65) acciones suscritas y pagadas",
		"1. Lectura y aprobación del orden del día;",
		"Se levantó la sesión a las once y treinta minutos de la mañana (11:30 a.m.).",
		"[Pendiente de redacción]",
		// Attendance table cells and total row.
		"ASISTENTE",
		"ANA TORRES",
		"100.00%",
		"TOTAL",
		"100%",
		// Signature table cells.
		"LUIS GÓMEZ",
		"Secretario",
	} {
		assert.Contains(t, text, want)
	}
}

func TestDOCX_EmptyTree(t *testing.T) {
	data, err := DOCX(doctree.NewBuilder("vacío").Tree(), DefaultStyle())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestHTMLText_SkipsHeadMatter(t *testing.T) {
	got, err := HTMLText(`<html><head><title>ignorado</title><style>p{color:red}</style></head><body><p>visible</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "visible", collapse(got))
}
