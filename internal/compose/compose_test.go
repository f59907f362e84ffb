package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/doctree"
)

func sampleRequest() acta.Request {
	return acta.Request{
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
			Notice:      acta.NoticeNone,
		},
		Shareholders: []acta.Shareholder{
			{Name: "Ana Torres", DocType: "C.C.", DocNumber: "52.123.456", Shares: "65", Attends: true},
		},
		Officers: acta.Officers{
			President: acta.Person{Name: "Ana Torres", Document: "C.C. 52.123.456"},
			Secretary: acta.Person{Name: "Luis Gómez", Document: "C.C. 79.456.789"},
		},
		AgendaItems: []acta.AgendaItem{
			{Label: "Aprobación de estados financieros", Summary: "Se presentaron y aprobaron los estados financieros de 2023."},
		},
	}
}

func plain(t *testing.T, req acta.Request) string {
	t.Helper()
	return Compose(req).PlainText()
}

func TestCompose_Title(t *testing.T) {
	tree := Compose(sampleRequest())
	want := "Inversiones El Roble S.A.S. — Acta No. 15"
	if tree.Title != want {
		t.Errorf("expected title %q, got %q", want, tree.Title)
	}
}

func TestCompose_HeadingAndOpening(t *testing.T) {
	text := plain(t, sampleRequest())

	for _, want := range []string{
		"REUNIÓN DE ASAMBLEA GENERAL ORDINARIA DE ACCIONISTAS DE LA SOCIEDAD INVERSIONES EL ROBLE S.A.S.",
		"ACTA No. 15.",
		"Siendo las nueve de la mañana (9:00 a.m.) del quince (15) del mes de marzo del año dos mil veinticuatro (2024)",
		"identificada con NIT 901.234.567-1",
		"con domicilio principal en la ciudad de Bogotá D.C.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestCompose_AttendanceTable(t *testing.T) {
	text := plain(t, sampleRequest())

	for _, want := range []string{
		"ASISTENTE ACCIONES SUSCRITAS Y PAGADAS % PARTICIPACIÓN",
		"ANA TORRES 65 100.00%",
		"TOTAL 65 100%",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("attendance table missing %q", want)
		}
	}
}

func TestCompose_UniversalQuorumConvocation(t *testing.T) {
	text := plain(t, sampleRequest())
	if !strings.Contains(text, "sin convocatoria previa") {
		t.Error("expected universal-quorum convocation wording")
	}
	if !strings.Contains(text, "sesenta y cinco (65) acciones suscritas y pagadas") {
		t.Error("expected attending shares in words")
	}
}

func TestCompose_PriorNoticeConvocation(t *testing.T) {
	req := sampleRequest()
	req.Meeting.Notice = acta.NoticePrior
	req.Meeting.NoticeForm = "comunicación escrita"
	req.Meeting.NoticeDate = "2024-03-01"
	req.Meeting.NoticeDaysAhead = "14"

	text := plain(t, req)
	if !strings.Contains(text, "convocada mediante comunicación escrita con fecha 2024-03-01, con una antelación de 14 días") {
		t.Error("expected prior-notice convocation wording")
	}
	if strings.Contains(text, "sin convocatoria previa") {
		t.Error("universal-quorum wording must not appear with prior notice")
	}
}

func TestCompose_ByRightConvocation(t *testing.T) {
	req := sampleRequest()
	req.Meeting.Notice = acta.NoticeByRight

	text := plain(t, req)
	if !strings.Contains(text, "por derecho propio, conforme al artículo 422 del Código de Comercio") {
		t.Error("expected by-right convocation wording")
	}
}

func TestCompose_AgendaNumbering(t *testing.T) {
	text := plain(t, sampleRequest())

	// Three fixed opening points, one dynamic item, two fixed closing points.
	for _, want := range []string{
		"1. Lectura y aprobación del orden del día;",
		"2. Elección del Presidente y Secretario de la Reunión;",
		"3. Verificación del Quórum;",
		"4. Aprobación de estados financieros;",
		"5. Proposiciones y varios;",
		"6. Lectura y aprobación del acta;",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("agenda missing %q", want)
		}
	}
}

func TestCompose_PersonsPresentRomanLabels(t *testing.T) {
	text := plain(t, sampleRequest())
	if !strings.Contains(text, "(i) Ana Torres, identificado con C.C. 52.123.456, en calidad de Presidente de la Reunión") {
		t.Error("expected first roman label for president")
	}
	if !strings.Contains(text, "(ii) Luis Gómez") {
		t.Error("expected second roman label for secretary")
	}
}

func TestCompose_SummaryItemGetsVoteFormula(t *testing.T) {
	text := plain(t, sampleRequest())
	want := "La propuesta fue sometida a votación y aprobada con el voto favorable de sesenta y cinco (65) acciones suscritas y pagadas, cero (0) votos en contra y cero (0) votos en blanco, es decir, por unanimidad."
	if !strings.Contains(text, want) {
		t.Errorf("document missing vote formula %q", want)
	}
}

func TestCompose_SplitVoteDropsUnanimity(t *testing.T) {
	req := sampleRequest()
	req.Company.SubscribedShares = "100"
	req.Shareholders = append(req.Shareholders, acta.Shareholder{Name: "Luis Gómez", Shares: "35", Attends: true})
	req.AgendaItems[0].Votes = acta.VoteTally{Favor: "65", Against: "35"}

	text := plain(t, req)
	if !strings.Contains(text, "sesenta y cinco (65) acciones suscritas y pagadas, treinta y cinco (35) votos en contra y cero (0) votos en blanco.") {
		t.Error("expected split vote wording")
	}
}

func TestCompose_FinalTextWinsOverSummary(t *testing.T) {
	req := sampleRequest()
	req.AgendaItems[0].FinalText = "Primer párrafo redactado.\nSegundo párrafo redactado."

	tree := Compose(req)
	text := tree.PlainText()
	if !strings.Contains(text, "Primer párrafo redactado.") || !strings.Contains(text, "Segundo párrafo redactado.") {
		t.Fatal("expected both drafted paragraphs")
	}
	if strings.Contains(text, "La propuesta fue sometida a votación") {
		t.Error("vote formula must not be appended to drafted text")
	}

	// Each newline-separated chunk becomes its own paragraph section.
	var got []string
	for _, sec := range tree.Sections {
		if sec.Kind == doctree.KindParagraph && len(sec.Runs) == 1 {
			if strings.HasSuffix(sec.Runs[0].Text, "redactado.") {
				got = append(got, sec.Runs[0].Text)
			}
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 drafted paragraphs, got %d", len(got))
	}
}

func TestCompose_PendingPlaceholder(t *testing.T) {
	req := sampleRequest()
	req.AgendaItems = append(req.AgendaItems, acta.AgendaItem{Label: "Reforma de estatutos"})

	text := plain(t, req)
	if !strings.Contains(text, PendingPlaceholder) {
		t.Error("expected pending placeholder for item without summary or text")
	}
}

func TestCompose_MissingFieldsBecomePlaceholders(t *testing.T) {
	text := plain(t, acta.Request{})

	for _, want := range []string{"[RAZÓN SOCIAL]", "[NÚMERO]", "[NIT]", "[DOMICILIO]", "[FECHA]", "[HORA]", "[PRESIDENTE]", "[SECRETARIO]"} {
		if !strings.Contains(text, want) {
			t.Errorf("empty request missing placeholder %q", want)
		}
	}
}

func TestCompose_SignaturesUppercased(t *testing.T) {
	tree := Compose(sampleRequest())
	var sigs []doctree.Signatory
	for _, sec := range tree.Sections {
		if sec.Kind == doctree.KindSignatures {
			sigs = sec.Signatures
		}
	}
	if len(sigs) != 2 {
		t.Fatalf("expected 2 signatories, got %d", len(sigs))
	}
	if sigs[0].Name != "ANA TORRES" || sigs[0].Caption != "Presidente" {
		t.Errorf("unexpected president signatory %+v", sigs[0])
	}
	if sigs[1].Name != "LUIS GÓMEZ" || sigs[1].Caption != "Secretario" {
		t.Errorf("unexpected secretary signatory %+v", sigs[1])
	}
}

func TestCompose_Deterministic(t *testing.T) {
	req := sampleRequest()
	a := Compose(req)
	b := Compose(req)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical trees for identical input")
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(sampleRequest()); got != "Acta_No_15_Ordinaria_Inversiones_El_Roble_S.A.S..docx" {
		t.Errorf("unexpected file name %q", got)
	}
	if got := FileName(acta.Request{}); got != "Acta_No__Ordinaria_SAS.docx" {
		t.Errorf("unexpected fallback file name %q", got)
	}
}

func TestRoman(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "i"}, {2, "ii"}, {4, "iv"}, {5, "v"}, {9, "ix"}, {14, "xiv"}, {0, ""},
	}
	for _, c := range cases {
		if got := roman(c.n); got != c.want {
			t.Errorf("roman(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}
