// Package compose builds the section tree of an acta de asamblea from the
// input entities. It is the single place the legal prose lives; renderers
// never restate or recompute any of it.
package compose

import (
	"fmt"
	"strings"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/doctree"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/lexical"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/tally"
)

// Fixed agenda points that frame every assembly.
var (
	fixedOpening = []string{
		"Lectura y aprobación del orden del día",
		"Elección del Presidente y Secretario de la Reunión",
		"Verificación del Quórum",
	}
	fixedClosing = []string{
		"Proposiciones y varios",
		"Lectura y aprobación del acta",
	}
)

// PendingPlaceholder marks agenda items that have neither drafted text nor
// a summary.
const PendingPlaceholder = "[Pendiente de redacción]"

// Compose builds the full document tree for one request. It is total:
// missing optional data degrades to bracketed placeholders and the function
// never fails.
func Compose(req acta.Request) *doctree.Tree {
	calc := tally.NewCalculator(req.Company, req.Shareholders)

	name := orPlaceholder(req.Company.Name, "[RAZÓN SOCIAL]")
	number := orPlaceholder(req.Meeting.Number, "[NÚMERO]")
	kind := req.Meeting.KindLabel()

	b := doctree.NewBuilder(fmt.Sprintf("%s — Acta No. %s", name, number))

	b.Heading(1, strings.ToUpper(fmt.Sprintf(
		"REUNIÓN DE ASAMBLEA GENERAL %s DE ACCIONISTAS DE LA SOCIEDAD %s", kind, name)))
	b.Heading(1, fmt.Sprintf("ACTA No. %s.", number))

	composeOpening(b, req, name, kind)
	composeAttendance(b, calc)
	composeConvocation(b, req.Meeting, calc)
	composePresent(b, req.Officers)
	composeAgenda(b, req.AgendaItems, calc)
	composeFixedSections(b, req.Officers, calc)
	composeItems(b, req.AgendaItems, calc)
	composeClosing(b, req.Meeting, calc)
	composeSignatures(b, req.Officers)

	return b.Tree()
}

func composeOpening(b *doctree.Builder, req acta.Request, name, kind string) {
	c := req.Company
	lead := fmt.Sprintf("Siendo %s del %s, se llevó a cabo la Reunión de Asamblea General %s de Accionistas de la sociedad ",
		lexical.LegalTime(req.Meeting.StartTime), lexical.LegalDate(req.Meeting.Date), kind)
	tail := fmt.Sprintf(" (en adelante \"la Sociedad\"), identificada con NIT %s, con domicilio principal en la ciudad de %s",
		orPlaceholder(c.TaxID, "[NIT]"), orPlaceholder(c.Domicile, "[DOMICILIO]"))

	runs := []doctree.Run{
		doctree.Text(lead),
		doctree.BoldText(name),
		doctree.Text(tail),
	}
	if c.Registry != "" {
		runs = append(runs, doctree.Text(fmt.Sprintf(
			", inscrita en la Cámara de Comercio bajo matrícula mercantil No. %s", c.Registry)))
	}
	runs = append(runs, doctree.Text("."))
	b.Paragraph(runs...)
}

func composeAttendance(b *doctree.Builder, calc *tally.Calculator) {
	b.Paragraph(doctree.BoldText("ASISTENCIA:"))

	t := doctree.Table{
		Header: []doctree.Cell{
			{Text: "ASISTENTE", Bold: true},
			{Text: "ACCIONES SUSCRITAS Y PAGADAS", Bold: true},
			{Text: "% PARTICIPACIÓN", Bold: true},
		},
	}
	for _, sh := range calc.Attending() {
		t.Rows = append(t.Rows, []doctree.Cell{
			{Text: strings.ToUpper(orPlaceholder(sh.Name, "[ACCIONISTA]"))},
			{Text: fmt.Sprintf("%d", sh.ShareCount())},
			{Text: calc.OwnershipPercent(sh) + "%"},
		})
	}
	t.Total = []doctree.Cell{
		{Text: "TOTAL", Bold: true},
		{Text: fmt.Sprintf("%d", calc.AttendingShares()), Bold: true},
		{Text: fmt.Sprintf("%d%%", calc.QuorumPercent()), Bold: true},
	}
	b.Table(t)
}

func composeConvocation(b *doctree.Builder, m acta.Meeting, calc *tally.Calculator) {
	switch m.Notice {
	case acta.NoticePrior:
		b.Paragraph(doctree.Text(fmt.Sprintf(
			"Se deja constancia que la reunión fue convocada mediante %s con fecha %s, con una antelación de %s días, dando cumplimiento a los requisitos del artículo 20 de la Ley 1258 de 2008 y los estatutos sociales.",
			orPlaceholder(m.NoticeForm, "[forma de convocatoria]"),
			orPlaceholder(m.NoticeDate, "[fecha]"),
			orPlaceholder(m.NoticeDaysAhead, "[X]"))))
	case acta.NoticeByRight:
		b.Paragraph(doctree.Text(
			"Se deja constancia que la reunión se celebra por derecho propio, conforme al artículo 422 del Código de Comercio."))
	default:
		b.Paragraph(doctree.Text(fmt.Sprintf(
			"Se deja constancia que la reunión se llevó a cabo sin convocatoria previa, toda vez que se encontraban representadas la totalidad de las %s acciones suscritas y pagadas de la Sociedad, correspondientes al ciento por ciento (100%%) del capital suscrito y pagado, y todos los accionistas aceptaron deliberar, de conformidad con el artículo 182 del Código de Comercio.",
			sharesInWords(calc.AttendingShares()))))
	}
}

func composePresent(b *doctree.Builder, off acta.Officers) {
	var entries []string
	add := func(p acta.Person, defaultCapacity string) {
		if p.Name == "" {
			return
		}
		entries = append(entries, fmt.Sprintf("(%s) %s, identificado con %s, en calidad de %s",
			roman(len(entries)+1), p.Name,
			orPlaceholder(p.Document, "[documento]"),
			orPlaceholder(p.Capacity, defaultCapacity)))
	}
	add(off.President, "Presidente de la Reunión")
	add(off.Secretary, "Secretario de la Reunión")
	for _, p := range off.Others {
		add(p, "[calidad]")
	}
	b.Paragraph(doctree.Text("Se encontraban presentes: " + strings.Join(entries, "; ") + "."))
}

func composeAgenda(b *doctree.Builder, items []acta.AgendaItem, calc *tally.Calculator) {
	b.Paragraph(doctree.BoldText("ORDEN DEL DÍA:"))

	all := make([]string, 0, len(fixedOpening)+len(items)+len(fixedClosing))
	all = append(all, fixedOpening...)
	for _, it := range items {
		all = append(all, it.Label)
	}
	all = append(all, fixedClosing...)

	for i, label := range all {
		b.ListItem(fmt.Sprintf("%d. %s;", i+1, label))
	}

	b.Paragraph(doctree.Text(fmt.Sprintf(
		"El orden del día fue aprobado con el voto favorable de %s acciones suscritas y pagadas, cero (0) votos en contra y cero (0) votos en blanco.",
		sharesInWords(calc.AttendingShares()))))
}

func composeFixedSections(b *doctree.Builder, off acta.Officers, calc *tally.Calculator) {
	att := sharesInWords(calc.AttendingShares())

	sectionTitle(b, "LECTURA Y APROBACIÓN DEL ORDEN DEL DÍA")
	b.Paragraph(doctree.Text(fmt.Sprintf(
		"Tras dar lectura al orden del día, fue aprobado con el voto favorable de %s acciones suscritas y pagadas, cero (0) votos en contra y cero (0) votos en blanco, es decir, por unanimidad.", att)))

	sectionTitle(b, "ELECCIÓN DEL PRESIDENTE Y SECRETARIO DE LA REUNIÓN")
	b.Paragraph(doctree.Text(fmt.Sprintf(
		"Se propuso elegir como Presidente al señor %s y como Secretario al señor(a) %s. Los nombramientos fueron aprobados con el voto favorable de %s acciones suscritas y pagadas, cero (0) votos en contra y cero (0) votos en blanco, es decir, por unanimidad.",
		orPlaceholder(off.President.Name, "[NOMBRE]"),
		orPlaceholder(off.Secretary.Name, "[NOMBRE]"), att)))

	sectionTitle(b, "VERIFICACIÓN DEL QUÓRUM")
	b.Paragraph(doctree.Text(fmt.Sprintf(
		"El Secretario comprobó que se encontraban representadas %s acciones suscritas y pagadas, correspondientes al %d%% del capital suscrito y pagado, quedando conformado el quórum deliberatorio y decisorio de conformidad con la Ley y los Estatutos.",
		att, calc.QuorumPercent())))
}

func composeItems(b *doctree.Builder, items []acta.AgendaItem, calc *tally.Calculator) {
	for _, item := range items {
		sectionTitle(b, item.Label)

		switch {
		case strings.TrimSpace(item.FinalText) != "":
			for _, para := range strings.Split(item.FinalText, "\n") {
				para = strings.TrimSpace(para)
				if para != "" {
					b.Paragraph(doctree.Text(para))
				}
			}
		case strings.TrimSpace(item.Summary) != "":
			v := calc.Resolve(item)
			unanimity := ""
			if v.Unanimous {
				unanimity = ", es decir, por unanimidad"
			}
			b.Paragraph(doctree.Text(item.Summary))
			b.Paragraph(doctree.Text(fmt.Sprintf(
				"La propuesta fue sometida a votación y aprobada con el voto favorable de %s acciones suscritas y pagadas, %s votos en contra y %s votos en blanco%s.",
				sharesInWords(v.Favor), sharesInWords(v.Against), sharesInWords(v.Blank), unanimity)))
		default:
			b.Paragraph(doctree.MutedText(PendingPlaceholder))
		}
	}
}

func composeClosing(b *doctree.Builder, m acta.Meeting, calc *tally.Calculator) {
	sectionTitle(b, "PROPOSICIONES Y VARIOS")
	b.Paragraph(doctree.Text(
		"Se dispuso del espacio para proposiciones. Ninguno de los presentes formuló proposiciones adicionales."))

	sectionTitle(b, "LECTURA Y APROBACIÓN DEL ACTA")
	b.Paragraph(doctree.Text(fmt.Sprintf(
		"Se elaboró la presente acta y fue sometida a consideración de la Asamblea. Fue aprobada con el voto favorable de %s acciones suscritas y pagadas, cero (0) votos en contra y cero (0) votos en blanco, es decir, por unanimidad.",
		sharesInWords(calc.AttendingShares()))))

	b.Paragraph(doctree.Text(fmt.Sprintf("Se levantó la sesión a %s.", lexical.LegalTime(m.ClosingTime))))
	b.Paragraph(doctree.Text("En constancia firman:"))
}

func composeSignatures(b *doctree.Builder, off acta.Officers) {
	b.Signatures(
		doctree.Signatory{
			Name:    strings.ToUpper(orPlaceholder(off.President.Name, "[PRESIDENTE]")),
			Caption: "Presidente",
		},
		doctree.Signatory{
			Name:    strings.ToUpper(orPlaceholder(off.Secretary.Name, "[SECRETARIO]")),
			Caption: "Secretario",
		},
	)
}

func sectionTitle(b *doctree.Builder, text string) {
	b.Heading(2, strings.ToUpper(text)+".")
}

// sharesInWords renders a count in the notarial words-then-digits form,
// e.g. "sesenta y cinco (65)".
func sharesInWords(n int) string {
	return fmt.Sprintf("%s (%d)", lexical.NumberToWords(n), n)
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// roman renders n as a lowercase roman numeral for the persons-present
// ordinal labels.
func roman(n int) string {
	if n <= 0 {
		return ""
	}
	vals := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syms := []string{"m", "cm", "d", "cd", "c", "xc", "l", "xl", "x", "ix", "v", "iv", "i"}
	var sb strings.Builder
	for i, v := range vals {
		for n >= v {
			sb.WriteString(syms[i])
			n -= v
		}
	}
	return sb.String()
}
