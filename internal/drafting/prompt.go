package drafting

import (
	"fmt"
	"strings"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/lexical"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/tally"
)

// BuildContext assembles the meeting facts LucIA needs to draft any item:
// company identification, capital structure, quorum and the item's vote
// breakdown, all in the same units the final acta uses (shares, not people).
func BuildContext(req acta.Request, item acta.AgendaItem) string {
	calc := tally.NewCalculator(req.Company, req.Shareholders)

	var sb strings.Builder
	fmt.Fprintf(&sb, "DATOS DE LA SOCIEDAD: %s, NIT %s, domicilio en %s.\n",
		req.Company.Name, req.Company.TaxID, req.Company.Domicile)
	fmt.Fprintf(&sb, "Capital suscrito: $%s representado en %s acciones suscritas.\n",
		lexical.Currency(req.Company.SubscribedCapital), req.Company.SubscribedShares)
	fmt.Fprintf(&sb, "Capital pagado: $%s representado en %s acciones pagadas.\n",
		lexical.Currency(req.Company.PaidCapital), req.Company.PaidShares)
	fmt.Fprintf(&sb, "TIPO DE ASAMBLEA: %s\n", req.Meeting.KindLabel())
	if req.Meeting.Kind == acta.KindOrdinary && req.Meeting.FiscalYear != "" {
		fmt.Fprintf(&sb, "PERÍODO FINANCIERO: %s\n", req.Meeting.FiscalYear)
	}
	fmt.Fprintf(&sb, "ACCIONES PRESENTES EN LA REUNIÓN: %d acciones suscritas y pagadas (%d%% del capital suscrito).\n",
		calc.AttendingShares(), calc.QuorumPercent())

	names := make([]string, 0, len(calc.Attending()))
	for _, sh := range calc.Attending() {
		names = append(names, fmt.Sprintf("%s (%s acciones)", sh.Name, sh.Shares))
	}
	fmt.Fprintf(&sb, "ACCIONISTAS PRESENTES: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&sb, "PRESIDENTE: %s | SECRETARIO: %s\n",
		req.Officers.President.Name, req.Officers.Secretary.Name)

	res := calc.Resolve(item)
	fmt.Fprintf(&sb, "VOTACIÓN: %d acciones suscritas y pagadas a favor, %d en contra, %d en blanco.",
		res.Favor, res.Against, res.Blank)

	return sb.String()
}

// BuildPrompt wraps the lawyer's summary into the drafting instruction for
// one agenda item.
func BuildPrompt(item acta.AgendaItem) string {
	return fmt.Sprintf(`Redacta el punto del acta de asamblea de accionistas titulado "%s".

RESUMEN DEL ABOGADO SOBRE LO QUE SE DECIDIÓ:
%s

Redacta el texto completo de este punto del acta incluyendo la deliberación, la propuesta, y el resultado de la votación con el número de acciones suscritas y pagadas que votaron a favor, en contra y en blanco. El texto debe cumplir con todos los requisitos del Art. 431 del Código de Comercio y la normatividad aplicable.`,
		item.Label, item.Summary)
}
