package compose

import (
	"fmt"
	"strings"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
)

// FileName builds the download name for a rendered acta, for example
// "Acta_No_15_Ordinaria_Inversiones_El_Roble_SAS.docx".
func FileName(req acta.Request) string {
	name := strings.Join(strings.Fields(req.Company.Name), "_")
	if name == "" {
		name = "SAS"
	}
	return fmt.Sprintf("Acta_No_%s_%s_%s.docx", req.Meeting.Number, req.Meeting.KindLabel(), name)
}
