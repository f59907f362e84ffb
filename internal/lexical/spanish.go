// Package lexical converts primitive values into Colombian Spanish
// legal-prose strings: cardinal numbers in words, dates and times in the
// long notarial form, and currency figures with es-CO separators.
package lexical

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Placeholders emitted when the source value is missing. Documents must
// always generate; a visible token beats a crash on incomplete input.
const (
	PlaceholderDate = "[FECHA]"
	PlaceholderTime = "[HORA]"
)

var (
	units = [10]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}
	teens = [10]string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve"}
	tens  = [10]string{"", "diez", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	cents = [10]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos"}

	months = [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// NumberToWords renders n as Spanish cardinal words, handling the irregular
// forms: 0 "cero", 10-19, exact 20 "veinte", 21-29 fused "veinti...",
// exact 100 "cien", "mil" and "un millón" without a unit prefix. Negative
// values get a "menos " prefix. Values at or above one billion fall back to
// digits.
func NumberToWords(n int) string {
	switch {
	case n == 0:
		return "cero"
	case n < 0:
		return "menos " + NumberToWords(-n)
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		if n == 20 {
			return "veinte"
		}
		if n < 30 {
			return "veinti" + units[n%10]
		}
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " y " + units[n%10]
	case n == 100:
		return "cien"
	case n < 1000:
		if n%100 == 0 {
			return cents[n/100]
		}
		return cents[n/100] + " " + NumberToWords(n%100)
	case n < 1_000_000:
		head := "mil"
		if th := n / 1000; th != 1 {
			head = NumberToWords(th) + " mil"
		}
		if n%1000 == 0 {
			return head
		}
		return head + " " + NumberToWords(n%1000)
	case n < 1_000_000_000:
		head := "un millón"
		if m := n / 1_000_000; m != 1 {
			head = NumberToWords(m) + " millones"
		}
		if n%1_000_000 == 0 {
			return head
		}
		return head + " " + NumberToWords(n%1_000_000)
	default:
		return strconv.Itoa(n)
	}
}

// LegalDate renders an ISO date (2006-01-02) in the long notarial form:
// "quince (15) del mes de marzo del año dos mil veinticuatro (2024)".
// The year is spelled as "dos mil" plus the words for year−2000; years
// outside [2000, 3000) are unsupported and produce whatever that arithmetic
// yields. Missing or unparseable input yields PlaceholderDate.
func LegalDate(isoDate string) string {
	if isoDate == "" {
		return PlaceholderDate
	}
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return PlaceholderDate
	}
	day := d.Day()
	year := d.Year()
	return fmt.Sprintf("%s (%d) del mes de %s del año dos mil %s (%d)",
		NumberToWords(day), day, months[int(d.Month())-1], NumberToWords(year-2000), year)
}

// LegalTime renders a 24h "HH:MM" time in words with the day-part qualifier
// and a parenthetical numeric 12h time: "las dos y treinta minutos de la
// tarde (2:30 p.m.)". Missing or unparseable input yields PlaceholderTime.
func LegalTime(hhmm string) string {
	if hhmm == "" {
		return PlaceholderTime
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return PlaceholderTime
	}
	h, m := t.Hour(), t.Minute()

	part := "de la noche"
	suffix := "p.m."
	switch {
	case h < 12:
		part = "de la mañana"
		suffix = "a.m."
	case h < 18:
		part = "de la tarde"
	}

	h12 := h
	if h > 12 {
		h12 = h - 12
	} else if h == 0 {
		h12 = 12
	}

	if m == 0 {
		return fmt.Sprintf("las %s %s (%d:%02d %s)", NumberToWords(h12), part, h12, m, suffix)
	}
	return fmt.Sprintf("las %s y %s minutos %s (%d:%02d %s)",
		NumberToWords(h12), NumberToWords(m), part, h12, m, suffix)
}

// Currency strips everything but digits from raw, parses the result and
// renders it with dot thousands separators per es-CO convention. Empty or
// non-numeric input yields the empty string.
func Currency(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return ""
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		out.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if out.Len() > 0 {
			out.WriteByte('.')
		}
		out.WriteString(s[i : i+3])
	}
	return out.String()
}
