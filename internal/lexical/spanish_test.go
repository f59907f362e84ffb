package lexical

import "testing"

func TestNumberToWords_Irregulars(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "cero"},
		{1, "uno"},
		{9, "nueve"},
		{10, "diez"},
		{16, "dieciséis"},
		{19, "diecinueve"},
		{20, "veinte"},
		{21, "veintiuno"},
		{29, "veintinueve"},
		{30, "treinta"},
		{35, "treinta y cinco"},
		{65, "sesenta y cinco"},
		{99, "noventa y nueve"},
		{100, "cien"},
		{101, "ciento uno"},
		{500, "quinientos"},
		{735, "setecientos treinta y cinco"},
		{1000, "mil"},
		{1001, "mil uno"},
		{2024, "dos mil veinticuatro"},
		{65000, "sesenta y cinco mil"},
		{1000000, "un millón"},
		{2500000, "dos millones quinientos mil"},
	}
	for _, c := range cases {
		if got := NumberToWords(c.n); got != c.want {
			t.Errorf("NumberToWords(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}

func TestNumberToWords_Negative(t *testing.T) {
	if got := NumberToWords(-42); got != "menos cuarenta y dos" {
		t.Errorf("expected %q, got %q", "menos cuarenta y dos", got)
	}
}

func TestNumberToWords_BillionFallsBackToDigits(t *testing.T) {
	if got := NumberToWords(1_000_000_000); got != "1000000000" {
		t.Errorf("expected digits fallback, got %q", got)
	}
}

func TestLegalDate(t *testing.T) {
	got := LegalDate("2024-03-15")
	want := "quince (15) del mes de marzo del año dos mil veinticuatro (2024)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLegalDate_FirstOfJanuary(t *testing.T) {
	got := LegalDate("2025-01-01")
	want := "uno (1) del mes de enero del año dos mil veinticinco (2025)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLegalDate_Invalid(t *testing.T) {
	if got := LegalDate(""); got != PlaceholderDate {
		t.Errorf("expected placeholder for empty date, got %q", got)
	}
	if got := LegalDate("15/03/2024"); got != PlaceholderDate {
		t.Errorf("expected placeholder for malformed date, got %q", got)
	}
}

func TestLegalTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00", "las nueve de la mañana (9:00 a.m.)"},
		{"14:30", "las dos y treinta minutos de la tarde (2:30 p.m.)"},
		{"20:15", "las ocho y quince minutos de la noche (8:15 p.m.)"},
		{"12:00", "las doce de la tarde (12:00 p.m.)"},
		{"00:05", "las doce y cinco minutos de la mañana (12:05 a.m.)"},
	}
	for _, c := range cases {
		if got := LegalTime(c.in); got != c.want {
			t.Errorf("LegalTime(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestLegalTime_Invalid(t *testing.T) {
	if got := LegalTime(""); got != PlaceholderTime {
		t.Errorf("expected placeholder for empty time, got %q", got)
	}
	if got := LegalTime("25:99"); got != PlaceholderTime {
		t.Errorf("expected placeholder for malformed time, got %q", got)
	}
}

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50000000", "50.000.000"},
		{"$ 1.234.567", "1.234.567"},
		{"1,500", "1.500"},
		{"999", "999"},
		{"0", "0"},
		{"", ""},
		{"sin valor", ""},
	}
	for _, c := range cases {
		if got := Currency(c.in); got != c.want {
			t.Errorf("Currency(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
