// Package acta defines the input entities for one minutes-generation
// request. Numeric-looking fields arrive as strings from the form wizard
// and are parsed defensively: anything non-numeric counts as zero.
package acta

import (
	"strconv"
	"strings"
)

// MeetingKind selects the assembly type.
type MeetingKind string

const (
	KindOrdinary      MeetingKind = "ordinaria"
	KindExtraordinary MeetingKind = "extraordinaria"
)

// Modality is how the meeting was held.
type Modality string

const (
	ModalityInPerson       Modality = "presencial"
	ModalityVirtual        Modality = "virtual"
	ModalityHybrid         Modality = "mixta"
	ModalityWrittenConsent Modality = "consentimiento"
)

// NoticeRegime is the convocation rule the meeting was held under.
type NoticeRegime string

const (
	NoticeNone    NoticeRegime = "sin"     // universal quorum, no prior notice
	NoticePrior   NoticeRegime = "con"     // convened with prior notice
	NoticeByRight NoticeRegime = "derecho" // by-right meeting (art. 422 C.Co.)
)

// Company identifies the S.A.S. and its capital structure. Capital and
// share fields are raw strings; use ParseAmount to read them.
type Company struct {
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Domicile string `json:"domicile"`
	Registry string `json:"registry,omitempty"` // matrícula mercantil, optional

	AuthorizedCapital string `json:"authorized_capital"`
	SubscribedCapital string `json:"subscribed_capital"`
	PaidCapital       string `json:"paid_capital"`
	NominalValue      string `json:"nominal_value"`

	AuthorizedShares string `json:"authorized_shares"`
	SubscribedShares string `json:"subscribed_shares"`
	PaidShares       string `json:"paid_shares"`
}

// Meeting carries the session details.
type Meeting struct {
	Kind        MeetingKind  `json:"kind"`
	Number      string       `json:"number"`
	Date        string       `json:"date"`       // ISO 2006-01-02
	StartTime   string       `json:"start_time"` // 24h HH:MM
	ClosingTime string       `json:"closing_time"`
	Place       string       `json:"place"`
	Modality    Modality     `json:"modality"`
	Notice      NoticeRegime `json:"notice"`

	// Present only when Notice == NoticePrior.
	NoticeForm      string `json:"notice_form,omitempty"`
	NoticeDate      string `json:"notice_date,omitempty"`
	NoticeDaysAhead string `json:"notice_days_ahead,omitempty"`

	// Required for ordinary meetings.
	FiscalYear string `json:"fiscal_year,omitempty"`
}

// KindLabel returns the capitalized Spanish label used in the document.
func (m Meeting) KindLabel() string {
	if m.Kind == KindExtraordinary {
		return "Extraordinaria"
	}
	return "Ordinaria"
}

// Shareholder is one holder of subscribed shares. Proxy is only meaningful
// when Attends is false.
type Shareholder struct {
	Name      string `json:"name"`
	DocType   string `json:"doc_type"`
	DocNumber string `json:"doc_number"`
	Domicile  string `json:"domicile,omitempty"`
	Shares    string `json:"shares"`
	Attends   bool   `json:"attends"`
	Proxy     string `json:"proxy,omitempty"`
}

// ShareCount returns the parsed share count (never negative).
func (s Shareholder) ShareCount() int {
	n := ParseAmount(s.Shares)
	if n < 0 {
		return 0
	}
	return n
}

// Person is anyone present at the meeting in an official capacity.
type Person struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Capacity string `json:"capacity,omitempty"`
}

// Officers holds the mandatory presiding roles plus any additional persons
// present, in order of appearance.
type Officers struct {
	President Person   `json:"president"`
	Secretary Person   `json:"secretary"`
	Others    []Person `json:"others,omitempty"`
}

// VoteTally is the per-item vote, in subscribed-and-paid shares. Empty
// favor means "all attending shares in favor".
type VoteTally struct {
	Favor   string `json:"favor,omitempty"`
	Against string `json:"against,omitempty"`
	Blank   string `json:"blank,omitempty"`
}

// AgendaItem is one dynamic decision point. FinalText, when set, is the
// drafted prose (possibly multi-paragraph, newline separated) and wins over
// Summary.
type AgendaItem struct {
	Label     string    `json:"label"`
	Summary   string    `json:"summary,omitempty"`
	FinalText string    `json:"final_text,omitempty"`
	Votes     VoteTally `json:"votes"`
}

// Request is the single input record for one generation run.
type Request struct {
	Company      Company       `json:"company"`
	Meeting      Meeting       `json:"meeting"`
	Shareholders []Shareholder `json:"shareholders"`
	Officers     Officers      `json:"officers"`
	AgendaItems  []AgendaItem  `json:"agenda_items"`
}

// ParseAmount reads a numeric string tolerantly: grouping dots, commas and
// spaces are ignored, and anything unparseable is zero.
func ParseAmount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var digits strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '-' && i == 0:
			digits.WriteRune(r)
		case r == '.' || r == ',' || r == ' ':
			// grouping separators
		default:
			if digits.Len() == 0 {
				return 0
			}
			n, _ := strconv.Atoi(digits.String())
			return n
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
