// Package tally computes attendance, quorum and vote arithmetic for one
// meeting. All results are pure functions of the input entities; a fresh
// Calculator is built per generation run.
package tally

import (
	"fmt"
	"math"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/acta"
)

// Calculator derives attendance and voting figures from the company's
// capital structure and the shareholder roster.
type Calculator struct {
	subscribed int
	attending  []acta.Shareholder
	attTotal   int
}

// NewCalculator filters the roster down to attending shareholders and
// precomputes the attending-share total.
func NewCalculator(company acta.Company, shareholders []acta.Shareholder) *Calculator {
	c := &Calculator{subscribed: acta.ParseAmount(company.SubscribedShares)}
	for _, sh := range shareholders {
		if sh.Attends {
			c.attending = append(c.attending, sh)
			c.attTotal += sh.ShareCount()
		}
	}
	return c
}

// Attending returns the attending shareholders in roster order.
func (c *Calculator) Attending() []acta.Shareholder { return c.attending }

// AttendingShares is the sum of share counts of attending shareholders.
func (c *Calculator) AttendingShares() int { return c.attTotal }

// SubscribedShares is the company's subscribed share count.
func (c *Calculator) SubscribedShares() int { return c.subscribed }

// OwnershipPercent is the shareholder's stake in the subscribed capital,
// formatted with two decimals. Zero subscribed shares yields a plain "0".
func (c *Calculator) OwnershipPercent(sh acta.Shareholder) string {
	if c.subscribed == 0 {
		return "0"
	}
	pct := float64(sh.ShareCount()) / float64(c.subscribed) * 100
	return fmt.Sprintf("%.2f", pct)
}

// QuorumPercent is the attending share of the subscribed capital rounded to
// an integer. Defined as 100 when there are no subscribed shares. Note the
// deliberate rounding asymmetry with OwnershipPercent.
func (c *Calculator) QuorumPercent() int {
	if c.subscribed == 0 {
		return 100
	}
	pct := float64(c.attTotal) / float64(c.subscribed) * 100
	return int(math.Round(pct))
}

// MajorityThreshold is the absolute majority of present shares:
// floor(attending/2) + 1.
func (c *Calculator) MajorityThreshold() int {
	return c.attTotal/2 + 1
}

// VoteResult is the resolved tally for one agenda item.
type VoteResult struct {
	Favor     int
	Against   int
	Blank     int
	Approved  bool
	Unanimous bool
}

// Resolve applies the defaulting rules to an item's raw tally: an absent or
// zero favor count means every attending share voted in favor; against and
// blank default to zero.
func (c *Calculator) Resolve(item acta.AgendaItem) VoteResult {
	favor := acta.ParseAmount(item.Votes.Favor)
	if favor == 0 {
		favor = c.attTotal
	}
	against := acta.ParseAmount(item.Votes.Against)
	blank := acta.ParseAmount(item.Votes.Blank)

	return VoteResult{
		Favor:     favor,
		Against:   against,
		Blank:     blank,
		Approved:  favor >= c.MajorityThreshold(),
		Unanimous: favor == c.attTotal && against == 0 && blank == 0,
	}
}
