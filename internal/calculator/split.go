package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsettle/internal/models"
)

// percentTolerance is how far split percentages may drift from 100 before
// the split is rejected rather than repaired.
var percentTolerance = decimal.New(1, -2)

// ResolveShares computes each split participant's share of a single expense
// in minor units. Every share is non-negative and the shares sum to exactly
// the expense amount; any rounding residual is repaired deterministically.
//
// The expense is validated first: the payer and every participant must be on
// the roster (ErrUnknownMember), the split must list at least one participant
// (ErrEmptySplit), and amounts/percentages must reconcile with the total
// (ErrInvalidSplit).
func ResolveShares(exp models.Expense, members []models.Member) (map[string]int64, error) {
	roster := make(map[string]bool, len(members))
	for _, m := range members {
		roster[m.ID] = true
	}

	if exp.Split == nil {
		return nil, fmt.Errorf("%w: expense has no split", ErrEmptySplit)
	}
	participants := exp.Split.ParticipantIDs()
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: split lists no participants", ErrEmptySplit)
	}
	if !roster[exp.PaidByID] {
		return nil, fmt.Errorf("%w: payer %q is not on the roster", ErrUnknownMember, exp.PaidByID)
	}
	seen := make(map[string]bool, len(participants))
	for _, id := range participants {
		if !roster[id] {
			return nil, fmt.Errorf("%w: participant %q is not on the roster", ErrUnknownMember, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate participant %q", ErrInvalidSplit, id)
		}
		seen[id] = true
	}

	total := Cents(exp.Amount)
	if total <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidSplit, exp.Amount)
	}

	switch split := exp.Split.(type) {
	case models.EqualSplit:
		return equalShares(total, split.Participants), nil
	case models.AmountSplit:
		return amountShares(total, split.Entries)
	case models.PercentageSplit:
		return percentageShares(total, split.Entries)
	default:
		return nil, fmt.Errorf("%w: unsupported split type %q", ErrInvalidSplit, exp.Split.Type())
	}
}

// equalShares divides the total evenly, handing out the remainder cents one
// at a time to participants in ascending member-ID order so the result is
// reproducible.
func equalShares(total int64, participants []string) map[string]int64 {
	n := int64(len(participants))
	base := total / n
	rem := total - base*n

	ordered := append([]string(nil), participants...)
	sort.Strings(ordered)

	shares := make(map[string]int64, len(participants))
	for _, id := range ordered {
		shares[id] = base
		if rem > 0 {
			shares[id]++
			rem--
		}
	}
	return shares
}

// amountShares takes the provided per-member amounts verbatim. A difference
// from the total of at most Epsilon is treated as rounding noise and absorbed
// by the largest share; anything bigger is rejected.
func amountShares(total int64, entries []models.AmountEntry) (map[string]int64, error) {
	shares := make(map[string]int64, len(entries))
	var sum int64
	for _, e := range entries {
		c := Cents(e.Amount)
		if c < 0 {
			return nil, fmt.Errorf("%w: negative amount for member %q", ErrInvalidSplit, e.MemberID)
		}
		shares[e.MemberID] = c
		sum += c
	}

	if diff := total - sum; diff != 0 {
		if abs64(diff) > Epsilon {
			return nil, fmt.Errorf("%w: split amounts sum to %s, expense total is %s",
				ErrInvalidSplit, FromCents(sum), FromCents(total))
		}
		absorbResidual(shares, diff)
	}
	return shares, nil
}

// percentageShares rounds amount*percent/100 to the minor unit per entry,
// then repairs the cumulative rounding residual via the largest share.
func percentageShares(total int64, entries []models.PercentEntry) (map[string]int64, error) {
	sumPct := decimal.Zero
	for _, e := range entries {
		if e.Percent.IsNegative() {
			return nil, fmt.Errorf("%w: negative percentage for member %q", ErrInvalidSplit, e.MemberID)
		}
		sumPct = sumPct.Add(e.Percent)
	}
	if sumPct.Sub(hundred).Abs().GreaterThan(percentTolerance) {
		return nil, fmt.Errorf("%w: split percentages sum to %s, want 100", ErrInvalidSplit, sumPct)
	}

	totalDec := decimal.NewFromInt(total)
	shares := make(map[string]int64, len(entries))
	var sum int64
	for _, e := range entries {
		c := totalDec.Mul(e.Percent).Div(hundred).Round(0).IntPart()
		shares[e.MemberID] = c
		sum += c
	}

	if diff := total - sum; diff != 0 {
		absorbResidual(shares, diff)
	}
	return shares, nil
}

// absorbResidual adds diff to the largest share, breaking ties by ascending
// member ID, so the shares sum exactly to the expense total.
func absorbResidual(shares map[string]int64, diff int64) {
	ids := make([]string, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	target := ids[0]
	for _, id := range ids[1:] {
		if shares[id] > shares[target] {
			target = id
		}
	}
	shares[target] += diff
}
