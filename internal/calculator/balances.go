package calculator

import (
	"fmt"

	"github.com/mmynk/tripsettle/internal/models"
)

// Aggregate folds every expense through ResolveShares into one net balance
// per member, in minor units. Positive means the member is owed money,
// negative means the member owes. Every roster member appears in the result,
// including members with zero activity.
//
// Each expense is validated independently; a single invalid expense fails the
// whole aggregation with the originating error. Skipping it silently would
// break the conservation invariant downstream.
func Aggregate(expenses []models.Expense, members []models.Member) (map[string]int64, error) {
	balances := make(map[string]int64, len(members))
	for _, m := range members {
		balances[m.ID] = 0
	}

	for _, exp := range expenses {
		shares, err := ResolveShares(exp, members)
		if err != nil {
			return nil, fmt.Errorf("expense %s: %w", exp.ID, err)
		}

		// Credit the payer with the full amount, debit each participant
		// by their share. Order is irrelevant: the fold is commutative.
		balances[exp.PaidByID] += Cents(exp.Amount)
		for id, share := range shares {
			balances[id] -= share
		}
	}

	// Conservation invariant: every expense is fully allocated between its
	// payer and participants, so the balances must sum to zero.
	var sum int64
	for _, b := range balances {
		sum += b
	}
	if abs64(sum) > Epsilon {
		return nil, fmt.Errorf("%w: balances sum to %s after aggregation", ErrUnbalancedLedger, FromCents(sum))
	}

	return balances, nil
}

// ApplySettlements nets recorded payments out of a balance map in place:
// the payer is credited, the receiver debited. The conservation invariant is
// preserved because each record moves value between two members.
func ApplySettlements(balances map[string]int64, records []models.SettlementRecord) error {
	for _, r := range records {
		if _, ok := balances[r.FromMemberID]; !ok {
			return fmt.Errorf("settlement %s: %w: payer %q", r.ID, ErrUnknownMember, r.FromMemberID)
		}
		if _, ok := balances[r.ToMemberID]; !ok {
			return fmt.Errorf("settlement %s: %w: receiver %q", r.ID, ErrUnknownMember, r.ToMemberID)
		}
		c := Cents(r.Amount)
		balances[r.FromMemberID] += c
		balances[r.ToMemberID] -= c
	}
	return nil
}
