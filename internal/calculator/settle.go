package calculator

import (
	"fmt"
	"sort"

	"github.com/mmynk/tripsettle/internal/models"
)

// party is one side of the settlement loop; cents is always the positive
// outstanding amount.
type party struct {
	id    string
	cents int64
}

// Plan emits an ordered list of payments that zeroes out the given balances,
// using the greedy max-debtor/max-creditor heuristic. Optimal
// minimum-transaction settlement is NP-hard; for trip-sized groups the greedy
// plan is small (at most n-1 payments for n unsettled members) and stable.
//
// Members whose balance is within Epsilon of zero are already settled and
// emit nothing. If the balances do not sum to zero within Epsilon the caller
// handed over inconsistent data and Plan fails with ErrUnbalancedLedger.
func Plan(balances map[string]int64, members []models.Member) ([]models.Settlement, error) {
	var sum int64
	for _, b := range balances {
		sum += b
	}
	if abs64(sum) > Epsilon {
		return nil, fmt.Errorf("%w: balances sum to %s", ErrUnbalancedLedger, FromCents(sum))
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	// Partition into debtors and creditors in ascending-ID order so the
	// whole run is deterministic regardless of map iteration order.
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var debtors, creditors []*party
	for _, id := range ids {
		switch b := balances[id]; {
		case b > Epsilon:
			creditors = append(creditors, &party{id: id, cents: b})
		case b < -Epsilon:
			debtors = append(debtors, &party{id: id, cents: -b})
		}
	}

	var settlements []models.Settlement
	for len(debtors) > 0 && len(creditors) > 0 {
		d := largest(debtors)
		c := largest(creditors)

		transfer := min(d.cents, c.cents)
		settlements = append(settlements, models.Settlement{
			FromID: d.id,
			From:   names[d.id],
			ToID:   c.id,
			To:     names[c.id],
			Amount: FromCents(transfer),
		})

		d.cents -= transfer
		c.cents -= transfer

		// Each step zeroes at least one party, so the loop terminates in
		// at most len(debtors)+len(creditors)-1 iterations.
		debtors = dropSettled(debtors)
		creditors = dropSettled(creditors)
	}

	return settlements, nil
}

// largest returns the party with the biggest outstanding amount, breaking
// ties by ascending member ID.
func largest(parties []*party) *party {
	best := parties[0]
	for _, p := range parties[1:] {
		if p.cents > best.cents || (p.cents == best.cents && p.id < best.id) {
			best = p
		}
	}
	return best
}

// dropSettled removes parties whose residual fell within Epsilon of zero,
// preserving order.
func dropSettled(parties []*party) []*party {
	out := parties[:0]
	for _, p := range parties {
		if p.cents > Epsilon {
			out = append(out, p)
		}
	}
	return out
}
