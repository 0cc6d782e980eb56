package calculator

import "github.com/mmynk/tripsettle/internal/models"

// CalculateSettlements is the engine's single entry point: it aggregates the
// expenses into net balances and plans the payments that settle them.
//
// The inputs are read-only snapshots owned by the caller; nothing is retained
// after the call, and identical inputs always produce the identical plan.
func CalculateSettlements(expenses []models.Expense, members []models.Member) ([]models.Settlement, error) {
	balances, err := Aggregate(expenses, members)
	if err != nil {
		return nil, err
	}
	return Plan(balances, members)
}
