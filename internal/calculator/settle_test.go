package calculator

import (
	"errors"
	"testing"

	"github.com/mmynk/tripsettle/internal/models"
)

func assertPlan(t *testing.T, got, want []models.Settlement) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d settlements, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].FromID != want[i].FromID || got[i].ToID != want[i].ToID {
			t.Errorf("settlement %d: %s->%s, want %s->%s",
				i, got[i].FromID, got[i].ToID, want[i].FromID, want[i].ToID)
		}
		if !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("settlement %d: amount %s, want %s", i, got[i].Amount, want[i].Amount)
		}
	}
}

func TestPlan(t *testing.T) {
	members := roster("alice", "bob", "carol", "dave")

	tests := []struct {
		name     string
		balances map[string]int64
		want     []models.Settlement
		wantErr  error
	}{
		{
			name:     "one creditor, two equal debtors",
			balances: map[string]int64{"alice": 6000, "bob": -3000, "carol": -3000},
			want: []models.Settlement{
				{FromID: "bob", ToID: "alice", Amount: dec("30.00")},
				{FromID: "carol", ToID: "alice", Amount: dec("30.00")},
			},
		},
		{
			name:     "largest debt settled first",
			balances: map[string]int64{"alice": -5000, "bob": 2000, "carol": 3000},
			want: []models.Settlement{
				{FromID: "alice", ToID: "carol", Amount: dec("30.00")},
				{FromID: "alice", ToID: "bob", Amount: dec("20.00")},
			},
		},
		{
			name:     "debtor split across creditors",
			balances: map[string]int64{"alice": 4000, "bob": 4000, "carol": -8000},
			want: []models.Settlement{
				{FromID: "carol", ToID: "alice", Amount: dec("40.00")},
				{FromID: "carol", ToID: "bob", Amount: dec("40.00")},
			},
		},
		{
			name:     "already settled",
			balances: map[string]int64{"alice": 0, "bob": 0},
			want:     nil,
		},
		{
			name:     "micro-balances within epsilon are dropped",
			balances: map[string]int64{"alice": 1, "bob": -1, "carol": 0},
			want:     nil,
		},
		{
			name:     "unbalanced ledger rejected",
			balances: map[string]int64{"alice": 5000, "bob": -2000},
			wantErr:  ErrUnbalancedLedger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(tt.balances, members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Plan() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Plan() unexpected error: %v", err)
			}
			assertPlan(t, got, tt.want)
		})
	}
}

func TestPlan_TieBreaksByMemberID(t *testing.T) {
	members := roster("alice", "bob", "carol", "dave")

	// bob and carol owe the same amount; bob must be picked first.
	balances := map[string]int64{"alice": 4000, "dave": 2000, "bob": -3000, "carol": -3000}

	got, err := Plan(balances, members)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	want := []models.Settlement{
		{FromID: "bob", ToID: "alice", Amount: dec("30.00")},
		{FromID: "carol", ToID: "dave", Amount: dec("20.00")},
		{FromID: "carol", ToID: "alice", Amount: dec("10.00")},
	}
	assertPlan(t, got, want)
}

func TestPlan_Completeness(t *testing.T) {
	members := roster("a", "b", "c", "d", "e")

	// Applying every settlement must drive each balance within Epsilon of zero.
	balances := map[string]int64{"a": 12345, "b": -2345, "c": -10000, "d": 99, "e": -99}

	settlements, err := Plan(balances, members)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	residual := make(map[string]int64, len(balances))
	for id, b := range balances {
		residual[id] = b
	}
	for _, s := range settlements {
		c := Cents(s.Amount)
		residual[s.FromID] += c
		residual[s.ToID] -= c
	}
	for id, b := range residual {
		if abs64(b) > Epsilon {
			t.Errorf("member %s left with residual %d after applying plan", id, b)
		}
	}
}

func TestPlan_AtMostNMinusOneTransactions(t *testing.T) {
	members := roster("a", "b", "c", "d", "e", "f")
	balances := map[string]int64{
		"a": 500, "b": 1500, "c": -700, "d": -300, "e": -1100, "f": 100,
	}

	settlements, err := Plan(balances, members)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	unsettled := 0
	for _, b := range balances {
		if abs64(b) > Epsilon {
			unsettled++
		}
	}
	if len(settlements) > unsettled-1 {
		t.Errorf("plan has %d transactions for %d unsettled members, want at most %d",
			len(settlements), unsettled, unsettled-1)
	}
}

func TestPlan_DoesNotMutateInput(t *testing.T) {
	members := roster("alice", "bob")
	balances := map[string]int64{"alice": 1000, "bob": -1000}

	if _, err := Plan(balances, members); err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if balances["alice"] != 1000 || balances["bob"] != -1000 {
		t.Errorf("Plan() mutated its input: %v", balances)
	}
}
