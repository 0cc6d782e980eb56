package calculator

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmynk/tripsettle/internal/models"
)

func TestAggregate(t *testing.T) {
	members := roster("alice", "bob", "carol")

	tests := []struct {
		name     string
		expenses []models.Expense
		want     map[string]int64
		wantErr  error
	}{
		{
			name: "single equal expense",
			expenses: []models.Expense{
				{
					ID:       "e1",
					Amount:   dec("90.00"),
					PaidByID: "alice",
					Split:    models.EqualSplit{Participants: []string{"alice", "bob", "carol"}},
				},
			},
			want: map[string]int64{"alice": 6000, "bob": -3000, "carol": -3000},
		},
		{
			name: "two expenses net to zero",
			expenses: []models.Expense{
				{
					ID:       "e1",
					Amount:   dec("30.00"),
					PaidByID: "alice",
					Split:    models.EqualSplit{Participants: []string{"alice", "bob"}},
				},
				{
					ID:       "e2",
					Amount:   dec("30.00"),
					PaidByID: "bob",
					Split:    models.EqualSplit{Participants: []string{"alice", "bob"}},
				},
			},
			want: map[string]int64{"alice": 0, "bob": 0, "carol": 0},
		},
		{
			name:     "no expenses, every member still present",
			expenses: nil,
			want:     map[string]int64{"alice": 0, "bob": 0, "carol": 0},
		},
		{
			name: "mixed split types",
			expenses: []models.Expense{
				{
					ID:       "e1",
					Amount:   dec("100.00"),
					PaidByID: "alice",
					Split: models.AmountSplit{Entries: []models.AmountEntry{
						{MemberID: "bob", Amount: dec("60.00")},
						{MemberID: "carol", Amount: dec("40.00")},
					}},
				},
				{
					ID:       "e2",
					Amount:   dec("50.00"),
					PaidByID: "bob",
					Split: models.PercentageSplit{Entries: []models.PercentEntry{
						{MemberID: "alice", Percent: dec("50")},
						{MemberID: "carol", Percent: dec("50")},
					}},
				},
			},
			// e1: alice +10000, bob -6000, carol -4000
			// e2: bob +5000, alice -2500, carol -2500
			want: map[string]int64{"alice": 7500, "bob": -1000, "carol": -6500},
		},
		{
			name: "one invalid expense fails the whole aggregation",
			expenses: []models.Expense{
				{
					ID:       "e1",
					Amount:   dec("10.00"),
					PaidByID: "alice",
					Split:    models.EqualSplit{Participants: []string{"alice", "bob"}},
				},
				{
					ID:       "e2",
					Amount:   dec("50.00"),
					PaidByID: "alice",
					Split: models.AmountSplit{Entries: []models.AmountEntry{
						{MemberID: "alice", Amount: dec("20.00")},
						{MemberID: "bob", Amount: dec("25.00")},
					}},
				},
			},
			wantErr: ErrInvalidSplit,
		},
		{
			name: "expense referencing a stranger",
			expenses: []models.Expense{
				{
					ID:       "e1",
					Amount:   dec("10.00"),
					PaidByID: "mallory",
					Split:    models.EqualSplit{Participants: []string{"alice", "bob"}},
				},
			},
			wantErr: ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := Aggregate(tt.expenses, members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Aggregate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Aggregate() unexpected error: %v", err)
			}

			if len(balances) != len(members) {
				t.Errorf("got %d balances, want %d", len(balances), len(members))
			}
			var sum int64
			for id, want := range tt.want {
				if got := balances[id]; got != want {
					t.Errorf("balance[%s] = %d, want %d", id, got, want)
				}
			}
			for _, b := range balances {
				sum += b
			}
			if sum != 0 {
				t.Errorf("conservation violated: balances sum to %d", sum)
			}
		})
	}
}

func TestAggregate_ErrorNamesExpense(t *testing.T) {
	members := roster("alice", "bob")
	expenses := []models.Expense{
		{
			ID:       "exp-42",
			Amount:   dec("10.00"),
			PaidByID: "alice",
			Split:    models.EqualSplit{},
		},
	}

	_, err := Aggregate(expenses, members)
	if err == nil {
		t.Fatal("Aggregate() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "exp-42") {
		t.Errorf("error should name the offending expense, got: %v", err)
	}
}

func TestApplySettlements(t *testing.T) {
	balances := map[string]int64{"alice": 6000, "bob": -3000, "carol": -3000}

	records := []models.SettlementRecord{
		{ID: "s1", FromMemberID: "bob", ToMemberID: "alice", Amount: dec("30.00")},
	}
	if err := ApplySettlements(balances, records); err != nil {
		t.Fatalf("ApplySettlements() error: %v", err)
	}

	want := map[string]int64{"alice": 3000, "bob": 0, "carol": -3000}
	for id, w := range want {
		if balances[id] != w {
			t.Errorf("balance[%s] = %d, want %d", id, balances[id], w)
		}
	}

	var sum int64
	for _, b := range balances {
		sum += b
	}
	if sum != 0 {
		t.Errorf("conservation violated after settlements: sum = %d", sum)
	}
}

func TestApplySettlements_UnknownMember(t *testing.T) {
	balances := map[string]int64{"alice": 1000, "bob": -1000}
	records := []models.SettlementRecord{
		{ID: "s1", FromMemberID: "mallory", ToMemberID: "alice", Amount: dec("5.00")},
	}

	err := ApplySettlements(balances, records)
	if !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("ApplySettlements() error = %v, want %v", err, ErrUnknownMember)
	}
}
