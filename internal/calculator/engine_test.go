package calculator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mmynk/tripsettle/internal/models"
)

func tripMembers() []models.Member {
	return []models.Member{
		{ID: "m-alice", Name: "Alice"},
		{ID: "m-bob", Name: "Bob"},
		{ID: "m-carol", Name: "Carol"},
	}
}

func TestCalculateSettlements_SinglePayer(t *testing.T) {
	members := tripMembers()
	expenses := []models.Expense{
		{
			ID:       "e1",
			Amount:   dec("90.00"),
			PaidByID: "m-alice",
			Split:    models.EqualSplit{Participants: []string{"m-alice", "m-bob", "m-carol"}},
		},
	}

	settlements, err := CalculateSettlements(expenses, members)
	if err != nil {
		t.Fatalf("CalculateSettlements() error: %v", err)
	}

	want := []models.Settlement{
		{FromID: "m-bob", From: "Bob", ToID: "m-alice", To: "Alice", Amount: dec("30.00")},
		{FromID: "m-carol", From: "Carol", ToID: "m-alice", To: "Alice", Amount: dec("30.00")},
	}
	assertPlan(t, settlements, want)

	// Display names come along for the summary view.
	if settlements[0].From != "Bob" || settlements[0].To != "Alice" {
		t.Errorf("settlement names = %s -> %s, want Bob -> Alice", settlements[0].From, settlements[0].To)
	}
}

func TestCalculateSettlements_Netting(t *testing.T) {
	members := tripMembers()
	expenses := []models.Expense{
		{
			ID:       "e1",
			Amount:   dec("30.00"),
			PaidByID: "m-alice",
			Split:    models.EqualSplit{Participants: []string{"m-alice", "m-bob"}},
		},
		{
			ID:       "e2",
			Amount:   dec("30.00"),
			PaidByID: "m-bob",
			Split:    models.EqualSplit{Participants: []string{"m-alice", "m-bob"}},
		},
	}

	settlements, err := CalculateSettlements(expenses, members)
	if err != nil {
		t.Fatalf("CalculateSettlements() error: %v", err)
	}
	if len(settlements) != 0 {
		t.Errorf("expected no settlements for a netted ledger, got %+v", settlements)
	}
}

func TestCalculateSettlements_Deterministic(t *testing.T) {
	members := tripMembers()
	expenses := []models.Expense{
		{
			ID:       "e1",
			Amount:   dec("100.00"),
			PaidByID: "m-alice",
			Split:    models.EqualSplit{Participants: []string{"m-alice", "m-bob", "m-carol"}},
		},
		{
			ID:       "e2",
			Amount:   dec("47.50"),
			PaidByID: "m-bob",
			Split: models.PercentageSplit{Entries: []models.PercentEntry{
				{MemberID: "m-alice", Percent: dec("33.33")},
				{MemberID: "m-bob", Percent: dec("33.33")},
				{MemberID: "m-carol", Percent: dec("33.34")},
			}},
		},
		{
			ID:       "e3",
			Amount:   dec("12.01"),
			PaidByID: "m-carol",
			Split: models.AmountSplit{Entries: []models.AmountEntry{
				{MemberID: "m-alice", Amount: dec("6.00")},
				{MemberID: "m-bob", Amount: dec("6.01")},
			}},
		},
	}

	first, err := CalculateSettlements(expenses, members)
	if err != nil {
		t.Fatalf("CalculateSettlements() error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := CalculateSettlements(expenses, members)
		if err != nil {
			t.Fatalf("CalculateSettlements() error on run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestCalculateSettlements_PropagatesValidationError(t *testing.T) {
	members := tripMembers()
	expenses := []models.Expense{
		{
			ID:       "e1",
			Amount:   dec("50.00"),
			PaidByID: "m-alice",
			Split: models.PercentageSplit{Entries: []models.PercentEntry{
				{MemberID: "m-alice", Percent: dec("60")},
				{MemberID: "m-bob", Percent: dec("35")},
			}},
		},
	}

	_, err := CalculateSettlements(expenses, members)
	if !errors.Is(err, ErrInvalidSplit) {
		t.Fatalf("CalculateSettlements() error = %v, want %v", err, ErrInvalidSplit)
	}
}
