package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsettle/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newTestTrip creates a trip with an owner and two extra members, returning
// the trip with its roster loaded.
func newTestTrip(t *testing.T, store *SQLiteStore) *models.Trip {
	t.Helper()
	ctx := context.Background()

	owner := models.NewUser("owner@example.com", "Olive", "hash")
	if err := store.CreateUser(ctx, owner); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	trip := &models.Trip{Name: "Lisbon", Currency: "EUR", OwnerID: owner.ID}
	if err := store.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		m := &models.Member{TripID: trip.ID, Name: name}
		if err := store.AddMember(ctx, m); err != nil {
			t.Fatalf("AddMember(%s): %v", name, err)
		}
	}

	got, err := store.GetTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	return got
}

func TestTripRoundtrip(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)

	if trip.Name != "Lisbon" || trip.Currency != "EUR" {
		t.Errorf("trip = %+v, want Lisbon/EUR", trip)
	}
	if len(trip.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(trip.Members))
	}
	// Roster comes back ordered by name.
	if trip.Members[0].Name != "Alice" || trip.Members[2].Name != "Carol" {
		t.Errorf("roster order: %+v", trip.Members)
	}
}

func TestListTripsByUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := models.NewUser("a@example.com", "A", "hash")
	other := models.NewUser("b@example.com", "B", "hash")
	for _, u := range []*models.User{owner, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
	}

	mine := &models.Trip{Name: "Mine", OwnerID: owner.ID}
	theirs := &models.Trip{Name: "Theirs", OwnerID: other.ID}
	for _, trip := range []*models.Trip{mine, theirs} {
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip: %v", err)
		}
	}

	// Linking the owner as a member of the other trip makes it listed too.
	if err := store.AddMember(ctx, &models.Member{TripID: theirs.ID, Name: "A", UserID: owner.ID}); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	trips, err := store.ListTripsByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListTripsByUser: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2: %+v", len(trips), trips)
	}
}

func TestExpenseRoundtrip_EqualSplit(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	ids := []string{trip.Members[0].ID, trip.Members[1].ID}
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Dinner",
		Amount:      dec("45.50"),
		PaidByID:    ids[0],
		Category:    "food",
		Split:       models.EqualSplit{Participants: ids},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if !got.Amount.Equal(dec("45.50")) {
		t.Errorf("amount = %s, want 45.50", got.Amount)
	}
	split, ok := got.Split.(models.EqualSplit)
	if !ok {
		t.Fatalf("split type = %T, want EqualSplit", got.Split)
	}
	if len(split.Participants) != 2 || split.Participants[0] != ids[0] || split.Participants[1] != ids[1] {
		t.Errorf("participants = %v, want %v in order", split.Participants, ids)
	}
}

func TestExpenseRoundtrip_AmountSplit(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a, b := trip.Members[0].ID, trip.Members[1].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Taxi",
		Amount:      dec("30.00"),
		PaidByID:    a,
		Split: models.AmountSplit{Entries: []models.AmountEntry{
			{MemberID: a, Amount: dec("12.50")},
			{MemberID: b, Amount: dec("17.50")},
		}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	split, ok := got.Split.(models.AmountSplit)
	if !ok {
		t.Fatalf("split type = %T, want AmountSplit", got.Split)
	}
	if len(split.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(split.Entries))
	}
	if !split.Entries[0].Amount.Equal(dec("12.50")) || !split.Entries[1].Amount.Equal(dec("17.50")) {
		t.Errorf("entries = %+v", split.Entries)
	}
}

func TestExpenseRoundtrip_PercentageSplit(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a, b, c := trip.Members[0].ID, trip.Members[1].ID, trip.Members[2].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Museum",
		Amount:      dec("60.00"),
		PaidByID:    b,
		Split: models.PercentageSplit{Entries: []models.PercentEntry{
			{MemberID: a, Percent: dec("33.33")},
			{MemberID: b, Percent: dec("33.33")},
			{MemberID: c, Percent: dec("33.34")},
		}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	split, ok := got.Split.(models.PercentageSplit)
	if !ok {
		t.Fatalf("split type = %T, want PercentageSplit", got.Split)
	}
	// Percentages survive the roundtrip losslessly.
	if !split.Entries[0].Percent.Equal(dec("33.33")) || !split.Entries[2].Percent.Equal(dec("33.34")) {
		t.Errorf("entries = %+v", split.Entries)
	}
}

func TestUpdateExpense_ReplacesSplit(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a, b := trip.Members[0].ID, trip.Members[1].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Groceries",
		Amount:      dec("20.00"),
		PaidByID:    a,
		Split:       models.EqualSplit{Participants: []string{a, b}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	expense.Description = "Groceries + wine"
	expense.Amount = dec("35.00")
	expense.Split = models.AmountSplit{Entries: []models.AmountEntry{
		{MemberID: a, Amount: dec("10.00")},
		{MemberID: b, Amount: dec("25.00")},
	}}
	if err := store.UpdateExpense(ctx, expense); err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if got.Description != "Groceries + wine" || !got.Amount.Equal(dec("35.00")) {
		t.Errorf("expense = %+v", got)
	}
	if _, ok := got.Split.(models.AmountSplit); !ok {
		t.Fatalf("split type = %T, want AmountSplit after update", got.Split)
	}
}

func TestListExpensesByTrip_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a := trip.Members[0].ID
	for i, date := range []int64{100, 300, 200} {
		expense := &models.Expense{
			TripID:      trip.ID,
			Description: "e",
			Amount:      dec("10.00"),
			PaidByID:    a,
			Split:       models.EqualSplit{Participants: []string{a}},
			Date:        date,
			CreatedAt:   int64(i + 1),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense: %v", err)
		}
	}

	expenses, err := store.ListExpensesByTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListExpensesByTrip: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("got %d expenses, want 3", len(expenses))
	}
	if expenses[0].Date != 300 || expenses[1].Date != 200 || expenses[2].Date != 100 {
		t.Errorf("order = %d, %d, %d; want 300, 200, 100",
			expenses[0].Date, expenses[1].Date, expenses[2].Date)
	}
}

func TestMemberHasExpenses(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a, b, c := trip.Members[0].ID, trip.Members[1].ID, trip.Members[2].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Dinner",
		Amount:      dec("10.00"),
		PaidByID:    a,
		Split:       models.EqualSplit{Participants: []string{a, b}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	for _, tc := range []struct {
		memberID string
		want     bool
	}{
		{a, true},  // payer
		{b, true},  // split participant
		{c, false}, // uninvolved
	} {
		got, err := store.MemberHasExpenses(ctx, trip.ID, tc.memberID)
		if err != nil {
			t.Fatalf("MemberHasExpenses(%s): %v", tc.memberID, err)
		}
		if got != tc.want {
			t.Errorf("MemberHasExpenses(%s) = %v, want %v", tc.memberID, got, tc.want)
		}
	}
}

func TestRemoveMember(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	if err := store.RemoveMember(ctx, trip.ID, trip.Members[2].ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	got, err := store.GetTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if len(got.Members) != 2 {
		t.Errorf("got %d members after removal, want 2", len(got.Members))
	}

	if err := store.RemoveMember(ctx, trip.ID, "no-such-member"); err == nil {
		t.Error("RemoveMember of unknown member should fail")
	}
}

func TestSettlementRoundtrip(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	record := &models.SettlementRecord{
		TripID:       trip.ID,
		FromMemberID: trip.Members[1].ID,
		ToMemberID:   trip.Members[0].ID,
		Amount:       dec("30.00"),
		CreatedBy:    trip.OwnerID,
		Note:         "paid in cash",
	}
	if err := store.CreateSettlement(ctx, record); err != nil {
		t.Fatalf("CreateSettlement: %v", err)
	}

	records, err := store.ListSettlementsByTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListSettlementsByTrip: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if !got.Amount.Equal(dec("30.00")) || got.Note != "paid in cash" {
		t.Errorf("record = %+v", got)
	}

	if err := store.DeleteSettlement(ctx, record.ID); err != nil {
		t.Fatalf("DeleteSettlement: %v", err)
	}
	if err := store.DeleteSettlement(ctx, record.ID); err == nil {
		t.Error("deleting a deleted settlement should fail")
	}
}

func TestComments(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a := trip.Members[0].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Dinner",
		Amount:      dec("10.00"),
		PaidByID:    a,
		Split:       models.EqualSplit{Participants: []string{a}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	for i, body := range []string{"was it worth it?", "absolutely"} {
		comment := &models.Comment{
			ExpenseID: expense.ID,
			AuthorID:  a,
			Body:      body,
			CreatedAt: int64(i + 1),
		}
		if err := store.AddComment(ctx, comment); err != nil {
			t.Fatalf("AddComment: %v", err)
		}
	}

	got, err := store.GetExpense(ctx, expense.ID)
	if err != nil {
		t.Fatalf("GetExpense: %v", err)
	}
	if len(got.Comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(got.Comments))
	}
	if got.Comments[0].Body != "was it worth it?" {
		t.Errorf("comments out of order: %+v", got.Comments)
	}
}

func TestDeleteTrip_Cascades(t *testing.T) {
	store := newTestStore(t)
	trip := newTestTrip(t, store)
	ctx := context.Background()

	a := trip.Members[0].ID
	expense := &models.Expense{
		TripID:      trip.ID,
		Description: "Dinner",
		Amount:      dec("10.00"),
		PaidByID:    a,
		Split:       models.EqualSplit{Participants: []string{a}},
	}
	if err := store.CreateExpense(ctx, expense); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	if err := store.DeleteTrip(ctx, trip.ID); err != nil {
		t.Fatalf("DeleteTrip: %v", err)
	}
	if _, err := store.GetTrip(ctx, trip.ID); err == nil {
		t.Error("GetTrip after delete should fail")
	}
	if _, err := store.GetExpense(ctx, expense.ID); err == nil {
		t.Error("GetExpense after trip delete should fail")
	}
}
