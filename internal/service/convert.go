package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsettle/internal/calculator"
	"github.com/mmynk/tripsettle/internal/models"
	"github.com/mmynk/tripsettle/pkg/api"
)

// splitFromWire converts a wire split into its model variant.
func splitFromWire(s *api.Split) (models.Split, error) {
	if s == nil {
		return nil, nil
	}
	switch models.SplitType(s.Type) {
	case models.SplitEqually:
		return models.EqualSplit{Participants: s.Participants}, nil
	case models.SplitByAmount:
		entries := make([]models.AmountEntry, len(s.Amounts))
		for i, a := range s.Amounts {
			entries[i] = models.AmountEntry{MemberID: a.MemberID, Amount: a.Amount}
		}
		return models.AmountSplit{Entries: entries}, nil
	case models.SplitByPercentage:
		entries := make([]models.PercentEntry, len(s.Percents))
		for i, p := range s.Percents {
			entries[i] = models.PercentEntry{MemberID: p.MemberID, Percent: p.Percent}
		}
		return models.PercentageSplit{Entries: entries}, nil
	default:
		return nil, fmt.Errorf("unknown split type %q", s.Type)
	}
}

func splitToWire(s models.Split) *api.Split {
	if s == nil {
		return nil
	}
	switch v := s.(type) {
	case models.EqualSplit:
		return &api.Split{Type: string(models.SplitEqually), Participants: v.Participants}
	case models.AmountSplit:
		amounts := make([]*api.AmountShare, len(v.Entries))
		for i, e := range v.Entries {
			amounts[i] = &api.AmountShare{MemberID: e.MemberID, Amount: e.Amount}
		}
		return &api.Split{Type: string(models.SplitByAmount), Amounts: amounts}
	case models.PercentageSplit:
		percents := make([]*api.PercentShare, len(v.Entries))
		for i, e := range v.Entries {
			percents[i] = &api.PercentShare{MemberID: e.MemberID, Percent: e.Percent}
		}
		return &api.Split{Type: string(models.SplitByPercentage), Percents: percents}
	default:
		return nil
	}
}

func memberToWire(m models.Member) *api.Member {
	return &api.Member{
		ID:     m.ID,
		TripID: m.TripID,
		Name:   m.Name,
		Email:  m.Email,
		UserID: m.UserID,
	}
}

func tripToWire(t *models.Trip) *api.Trip {
	members := make([]*api.Member, len(t.Members))
	for i, m := range t.Members {
		members[i] = memberToWire(m)
	}
	return &api.Trip{
		ID:        t.ID,
		Name:      t.Name,
		Currency:  t.Currency,
		OwnerID:   t.OwnerID,
		Members:   members,
		CreatedAt: t.CreatedAt,
	}
}

func commentToWire(c models.Comment) *api.Comment {
	return &api.Comment{
		ID:        c.ID,
		ExpenseID: c.ExpenseID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

func expenseToWire(e *models.Expense) *api.Expense {
	var comments []*api.Comment
	if len(e.Comments) > 0 {
		comments = make([]*api.Comment, len(e.Comments))
		for i, c := range e.Comments {
			comments[i] = commentToWire(c)
		}
	}
	return &api.Expense{
		ID:          e.ID,
		TripID:      e.TripID,
		Description: e.Description,
		Amount:      e.Amount,
		PaidByID:    e.PaidByID,
		Category:    e.Category,
		Split:       splitToWire(e.Split),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		Comments:    comments,
	}
}

// sharesToWire converts per-member shares from cents to decimal amounts.
func sharesToWire(shares map[string]int64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(shares))
	for id, cents := range shares {
		out[id] = calculator.FromCents(cents)
	}
	return out
}

func recordToWire(r *models.SettlementRecord) *api.SettlementRecord {
	return &api.SettlementRecord{
		ID:           r.ID,
		TripID:       r.TripID,
		FromMemberID: r.FromMemberID,
		ToMemberID:   r.ToMemberID,
		Amount:       r.Amount,
		Note:         r.Note,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
	}
}

func userToWire(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
