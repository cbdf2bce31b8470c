package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evensplit/evensplit/internal/calculator"
	"github.com/evensplit/evensplit/internal/insights"
	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

// ReportService derives balances, analytics and insights from stored bills
// and settlements. Nothing here is persisted; every call recomputes from the
// immutable bill and settlement rows.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a new ReportService with the given storage backend.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// Balances returns the user's net position per counterparty, keyed by
// username. Positive means the counterparty owes the user; negative means the
// user owes them. Fully settled counterparties appear with a zero balance.
func (s *ReportService) Balances(ctx context.Context, userID string) (map[string]float64, error) {
	bills, settlements, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID := calculator.ComputeBalances(userID, bills, settlements)

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve counterparties: %w", err)
	}

	balances := make(map[string]float64, len(byID))
	for id, amount := range byID {
		name := id
		if u, ok := users[id]; ok {
			name = u.Username
		}
		balances[name] = amount
	}
	return balances, nil
}

// Analytics returns category, month and trend aggregates over the user's bills.
func (s *ReportService) Analytics(ctx context.Context, userID string, now time.Time) (insights.Report, error) {
	bills, err := s.store.ListBillsByParticipant(ctx, userID)
	if err != nil {
		return insights.Report{}, fmt.Errorf("failed to list bills: %w", err)
	}
	return insights.Analyze(deref(bills), now), nil
}

// Insights returns prioritized spending observations for the user.
func (s *ReportService) Insights(ctx context.Context, userID string, now time.Time) ([]insights.Insight, error) {
	bills, settlements, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(userID, bills, settlements)
	return insights.Generate(bills, balances, now), nil
}

// loadLedger fetches everything balance computation needs. Bills the user
// created are always in the participant listing because the creator is added
// to the participant set on creation.
func (s *ReportService) loadLedger(ctx context.Context, userID string) ([]models.Bill, []models.Settlement, error) {
	billPtrs, err := s.store.ListBillsByParticipant(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bills: %w", err)
	}

	settlementPtrs, err := s.store.ListSettlementsByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	settlements := make([]models.Settlement, len(settlementPtrs))
	for i, st := range settlementPtrs {
		settlements[i] = *st
	}
	return deref(billPtrs), settlements, nil
}

func deref(bills []*models.Bill) []models.Bill {
	out := make([]models.Bill, len(bills))
	for i, b := range bills {
		out[i] = *b
	}
	return out
}
