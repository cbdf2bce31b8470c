package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evensplit/evensplit/internal/calculator"
	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

var (
	// ErrNonPositiveSettlement is returned when a settlement amount is not positive.
	ErrNonPositiveSettlement = errors.New("settlement amount must be positive")
	// ErrSelfSettlement is returned when payer and payee are the same user.
	ErrSelfSettlement = errors.New("cannot settle with yourself")
)

// SettlementService records debt repayments between users.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// Create records a payment from the authenticated user to the payee. The
// payer is always the caller; clients cannot record payments on behalf of
// other users. billID is optional and links the settlement to a bill.
func (s *SettlementService) Create(ctx context.Context, payerID, payeeID string, amount float64, billID string) (*models.Settlement, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveSettlement
	}
	if payeeID == payerID {
		return nil, ErrSelfSettlement
	}

	payee, err := s.store.GetUserByID(ctx, payeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up payee: %w", err)
	}
	if payee == nil {
		return nil, ErrUnknownUser
	}

	if billID != "" {
		if _, err := s.store.GetBill(ctx, billID); err != nil {
			return nil, fmt.Errorf("failed to look up bill: %w", err)
		}
	}

	settlement := &models.Settlement{
		PayerID: payerID,
		PayeeID: payeeID,
		Amount:  calculator.Round2(amount),
		BillID:  billID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"payer_id", payerID,
		"payee_id", payeeID,
		"amount", settlement.Amount,
	)
	return settlement, nil
}

// List returns all settlements where the user is payer or payee, newest first.
func (s *SettlementService) List(ctx context.Context, userID string) ([]*models.Settlement, error) {
	settlements, err := s.store.ListSettlementsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, nil
}
