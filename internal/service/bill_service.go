package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evensplit/evensplit/internal/calculator"
	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

var (
	// ErrEmptyDescription is returned when a bill has no description.
	ErrEmptyDescription = errors.New("bill description must not be empty")
	// ErrInvalidCategory is returned for an unrecognized expense category.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidRecurrence is returned for an unrecognized recurrence type.
	ErrInvalidRecurrence = errors.New("invalid recurrence type")
	// ErrNotBillCreator is returned when a user tries to delete a bill they
	// did not create.
	ErrNotBillCreator = errors.New("only the bill creator can delete it")
)

// CreateBillInput carries the caller-supplied fields for a new bill.
type CreateBillInput struct {
	Description    string
	Amount         float64
	Participants   []string
	Shares         []calculator.Share
	GroupID        string
	Category       models.Category
	SplitType      models.SplitType
	IsRecurring    bool
	RecurrenceType models.RecurrenceType
	NextDueDate    string
}

// BillService manages shared bills and their splits.
type BillService struct {
	store storage.Store
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store) *BillService {
	return &BillService{store: store}
}

// Create validates the input, allocates per-participant shares, and persists
// the bill atomically. The creator is always a participant, whether or not
// they appear in the participant list.
func (s *BillService) Create(ctx context.Context, creatorID string, in CreateBillInput) (*models.Bill, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, ErrEmptyDescription
	}

	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, in.Category)
	}

	if !in.IsRecurring {
		in.RecurrenceType = models.RecurrenceNone
		in.NextDueDate = ""
	}
	if in.RecurrenceType == "" {
		in.RecurrenceType = models.RecurrenceNone
	}
	if !in.RecurrenceType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecurrence, in.RecurrenceType)
	}

	participants := dedupeWith(in.Participants, creatorID)

	users, err := s.store.GetUsersByIDs(ctx, participants)
	if err != nil {
		return nil, fmt.Errorf("failed to look up participants: %w", err)
	}
	for _, id := range participants {
		if users[id] == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
		}
	}

	if in.GroupID != "" {
		if _, err := s.store.GetGroup(ctx, in.GroupID); err != nil {
			return nil, fmt.Errorf("failed to look up group: %w", err)
		}
	}

	owed, err := calculator.Allocate(in.Amount, in.SplitType, participants, in.Shares)
	if err != nil {
		return nil, err
	}

	splits := make([]models.BillSplit, 0, len(participants))
	for _, id := range participants {
		splits = append(splits, models.BillSplit{UserID: id, Amount: owed[id]})
	}

	splitType := in.SplitType
	if splitType == "" {
		splitType = models.SplitEqual
	}

	bill := &models.Bill{
		Description:    in.Description,
		Amount:         calculator.Round2(in.Amount),
		CreatedBy:      creatorID,
		Participants:   participants,
		Splits:         splits,
		GroupID:        in.GroupID,
		Category:       in.Category,
		SplitType:      splitType,
		IsRecurring:    in.IsRecurring,
		RecurrenceType: in.RecurrenceType,
		NextDueDate:    in.NextDueDate,
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"created_by", creatorID,
		"amount", bill.Amount,
		"split_type", bill.SplitType,
		"participants", len(participants),
	)
	return bill, nil
}

// List returns all bills the user participates in, newest first.
func (s *BillService) List(ctx context.Context, userID string) ([]*models.Bill, error) {
	bills, err := s.store.ListBillsByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// Delete removes a bill and its splits. Only the creator may delete a bill.
func (s *BillService) Delete(ctx context.Context, userID, billID string) error {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return err
	}
	if bill.CreatedBy != userID {
		return ErrNotBillCreator
	}

	if err := s.store.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	slog.Info("Bill deleted", "bill_id", billID, "deleted_by", userID)
	return nil
}
