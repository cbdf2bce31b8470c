package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

const billColumns = `id, description, amount, created_by, group_id, category,
	split_type, is_recurring, recurrence_type, next_due_date, created_at`

// CreateBill persists a bill with its participant set and split rows as one
// atomic unit. A validation or write failure anywhere rolls back the whole
// insert, so no partial split sets are ever visible.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var groupID interface{}
	if bill.GroupID != "" {
		groupID = bill.GroupID
	}
	var nextDueDate interface{}
	if bill.NextDueDate != "" {
		nextDueDate = bill.NextDueDate
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bills (`+billColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.ID, bill.Description, bill.Amount, bill.CreatedBy, groupID,
		bill.Category, bill.SplitType, bill.IsRecurring, bill.RecurrenceType,
		nextDueDate, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for _, userID := range bill.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_participants (bill_id, user_id) VALUES (?, ?)",
			bill.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for i := range bill.Splits {
		split := &bill.Splits[i]
		split.BillID = bill.ID
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_splits (bill_id, user_id, amount) VALUES (?, ?, ?)",
			split.BillID, split.UserID, split.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanBill(scan func(dest ...any) error) (*models.Bill, error) {
	bill := &models.Bill{}
	var groupID, nextDueDate sql.NullString
	err := scan(
		&bill.ID, &bill.Description, &bill.Amount, &bill.CreatedBy, &groupID,
		&bill.Category, &bill.SplitType, &bill.IsRecurring, &bill.RecurrenceType,
		&nextDueDate, &bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	bill.GroupID = groupID.String
	bill.NextDueDate = nextDueDate.String
	return bill, nil
}

// GetBill retrieves a bill by ID, including participants and splits.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+billColumns+" FROM bills WHERE id = ?", billID)
	bill, err := scanBill(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if err := s.loadBillDetails(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBillsByParticipant returns all bills the user participates in, newest
// first, with participants and splits populated.
func (s *SQLiteStore) ListBillsByParticipant(ctx context.Context, userID string) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+billColumns+` FROM bills
		 WHERE id IN (SELECT bill_id FROM bill_participants WHERE user_id = ?)
		 ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		bill, err := scanBill(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for _, bill := range bills {
		if err := s.loadBillDetails(ctx, bill); err != nil {
			return nil, err
		}
	}

	return bills, nil
}

// loadBillDetails populates a bill's participant and split rows.
func (s *SQLiteStore) loadBillDetails(ctx context.Context, bill *models.Bill) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM bill_participants WHERE bill_id = ?", bill.ID)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		bill.Participants = append(bill.Participants, userID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}

	splitRows, err := s.db.QueryContext(ctx,
		"SELECT bill_id, user_id, amount FROM bill_splits WHERE bill_id = ?", bill.ID)
	if err != nil {
		return fmt.Errorf("failed to get splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.BillSplit
		if err := splitRows.Scan(&split.BillID, &split.UserID, &split.Amount); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		bill.Splits = append(bill.Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}

	return nil
}

// DeleteBill removes a bill by ID. Participant and split rows cascade.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("bill %s: %w", billID, storage.ErrNotFound)
	}
	return nil
}
