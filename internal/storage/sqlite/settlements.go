package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evensplit/evensplit/internal/models"
)

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var billID interface{}
	if settlement.BillID != "" {
		billID = settlement.BillID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, payer_id, payee_id, amount, bill_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.PayerID, settlement.PayeeID,
		settlement.Amount, billID, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlementsByUser retrieves all settlements where the user is payer or
// payee, newest first.
func (s *SQLiteStore) ListSettlementsByUser(ctx context.Context, userID string) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payer_id, payee_id, amount, bill_id, created_at
		 FROM settlements WHERE payer_id = ? OR payee_id = ?
		 ORDER BY created_at DESC, id`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var billID sql.NullString

		if err := rows.Scan(&settlement.ID, &settlement.PayerID, &settlement.PayeeID,
			&settlement.Amount, &billID, &settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlement.BillID = billID.String

		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
