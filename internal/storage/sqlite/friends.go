package sqlite

import (
	"context"
	"fmt"
	"time"
)

// AddFriendship inserts the friendship edge in both directions within one
// transaction. INSERT OR IGNORE keeps repeated befriending idempotent under
// the (user_id, friend_id) primary key.
func (s *SQLiteStore) AddFriendship(ctx context.Context, userID, friendID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, pair := range [][2]string{{userID, friendID}, {friendID, userID}} {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO friends (user_id, friend_id, created_at) VALUES (?, ?, ?)",
			pair[0], pair[1], now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert friendship: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListFriendIDs returns the IDs of all friends of the given user. Because
// edges are stored in both directions, one single-sided query suffices.
func (s *SQLiteStore) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT friend_id FROM friends WHERE user_id = ? ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	return ids, nil
}
