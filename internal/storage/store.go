// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/evensplit/evensplit/internal/models"
)

// ErrNotFound is returned (wrapped) when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for EvenSplit storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByUsername retrieves a user by username. Returns (nil, nil) when absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID; missing IDs are omitted.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// SearchUsers returns users whose username or email contains the query.
	SearchUsers(ctx context.Context, query string) ([]*models.User, error)

	// AddFriendship inserts the friendship edge in both directions in one
	// transaction. Re-adding an existing friendship is a no-op.
	AddFriendship(ctx context.Context, userID, friendID string) error

	// ListFriendIDs returns the IDs of all friends of the given user.
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)

	// CreateGroup persists a new group with its member set.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember returns all groups the user belongs to.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// CreateBill persists a bill together with its participant set and split
	// rows as one atomic unit: a failure anywhere leaves no partial rows.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill with participants and splits.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBillsByParticipant returns all bills the user participates in,
	// newest first, with participants and splits populated.
	ListBillsByParticipant(ctx context.Context, userID string) ([]*models.Bill, error)

	// DeleteBill removes a bill; its participant and split rows cascade.
	DeleteBill(ctx context.Context, billID string) error

	// CreateSettlement persists a new settlement.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByUser returns all settlements where the user is payer
	// or payee, newest first.
	ListSettlementsByUser(ctx context.Context, userID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
