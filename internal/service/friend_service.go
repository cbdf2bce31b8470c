package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

var (
	// ErrSelfFriendship is returned when a user tries to befriend themselves.
	ErrSelfFriendship = errors.New("cannot add yourself as a friend")
	// ErrUnknownUser is returned when a referenced user does not exist.
	ErrUnknownUser = errors.New("user does not exist")
)

// FriendService manages friendships between users.
type FriendService struct {
	store storage.Store
}

// NewFriendService creates a new FriendService with the given storage backend.
func NewFriendService(store storage.Store) *FriendService {
	return &FriendService{store: store}
}

// AddFriend creates a friendship between the user and another user. The edge
// is stored in both directions so either side sees the other in their friend
// list. Re-adding an existing friend is a no-op.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID string) (*models.User, error) {
	if friendID == userID {
		return nil, ErrSelfFriendship
	}

	friend, err := s.store.GetUserByID(ctx, friendID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up friend: %w", err)
	}
	if friend == nil {
		return nil, ErrUnknownUser
	}

	if err := s.store.AddFriendship(ctx, userID, friendID); err != nil {
		return nil, fmt.Errorf("failed to add friendship: %w", err)
	}

	slog.Info("Friendship added", "user_id", userID, "friend_id", friendID)
	return friend, nil
}

// ListFriends returns the user's friends as full user records.
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]*models.User, error) {
	ids, err := s.store.ListFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}

	// Preserve the order the store returned the IDs in.
	friends := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			friends = append(friends, u)
		}
	}
	return friends, nil
}
