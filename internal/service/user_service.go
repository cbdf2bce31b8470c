package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

// ErrEmptyQuery is returned when a user search has no query string.
var ErrEmptyQuery = errors.New("search query must not be empty")

// UserService handles user lookup operations.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Search returns users whose username or email contains the query, excluding
// the requesting user.
func (s *UserService) Search(ctx context.Context, userID, query string) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	users, err := s.store.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	results := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.ID == userID {
			continue
		}
		results = append(results, u)
	}
	return results, nil
}
