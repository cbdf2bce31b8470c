package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evensplit/evensplit/internal/models"
	"github.com/evensplit/evensplit/internal/storage"
)

// ErrEmptyGroupName is returned when a group is created without a name.
var ErrEmptyGroupName = errors.New("group name must not be empty")

// GroupService manages expense groups.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Create creates a new group. The creator is always a member, whether or not
// they appear in the member list. All listed members must exist.
func (s *GroupService) Create(ctx context.Context, creatorID, name string, memberIDs []string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyGroupName
	}

	members := dedupeWith(memberIDs, creatorID)

	users, err := s.store.GetUsersByIDs(ctx, members)
	if err != nil {
		return nil, fmt.Errorf("failed to look up members: %w", err)
	}
	for _, id := range members {
		if users[id] == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
		}
	}

	group := &models.Group{
		Name:      name,
		CreatedBy: creatorID,
		Members:   members,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "members", len(group.Members))
	return group, nil
}

// Get retrieves a group by ID.
func (s *GroupService) Get(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// List returns the groups the user belongs to.
func (s *GroupService) List(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// dedupeWith returns ids with duplicates removed and required guaranteed to be
// present, preserving first-seen order.
func dedupeWith(ids []string, required string) []string {
	seen := make(map[string]bool, len(ids)+1)
	out := make([]string, 0, len(ids)+1)
	for _, id := range append([]string{required}, ids...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
