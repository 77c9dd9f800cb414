package service

import (
	"context"
	"fmt"
	"log/slog"

	"tripledger/internal/models"
	"tripledger/internal/storage"
)

// GroupService manages trip groups and their memberships.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group owned by creatorID. The creator is always a
// member; additional member IDs must reference existing users.
func (s *GroupService) CreateGroup(ctx context.Context, creatorID, name string, memberIDs []string) (*models.Group, error) {
	members := append([]string{creatorID}, memberIDs...)
	members = dedupe(members)

	if err := s.ensureUsersExist(ctx, members); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name:      name,
		CreatedBy: creatorID,
		MemberIDs: members,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("group created", "group_id", group.ID, "created_by", creatorID, "members", len(members))
	return group, nil
}

// GetGroup returns a group the acting user belongs to.
func (s *GroupService) GetGroup(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}
	return group, nil
}

// ListGroups returns every group the acting user belongs to.
func (s *GroupService) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.store.ListGroupsByMember(ctx, userID)
}

// AddMember adds an existing user to a group. Only members can add members.
func (s *GroupService) AddMember(ctx context.Context, userID, groupID, newMemberID string) (*models.Group, error) {
	group, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUsersExist(ctx, []string{newMemberID}); err != nil {
		return nil, err
	}
	if err := s.store.AddGroupMembers(ctx, group.ID, []string{newMemberID}); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return s.store.GetGroup(ctx, groupID)
}

// RemoveMember removes a user from a group. Only members can remove members.
func (s *GroupService) RemoveMember(ctx context.Context, userID, groupID, memberID string) error {
	if _, err := s.GetGroup(ctx, userID, groupID); err != nil {
		return err
	}
	return s.store.RemoveGroupMember(ctx, groupID, memberID)
}

// Members returns the user records for every member of a group.
func (s *GroupService) Members(ctx context.Context, userID, groupID string) ([]*models.User, error) {
	group, err := s.GetGroup(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	byID, err := s.store.GetUsersByIDs(ctx, group.MemberIDs)
	if err != nil {
		return nil, err
	}

	members := make([]*models.User, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		if user, ok := byID[id]; ok {
			members = append(members, user)
		}
	}
	return members, nil
}

func (s *GroupService) ensureUsersExist(ctx context.Context, ids []string) error {
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return fmt.Errorf("user %s: %w", id, ErrUnknownUser)
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
