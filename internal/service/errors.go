package service

import "errors"

var (
	// ErrNotGroupMember means the acting user does not belong to the group
	// they are operating on.
	ErrNotGroupMember = errors.New("you are not a member of this group")

	// ErrMemberNotInGroup means a payer or share references a user outside
	// the group.
	ErrMemberNotInGroup = errors.New("all referenced users must be members of the group")

	// ErrUnknownUser means a referenced user account does not exist.
	ErrUnknownUser = errors.New("referenced user does not exist")
)
