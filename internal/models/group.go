package models

// Group represents a trip group: the set of people splitting expenses for
// one trip. Expenses always belong to exactly one group.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Goa 2026").
	Name string

	// CreatedBy is the user ID of the group's creator.
	CreatedBy string

	// MemberIDs are the user IDs of all group members, creator included.
	MemberIDs []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether the given user belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
