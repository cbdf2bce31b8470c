package models

// Group represents a reusable participant list that can own bills.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Work Lunch").
	Name string

	// CreatedBy is the user ID of the group's creator. The creator is
	// always a member.
	CreatedBy string

	// Members is the list of member user IDs, unordered.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
