package models

// SplitType determines how a bill's amount is divided among its participants.
type SplitType string

const (
	SplitEqual      SplitType = "equal"
	SplitPercentage SplitType = "percentage"
	SplitAmount     SplitType = "amount"
)

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitPercentage, SplitAmount:
		return true
	}
	return false
}

// Category buckets bills for analytics.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTravel        Category = "travel"
	CategoryUtilities     Category = "utilities"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTravel, CategoryUtilities, CategoryShopping,
		CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// RecurrenceType is the cadence of a recurring bill. Recurrence is stored
// only; no scheduler acts on it yet.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// Valid reports whether r is a known recurrence type.
func (r RecurrenceType) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Bill represents a shared expense split among participants.
//
// Invariants, enforced at creation time:
//   - Amount is positive.
//   - CreatedBy is one of Participants (the creator is auto-added if absent).
//   - Splits holds exactly one entry per participant and their amounts sum to
//     Amount within rounding tolerance.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Description is the human-readable label for the bill.
	Description string

	// Amount is the total bill amount.
	Amount float64

	// CreatedBy is the user ID of the bill's creator, who fronted the money.
	CreatedBy string

	// Participants is the list of user IDs splitting the bill.
	Participants []string

	// Splits are the per-participant owed shares, computed once when the
	// bill is created and immutable afterwards.
	Splits []BillSplit

	// GroupID is the owning group, empty for ungrouped bills.
	GroupID string

	// Category buckets the bill for analytics.
	Category Category

	// SplitType records the strategy used to compute Splits.
	SplitType SplitType

	// IsRecurring marks the bill as a recurring expense.
	IsRecurring bool

	// RecurrenceType is the recurrence cadence (none when not recurring).
	RecurrenceType RecurrenceType

	// NextDueDate is the next due date in YYYY-MM-DD form, empty when the
	// bill does not recur.
	NextDueDate string

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64
}

// BillSplit is one participant's owed share of one bill.
type BillSplit struct {
	BillID string
	UserID string
	Amount float64
}
