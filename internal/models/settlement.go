package models

// Settlement represents a payment between two users to clear a debt.
// Settlements are immutable once recorded.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// PayerID is the user who paid (debtor settling up).
	PayerID string

	// PayeeID is the user who received payment (creditor being paid).
	PayeeID string

	// Amount is the payment amount.
	Amount float64

	// BillID optionally links the settlement to a single originating bill.
	// General settlements leave it empty.
	BillID string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
