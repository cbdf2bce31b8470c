package calculator

import "github.com/evensplit/evensplit/internal/models"

// ComputeBalances computes the net pairwise balance between userID and every
// counterparty appearing in the given bills and settlements, keyed by
// counterparty user ID. Positive means the counterparty owes the user;
// negative means the user owes them.
//
// Four passes, all commutative:
//   - splits held by the user on bills created by others reduce the balance
//     with the creator
//   - splits held by others on bills the user created raise the balance with
//     each participant
//   - settlements the user paid raise the balance with the payee
//   - settlements the user received reduce the balance with the payer
//
// Counterparties that net out to zero stay in the map at 0; callers render
// them as settled rather than absent. The function is pure and recomputes
// from scratch on every call, which is sound because splits and settlements
// are immutable once created.
func ComputeBalances(userID string, bills []models.Bill, settlements []models.Settlement) map[string]float64 {
	balances := make(map[string]float64)

	for _, bill := range bills {
		if bill.CreatedBy == userID {
			for _, split := range bill.Splits {
				if split.UserID != userID {
					balances[split.UserID] += split.Amount
				}
			}
			continue
		}
		for _, split := range bill.Splits {
			if split.UserID == userID {
				balances[bill.CreatedBy] -= split.Amount
			}
		}
	}

	for _, s := range settlements {
		switch userID {
		case s.PayerID:
			balances[s.PayeeID] += s.Amount
		case s.PayeeID:
			balances[s.PayerID] -= s.Amount
		}
	}

	return balances
}
