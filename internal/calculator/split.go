// Package calculator implements the split allocation and balance
// computation engines. Both are pure: they read domain records and return
// results without touching storage.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/evensplit/evensplit/internal/models"
)

// Validation errors returned by Allocate. Each one aborts bill creation
// before any split row is persisted.
var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrNoParticipants    = errors.New("must have at least one participant")
	ErrAmountSum         = errors.New("split amounts must sum to bill total")
	ErrPercentSum        = errors.New("percentages must sum to 100")
	ErrShareMismatch     = errors.New("splits must cover participants exactly")
	ErrUnknownSplitType  = errors.New("unknown split type")
)

// Share is a caller-supplied allocation input for one participant, used by
// the amount and percentage strategies. Amount is read for SplitAmount,
// Percent for SplitPercentage.
type Share struct {
	UserID  string
	Amount  float64
	Percent float64
}

// Round2 rounds to two decimal places (whole cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Allocate divides total among participants according to the split type and
// returns the owed amount per user ID.
//
// Equal splits give every participant Round2(total/n) with no remainder
// redistribution, so the per-bill sum may drift from the total by up to one
// cent per participant. Amount and percentage splits validate that the
// caller-supplied shares sum to the total (respectively to 100) at cent
// precision and fail otherwise.
func Allocate(total float64, splitType models.SplitType, participants []string, shares []Share) (map[string]float64, error) {
	if total <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	switch splitType {
	case models.SplitEqual, "":
		per := Round2(total / float64(len(participants)))
		amounts := make(map[string]float64, len(participants))
		for _, p := range participants {
			amounts[p] = per
		}
		return amounts, nil

	case models.SplitAmount:
		byUser, err := indexShares(shares, participants)
		if err != nil {
			return nil, err
		}
		var sum float64
		for _, share := range shares {
			sum += share.Amount
		}
		if Round2(sum) != Round2(total) {
			return nil, ErrAmountSum
		}
		amounts := make(map[string]float64, len(participants))
		for _, p := range participants {
			amounts[p] = Round2(byUser[p].Amount)
		}
		return amounts, nil

	case models.SplitPercentage:
		byUser, err := indexShares(shares, participants)
		if err != nil {
			return nil, err
		}
		var sum float64
		for _, share := range shares {
			sum += share.Percent
		}
		if Round2(sum) != 100 {
			return nil, ErrPercentSum
		}
		amounts := make(map[string]float64, len(participants))
		for _, p := range participants {
			amounts[p] = Round2(total * byUser[p].Percent / 100)
		}
		return amounts, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitType, splitType)
	}
}

// indexShares maps shares by user and checks they cover the participant set
// exactly: one share per participant, no strangers, no duplicates.
func indexShares(shares []Share, participants []string) (map[string]Share, error) {
	byUser := make(map[string]Share, len(shares))
	for _, share := range shares {
		if _, dup := byUser[share.UserID]; dup {
			return nil, fmt.Errorf("%w: duplicate split for user %s", ErrShareMismatch, share.UserID)
		}
		byUser[share.UserID] = share
	}
	for _, p := range participants {
		if _, ok := byUser[p]; !ok {
			return nil, fmt.Errorf("%w: missing split for participant %s", ErrShareMismatch, p)
		}
	}
	if len(byUser) != len(participants) {
		return nil, fmt.Errorf("%w: splits reference users outside the participant list", ErrShareMismatch)
	}
	return byUser, nil
}
