package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/evensplit/evensplit/internal/models"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		splitType    models.SplitType
		participants []string
		shares       []Share
		wantErr      error
		anyErr       bool
		validateFunc func(t *testing.T, amounts map[string]float64)
	}{
		{
			name:         "equal two-way split",
			total:        100.0,
			splitType:    models.SplitEqual,
			participants: []string{"alice", "bob"},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				for _, p := range []string{"alice", "bob"} {
					if math.Abs(amounts[p]-50.0) > 0.001 {
						t.Errorf("%s = %v, want 50.00", p, amounts[p])
					}
				}
			},
		},
		{
			name:         "equal split with non-terminating quotient",
			total:        100.0,
			splitType:    models.SplitEqual,
			participants: []string{"alice", "bob", "carol"},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				var sum float64
				for _, p := range []string{"alice", "bob", "carol"} {
					if math.Abs(amounts[p]-33.33) > 0.001 {
						t.Errorf("%s = %v, want 33.33", p, amounts[p])
					}
					sum += amounts[p]
				}
				// No remainder redistribution: sum may be off by up to
				// one cent per participant.
				if math.Abs(sum-100.0) > 0.01*3 {
					t.Errorf("sum = %v, want within 3 cents of 100.00", sum)
				}
			},
		},
		{
			name:         "empty split type defaults to equal",
			total:        30.0,
			splitType:    "",
			participants: []string{"alice", "bob", "carol"},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				if math.Abs(amounts["carol"]-10.0) > 0.001 {
					t.Errorf("carol = %v, want 10.00", amounts["carol"])
				}
			},
		},
		{
			name:         "amount split matching total",
			total:        100.0,
			splitType:    models.SplitAmount,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Amount: 50.0},
				{UserID: "bob", Amount: 50.0},
			},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				if amounts["alice"] != 50.0 || amounts["bob"] != 50.0 {
					t.Errorf("amounts = %v, want 50.00 each", amounts)
				}
			},
		},
		{
			name:         "amount split off by one unit rejected",
			total:        100.0,
			splitType:    models.SplitAmount,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Amount: 50.0},
				{UserID: "bob", Amount: 49.0},
			},
			wantErr: ErrAmountSum,
		},
		{
			name:         "amount split off by less than a cent accepted",
			total:        100.0,
			splitType:    models.SplitAmount,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Amount: 50.001},
				{UserID: "bob", Amount: 49.999},
			},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				if math.Abs(amounts["alice"]-50.0) > 0.001 {
					t.Errorf("alice = %v, want 50.00", amounts["alice"])
				}
			},
		},
		{
			name:         "percentage split summing to 100",
			total:        100.0,
			splitType:    models.SplitPercentage,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Percent: 60},
				{UserID: "bob", Percent: 40},
			},
			validateFunc: func(t *testing.T, amounts map[string]float64) {
				if amounts["alice"] != 60.0 {
					t.Errorf("alice = %v, want 60.00", amounts["alice"])
				}
				if amounts["bob"] != 40.0 {
					t.Errorf("bob = %v, want 40.00", amounts["bob"])
				}
			},
		},
		{
			name:         "percentage split not summing to 100 rejected",
			total:        100.0,
			splitType:    models.SplitPercentage,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Percent: 60},
				{UserID: "bob", Percent: 30},
			},
			wantErr: ErrPercentSum,
		},
		{
			name:         "zero total rejected",
			total:        0,
			splitType:    models.SplitEqual,
			participants: []string{"alice"},
			wantErr:      ErrNonPositiveAmount,
		},
		{
			name:         "negative total rejected",
			total:        -5.0,
			splitType:    models.SplitEqual,
			participants: []string{"alice"},
			wantErr:      ErrNonPositiveAmount,
		},
		{
			name:         "no participants rejected",
			total:        10.0,
			splitType:    models.SplitEqual,
			participants: nil,
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "amount split missing a participant rejected",
			total:        100.0,
			splitType:    models.SplitAmount,
			participants: []string{"alice", "bob"},
			shares: []Share{
				{UserID: "alice", Amount: 100.0},
			},
			anyErr: true,
		},
		{
			name:         "amount split with stranger rejected",
			total:        100.0,
			splitType:    models.SplitAmount,
			participants: []string{"alice"},
			shares: []Share{
				{UserID: "alice", Amount: 50.0},
				{UserID: "mallory", Amount: 50.0},
			},
			anyErr: true,
		},
		{
			name:         "unknown split type rejected",
			total:        100.0,
			splitType:    "weighted",
			participants: []string{"alice"},
			anyErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts, err := Allocate(tt.total, tt.splitType, tt.participants, tt.shares)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Allocate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.anyErr {
				if err == nil {
					t.Fatal("Allocate() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() unexpected error: %v", err)
			}
			if len(amounts) != len(tt.participants) {
				t.Fatalf("Allocate() returned %d amounts, want %d", len(amounts), len(tt.participants))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, amounts)
			}
		})
	}
}

func TestAllocateEqualSumProperty(t *testing.T) {
	// For any valid equal split the per-bill sum stays within one cent per
	// participant of the total.
	totals := []float64{10.0, 0.01, 99.99, 100.0, 73.42, 1000.0}
	for _, total := range totals {
		for n := 1; n <= 7; n++ {
			participants := make([]string, n)
			for i := range participants {
				participants[i] = string(rune('a' + i))
			}
			amounts, err := Allocate(total, models.SplitEqual, participants, nil)
			if err != nil {
				t.Fatalf("Allocate(%v, %d): %v", total, n, err)
			}
			var sum float64
			for _, amt := range amounts {
				sum += amt
			}
			if math.Abs(sum-total) > 0.01*float64(n) {
				t.Errorf("Allocate(%v, %d): sum = %v, drift beyond %d cents", total, n, sum, n)
			}
		}
	}
}
