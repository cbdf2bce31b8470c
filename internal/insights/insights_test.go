package insights

import (
	"testing"
	"time"

	"github.com/evensplit/evensplit/internal/models"
)

var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// bill returns a minimal bill created daysAgo days before testNow.
func bill(category models.Category, amount float64, daysAgo int) models.Bill {
	return models.Bill{
		Description: "test bill",
		Amount:      amount,
		Category:    category,
		CreatedAt:   testNow.AddDate(0, 0, -daysAgo).Unix(),
	}
}

func findInsight(insights []Insight, typ string) *Insight {
	for i := range insights {
		if insights[i].Type == typ {
			return &insights[i]
		}
	}
	return nil
}

func TestGenerateWelcomeShortCircuit(t *testing.T) {
	insights := Generate(nil, map[string]float64{"bob": -500}, testNow)
	if len(insights) != 1 {
		t.Fatalf("expected exactly one insight, got %d", len(insights))
	}
	if insights[0].Type != "welcome" {
		t.Errorf("type = %q, want welcome", insights[0].Type)
	}
	if insights[0].Priority != PriorityHigh {
		t.Errorf("priority = %q, want high", insights[0].Priority)
	}
}

func TestGenerateSpendingPatternThreshold(t *testing.T) {
	t.Run("exactly 50 percent does not fire", func(t *testing.T) {
		bills := []models.Bill{
			bill(models.CategoryFood, 50.0, 1),
			bill(models.CategoryTravel, 50.0, 1),
		}
		insights := Generate(bills, nil, testNow)
		if got := findInsight(insights, "spending_pattern"); got != nil {
			t.Errorf("spending_pattern fired at exactly 50%%: %+v", got)
		}
	})

	t.Run("just above 50 percent fires", func(t *testing.T) {
		bills := []models.Bill{
			bill(models.CategoryFood, 50.01, 1),
			bill(models.CategoryTravel, 49.99, 1),
		}
		insights := Generate(bills, nil, testNow)
		got := findInsight(insights, "spending_pattern")
		if got == nil {
			t.Fatal("spending_pattern did not fire at 50.01%")
		}
		if got.Title != "High Food Spending" {
			t.Errorf("title = %q, want High Food Spending", got.Title)
		}
		if got.Priority != PriorityMedium {
			t.Errorf("priority = %q, want medium", got.Priority)
		}
	})
}

func TestGenerateTrendThresholds(t *testing.T) {
	t.Run("exactly plus 20 percent does not fire", func(t *testing.T) {
		bills := []models.Bill{
			bill(models.CategoryFood, 120.0, 10),
			bill(models.CategoryTravel, 100.0, 45),
		}
		if got := findInsight(Generate(bills, nil, testNow), "trend"); got != nil {
			t.Errorf("trend fired at exactly +20%%: %+v", got)
		}
	})

	t.Run("above plus 20 percent fires high", func(t *testing.T) {
		bills := []models.Bill{
			bill(models.CategoryFood, 121.0, 10),
			bill(models.CategoryTravel, 100.0, 45),
		}
		got := findInsight(Generate(bills, nil, testNow), "trend")
		if got == nil {
			t.Fatal("trend did not fire at +21%")
		}
		if got.Title != "Spending Increased" || got.Priority != PriorityHigh {
			t.Errorf("got %+v, want increase insight at high priority", got)
		}
	})

	t.Run("below minus 20 percent fires low", func(t *testing.T) {
		bills := []models.Bill{
			bill(models.CategoryFood, 70.0, 10),
			bill(models.CategoryTravel, 100.0, 45),
		}
		got := findInsight(Generate(bills, nil, testNow), "trend")
		if got == nil {
			t.Fatal("trend did not fire at -30%")
		}
		if got.Title != "Nice Work Saving" || got.Priority != PriorityLow {
			t.Errorf("got %+v, want decrease insight at low priority", got)
		}
	})

	t.Run("no previous spending never fires", func(t *testing.T) {
		bills := []models.Bill{bill(models.CategoryFood, 500.0, 10)}
		if got := findInsight(Generate(bills, nil, testNow), "trend"); got != nil {
			t.Errorf("trend fired without a previous window: %+v", got)
		}
	})
}

func TestGenerateDebtAndCreditThresholds(t *testing.T) {
	bills := []models.Bill{bill(models.CategoryOther, 10.0, 1)}

	t.Run("debt at exactly 100 does not fire", func(t *testing.T) {
		balances := map[string]float64{"bob": -100.0}
		if got := findInsight(Generate(bills, balances, testNow), "debt"); got != nil {
			t.Errorf("debt fired at exactly 100: %+v", got)
		}
	})

	t.Run("debt above 100 fires", func(t *testing.T) {
		balances := map[string]float64{"bob": -60.0, "carol": -41.0}
		got := findInsight(Generate(bills, balances, testNow), "debt")
		if got == nil {
			t.Fatal("debt did not fire at 101")
		}
		if got.Priority != PriorityMedium {
			t.Errorf("priority = %q, want medium", got.Priority)
		}
	})

	t.Run("credit above 100 fires", func(t *testing.T) {
		balances := map[string]float64{"bob": 101.0}
		got := findInsight(Generate(bills, balances, testNow), "credit")
		if got == nil {
			t.Fatal("credit did not fire at 101")
		}
		if got.Priority != PriorityLow {
			t.Errorf("priority = %q, want low", got.Priority)
		}
	})
}

func TestGenerateActivity(t *testing.T) {
	t.Run("no bills this week", func(t *testing.T) {
		bills := []models.Bill{bill(models.CategoryFood, 10.0, 14)}
		got := findInsight(Generate(bills, nil, testNow), "activity")
		if got == nil {
			t.Fatal("activity did not fire for a quiet week")
		}
		if got.Title != "Quiet Week" {
			t.Errorf("title = %q, want Quiet Week", got.Title)
		}
	})

	t.Run("more than ten bills this week", func(t *testing.T) {
		var bills []models.Bill
		for i := 0; i < 11; i++ {
			bills = append(bills, bill(models.CategoryFood, 5.0, 1))
		}
		got := findInsight(Generate(bills, nil, testNow), "activity")
		if got == nil {
			t.Fatal("activity did not fire for a busy week")
		}
		if got.Title != "Active Week" {
			t.Errorf("title = %q, want Active Week", got.Title)
		}
	})

	t.Run("ordinary week stays silent", func(t *testing.T) {
		bills := []models.Bill{bill(models.CategoryFood, 10.0, 2)}
		if got := findInsight(Generate(bills, nil, testNow), "activity"); got != nil {
			t.Errorf("activity fired for an ordinary week: %+v", got)
		}
	})
}

func TestGenerateOrderingAndCap(t *testing.T) {
	// Fire every rule at once: dominant category, spending increase, debt,
	// credit, and a busy week.
	var bills []models.Bill
	for i := 0; i < 11; i++ {
		bills = append(bills, bill(models.CategoryFood, 50.0, 1))
	}
	bills = append(bills, bill(models.CategoryTravel, 100.0, 45))
	balances := map[string]float64{"bob": -150.0, "carol": 150.0}

	insights := Generate(bills, balances, testNow)
	if len(insights) > 5 {
		t.Fatalf("expected at most 5 insights, got %d", len(insights))
	}

	for i := 1; i < len(insights); i++ {
		if priorityRank[insights[i].Priority] > priorityRank[insights[i-1].Priority] {
			t.Errorf("insights out of priority order at %d: %v before %v",
				i, insights[i-1].Priority, insights[i].Priority)
		}
	}

	if insights[0].Priority != PriorityHigh {
		t.Errorf("first insight priority = %q, want high", insights[0].Priority)
	}
}
